package main

import (
	"log"
	"math/rand"
	"os"
	"sort"
	"strconv"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/vorogo/voro/cell"
	"github.com/vorogo/voro/compute"
	"github.com/vorogo/voro/grid"
)

// Plots the cell volume distribution of a periodic unit cube filled with
// uniform random particles. Usage: volume_hist n out.png

func main() {
	if len(os.Args) != 3 {
		log.Fatalf("Usage: %s particle_count out_file", os.Args[0])
	}
	n, err := strconv.Atoi(os.Args[1])
	if err != nil {
		log.Fatalf(err.Error())
	}

	con, err := grid.NewContainer(
		0, 1, 0, 1, 0, 1, 8, 8, 8, true, true, true, 8,
	)
	if err != nil {
		log.Fatalf(err.Error())
	}
	for i := 0; i < n; i++ {
		err := con.Put(i, rand.Float64(), rand.Float64(), rand.Float64())
		if err != nil {
			log.Fatalf(err.Error())
		}
	}

	vols := []float64{}
	compute.All(con, func(_ int, _, _, _ float64, c *cell.Cell) {
		vols = append(vols, c.Volume()*float64(n))
	})
	sort.Float64s(vols)

	cdf := make([]float64, len(vols))
	for i := range cdf {
		cdf[i] = float64(i+1) / float64(len(vols))
	}

	plt.Reset()
	plt.Figure()
	plt.Plot(vols, cdf, "k", plt.LW(2))
	plt.XLabel(`$V / \bar{V}$`, plt.FontSize(16))
	plt.YLabel(`CDF`, plt.FontSize(16))
	plt.SaveFig(os.Args[2])
	plt.Execute()
}

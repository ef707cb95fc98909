package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/vorogo/voro/cell"
	"github.com/vorogo/voro/compute"
	"github.com/vorogo/voro/config"
	"github.com/vorogo/voro/grid"
	"github.com/vorogo/voro/textio"
)

func main() {
	var (
		configPath, outPath string
		exampleConfig       bool
	)

	flag.StringVar(&configPath, "Config", "",
		"Configuration file describing the container and particle input.")
	flag.StringVar(&outPath, "Out", "",
		"Location to write cell volumes to. Default is stdout.")
	flag.BoolVar(&exampleConfig, "ExampleConfig", false,
		"Prints an example configuration file to stdout.")

	flag.Parse()

	if exampleConfig {
		printExampleConfig()
		return
	}
	if configPath == "" {
		log.Fatalf("No config file given. Run with -ExampleConfig to see " +
			"the expected format.")
	}

	c, err := config.Read(configPath)
	if err != nil {
		log.Fatalf("Error parsing config file: %s", err.Error())
	}
	if c.ParticleFile == "" {
		log.Fatalf("Config file %s does not set ParticleFile.", configPath)
	}

	out := os.Stdout
	if outPath != "" {
		out, err = os.Create(outPath)
		if err != nil {
			log.Fatalf("Error creating %s: %s", outPath, err.Error())
		}
		defer out.Close()
	}

	var src compute.Source
	if c.Radii {
		con, err := grid.NewPolyContainer(
			c.MinX, c.MaxX, c.MinY, c.MaxY, c.MinZ, c.MaxZ,
			c.BlocksX, c.BlocksY, c.BlocksZ,
			c.PeriodicX, c.PeriodicY, c.PeriodicZ, c.BlockCap,
		)
		if err != nil {
			log.Fatalf(err.Error())
		}
		if err := textio.ImportPoly(con, c.ParticleFile); err != nil {
			log.Fatalf(err.Error())
		}
		src = con
	} else {
		con, err := grid.NewContainer(
			c.MinX, c.MaxX, c.MinY, c.MaxY, c.MinZ, c.MaxZ,
			c.BlocksX, c.BlocksY, c.BlocksZ,
			c.PeriodicX, c.PeriodicY, c.PeriodicZ, c.BlockCap,
		)
		if err != nil {
			log.Fatalf(err.Error())
		}
		if err := textio.Import(con, c.ParticleFile); err != nil {
			log.Fatalf(err.Error())
		}
		src = con
	}

	compute.All(src, func(id int, x, y, z float64, c *cell.Cell) {
		fmt.Fprintf(out, "%d %g %g %g %g\n", id, x, y, z, c.Volume())
	})
}

func printExampleConfig() {
	fmt.Println(`[container]
minx = 0
maxx = 1
miny = 0
maxy = 1
minz = 0
maxz = 1
blocksx = 4
blocksy = 4
blocksz = 4
periodicx = true
periodicy = true
periodicz = true
# blockcap = 8
# radii = true
particlefile = particles.txt`)
}

/*package textio reads and writes particles in the whitespace-separated
text format "id x y z" (plus a trailing radius column for the
radius-weighted variant), one particle per line.*/
package textio

import (
	"fmt"
	"os"

	"github.com/phil-mansfield/table"

	"github.com/vorogo/voro/grid"
)

// particleSource is the slice of the container API needed to write
// particles back out.
type particleSource interface {
	NumBlocks() int
	Count(ijk int) int
	Particle(ijk, q int) (id int, x, y, z float64)
}

// polySource adds the radius column.
type polySource interface {
	particleSource
	Radius(ijk, q int) float64
}

// ReadParticles reads an "id x y z" file.
func ReadParticles(fname string) (ids []int, xs, ys, zs []float64, err error) {
	cols, err := table.ReadTable(fname, []int{0, 1, 2, 3}, nil)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("textio: %s: %v", fname, err)
	}

	ids = make([]int, len(cols[0]))
	for i := range ids {
		ids[i] = int(cols[0][i])
	}
	return ids, cols[1], cols[2], cols[3], nil
}

// ReadPolyParticles reads an "id x y z r" file.
func ReadPolyParticles(
	fname string,
) (ids []int, xs, ys, zs, rs []float64, err error) {
	cols, err := table.ReadTable(fname, []int{0, 1, 2, 3, 4}, nil)
	if err != nil {
		return nil, nil, nil, nil, nil,
			fmt.Errorf("textio: %s: %v", fname, err)
	}

	ids = make([]int, len(cols[0]))
	for i := range ids {
		ids[i] = int(cols[0][i])
	}
	return ids, cols[1], cols[2], cols[3], cols[4], nil
}

// Import reads an "id x y z" file straight into a container.
func Import(con *grid.Container, fname string) error {
	ids, xs, ys, zs, err := ReadParticles(fname)
	if err != nil {
		return err
	}
	for i := range ids {
		if err := con.Put(ids[i], xs[i], ys[i], zs[i]); err != nil {
			return err
		}
	}
	return nil
}

// ImportPoly reads an "id x y z r" file straight into a container.
func ImportPoly(con *grid.PolyContainer, fname string) error {
	ids, xs, ys, zs, rs, err := ReadPolyParticles(fname)
	if err != nil {
		return err
	}
	for i := range ids {
		if err := con.Put(ids[i], xs[i], ys[i], zs[i], rs[i]); err != nil {
			return err
		}
	}
	return nil
}

// WriteParticles writes the container's particles as "id x y z" lines, in
// block order.
func WriteParticles(src particleSource, fname string) error {
	f, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("textio: %s: %v", fname, err)
	}
	defer f.Close()

	for ijk := 0; ijk < src.NumBlocks(); ijk++ {
		for q := 0; q < src.Count(ijk); q++ {
			id, x, y, z := src.Particle(ijk, q)
			_, err := fmt.Fprintf(f, "%d %g %g %g\n", id, x, y, z)
			if err != nil {
				return fmt.Errorf("textio: %s: %v", fname, err)
			}
		}
	}
	return nil
}

// WritePolyParticles writes the container's particles as "id x y z r"
// lines, in block order, so the output reads back through ImportPoly.
func WritePolyParticles(src polySource, fname string) error {
	f, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("textio: %s: %v", fname, err)
	}
	defer f.Close()

	for ijk := 0; ijk < src.NumBlocks(); ijk++ {
		for q := 0; q < src.Count(ijk); q++ {
			id, x, y, z := src.Particle(ijk, q)
			r := src.Radius(ijk, q)
			_, err := fmt.Fprintf(f, "%d %g %g %g %g\n", id, x, y, z, r)
			if err != nil {
				return fmt.Errorf("textio: %s: %v", fname, err)
			}
		}
	}
	return nil
}

package grid

import (
	"github.com/vorogo/voro/cell"
)

// Wall is a static geometric constraint applied to every cell before any
// particle-particle cutting happens. Implementations live outside this
// package; the walls subpackage provides the usual shapes.
type Wall interface {
	// Inside reports whether the point lies on the kept side of the wall.
	Inside(x, y, z float64) bool

	// Cut applies the wall to the cell of a particle at (x, y, z),
	// returning false if nothing of the cell remains.
	Cut(c *cell.Cell, x, y, z float64) bool
}

// AddWall registers a wall. Walls are applied in registration order.
func (b *base) AddWall(w Wall) {
	b.walls = append(b.walls, w)
}

// Walls returns the registered walls in registration order.
func (b *base) Walls() []Wall {
	out := make([]Wall, len(b.walls))
	copy(out, b.walls)
	return out
}

// InsideWalls returns true if the point is inside every registered wall.
func (b *base) InsideWalls(x, y, z float64) bool {
	for _, w := range b.walls {
		if !w.Inside(x, y, z) {
			return false
		}
	}
	return true
}

// applyWalls cuts the cell against each wall in order, stopping at the
// first wall that removes it.
func (b *base) applyWalls(c *cell.Cell, x, y, z float64) bool {
	for _, w := range b.walls {
		if !w.Cut(c, x, y, z) {
			return false
		}
	}
	return true
}

package walls

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vorogo/voro/cell"
)

func TestPlane(t *testing.T) {
	w := NewPlane(1, 0, 0, 0.5, DefaultID)
	assert.True(t, w.Inside(0.25, 0, 0))
	assert.False(t, w.Inside(0.75, 0, 0))

	// A particle at x = 0.25 in a unit cell keeps everything up to the
	// wall at x = 0.5.
	c := cell.NewBox(-0.25, 0.75, -0.5, 0.5, -0.5, 0.5)
	assert.True(t, w.Cut(c, 0.25, 0, 0))
	assert.InDelta(t, 0.5, c.Volume(), 1e-12)
	assert.Contains(t, c.Neighbors(), DefaultID)
}

func TestPlaneRemovesCell(t *testing.T) {
	w := NewPlane(1, 0, 0, -1, DefaultID)
	c := cell.NewBox(-0.5, 0.5, -0.5, 0.5, -0.5, 0.5)
	assert.False(t, w.Cut(c, 0.5, 0.5, 0.5))
}

func TestSphere(t *testing.T) {
	w := NewSphere(0.5, 0.5, 0.5, 0.4, DefaultID)
	assert.True(t, w.Inside(0.5, 0.5, 0.5))
	assert.False(t, w.Inside(0.95, 0.5, 0.5))

	// The tangent plane for a particle at (0.3, 0.5, 0.5) touches the
	// sphere at x = 0.1, trimming 0.1 off the low-x side of its cell.
	c := cell.NewBox(-0.3, 0.7, -0.5, 0.5, -0.5, 0.5)
	assert.True(t, w.Cut(c, 0.3, 0.5, 0.5))
	assert.InDelta(t, 0.9, c.Volume(), 1e-12)
}

func TestSphereCenteredParticle(t *testing.T) {
	w := NewSphere(0.5, 0.5, 0.5, 0.4, DefaultID)
	c := cell.NewBox(-0.5, 0.5, -0.5, 0.5, -0.5, 0.5)
	assert.True(t, w.Cut(c, 0.5, 0.5, 0.5), "no tangent plane at the center")
	assert.InDelta(t, 1.0, c.Volume(), 1e-12)
}

func TestCylinder(t *testing.T) {
	w := NewCylinder(0.5, 0.5, 0, 0, 0, 1, 0.4, DefaultID)
	assert.True(t, w.Inside(0.5, 0.5, 0.9))
	assert.False(t, w.Inside(0.95, 0.5, 0.1))

	// Radially the cylinder behaves like the sphere: the tangent plane
	// for a particle at x = 0.3 sits at x = 0.1.
	c := cell.NewBox(-0.3, 0.7, -0.5, 0.5, -0.5, 0.5)
	assert.True(t, w.Cut(c, 0.3, 0.5, 0.5))
	assert.InDelta(t, 0.9, c.Volume(), 1e-12)
}

func TestWallOrderCommutes(t *testing.T) {
	w1 := NewPlane(1, 0, 0, 0.25, -7)
	w2 := NewPlane(0, 1, 0, 0.25, -8)

	apply := func(ws []*Plane) float64 {
		c := cell.NewBox(-0.5, 0.5, -0.5, 0.5, -0.5, 0.5)
		for _, w := range ws {
			assert.True(t, w.Cut(c, 0, 0, 0))
		}
		return c.Volume()
	}

	v12 := apply([]*Plane{w1, w2})
	v21 := apply([]*Plane{w2, w1})
	assert.InDelta(t, v12, v21, 1e-12)
	assert.InDelta(t, 0.5625, v12, 1e-12)
}

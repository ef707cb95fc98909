/*package walls provides the standard wall shapes applied to cells before
any particle-particle cutting: planes, spheres, and cylinders. All satisfy
grid.Wall.

Curved walls are approximated, per cell, by the tangent plane closest to
the cell's particle; with blocks small against the curvature this is the
usual trade.*/
package walls

import (
	"math"

	"github.com/vorogo/voro/cell"
	"github.com/vorogo/voro/grid"
)

// DefaultID is the face id used by walls that are not given one. Ids at or
// below it stay clear of the six box-face ids.
const DefaultID = -99

// Plane is the half space {p : p . n <= d}.
type Plane struct {
	nx, ny, nz float64
	d          float64
	id         int
}

// NewPlane returns a plane wall with normal (nx, ny, nz) and displacement
// d, keeping the side the normal points away from.
func NewPlane(nx, ny, nz, d float64, id int) *Plane {
	return &Plane{nx, ny, nz, d, id}
}

func (w *Plane) Inside(x, y, z float64) bool {
	return x*w.nx+y*w.ny+z*w.nz < w.d
}

func (w *Plane) Cut(c *cell.Cell, x, y, z float64) bool {
	dq := 2 * (w.d - (x*w.nx + y*w.ny + z*w.nz))
	return c.Cut(w.id, w.nx, w.ny, w.nz, dq)
}

// Sphere keeps the inside of the sphere of radius r centered on
// (cx, cy, cz).
type Sphere struct {
	cx, cy, cz float64
	r          float64
	id         int
}

func NewSphere(cx, cy, cz, r float64, id int) *Sphere {
	return &Sphere{cx, cy, cz, r, id}
}

func (w *Sphere) Inside(x, y, z float64) bool {
	dx, dy, dz := x-w.cx, y-w.cy, z-w.cz
	return dx*dx+dy*dy+dz*dz < w.r*w.r
}

func (w *Sphere) Cut(c *cell.Cell, x, y, z float64) bool {
	dx, dy, dz := x-w.cx, y-w.cy, z-w.cz
	dq := dx*dx + dy*dy + dz*dz
	if dq < 1e-10 {
		// The particle sits at the center; no tangent plane is defined.
		return true
	}
	dq = 2 * (math.Sqrt(dq)*w.r - dq)
	return c.Cut(w.id, dx, dy, dz, dq)
}

// Cylinder keeps the inside of the infinite cylinder of radius r around the
// axis through (px, py, pz) with direction (ax, ay, az).
type Cylinder struct {
	px, py, pz float64
	ax, ay, az float64
	asi        float64 // 1 / |axis|^2
	r          float64
	id         int
}

func NewCylinder(px, py, pz, ax, ay, az, r float64, id int) *Cylinder {
	return &Cylinder{
		px, py, pz, ax, ay, az,
		1 / (ax*ax + ay*ay + az*az), r, id,
	}
}

func (w *Cylinder) radial(x, y, z float64) (dx, dy, dz float64) {
	dx, dy, dz = x-w.px, y-w.py, z-w.pz
	pa := (dx*w.ax + dy*w.ay + dz*w.az) * w.asi
	return dx - w.ax*pa, dy - w.ay*pa, dz - w.az*pa
}

func (w *Cylinder) Inside(x, y, z float64) bool {
	dx, dy, dz := w.radial(x, y, z)
	return dx*dx+dy*dy+dz*dz < w.r*w.r
}

func (w *Cylinder) Cut(c *cell.Cell, x, y, z float64) bool {
	dx, dy, dz := w.radial(x, y, z)
	pa := dx*dx + dy*dy + dz*dz
	if pa < 1e-10 {
		return true
	}
	pa = 2 * (math.Sqrt(pa)*w.r - pa)
	return c.Cut(w.id, dx, dy, dz, pa)
}

// Typechecking.
var (
	_ grid.Wall = &Plane{}
	_ grid.Wall = &Sphere{}
	_ grid.Wall = &Cylinder{}
)

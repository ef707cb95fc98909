/*package cell implements the convex polyhedron that represents a single
Voronoi cell. A Cell starts out as an axis-aligned box centered on its
particle and is whittled down by successive half-space cuts, one per
candidate neighbor or wall.

All coordinates are relative to the cell's particle.*/
package cell

import (
	"math"
)

const (
	// cutTol is the distance below which a vertex is considered to lie on a
	// cutting plane.
	cutTol = 1e-11

	// mergeTol is the distance below which two intersection points on a
	// cutting plane are merged into one vertex.
	mergeTol = 1e-9
)

// Face ids assigned by Init to the six starting box faces. Walls added to a
// container conventionally use ids of -7 and below.
const (
	FaceXMin = -1
	FaceXMax = -2
	FaceYMin = -3
	FaceYMax = -4
	FaceZMin = -5
	FaceZMax = -6
)

// Vec is a point in the cell's local frame.
type Vec [3]float64

// Cell is a convex polyhedron stored as a set of outward-oriented polygonal
// faces. Each face remembers the id of the particle or wall whose cut
// created it.
type Cell struct {
	faces [][]Vec
	ids   []int

	// Scratch buffers reused across cuts.
	clipBuf []Vec
	capBuf  []Vec
}

// New returns an empty Cell. Init must be called before the cell is cut.
func New() *Cell {
	return &Cell{}
}

// NewBox returns a Cell initialized to the box [x1,x2]x[y1,y2]x[z1,z2].
func NewBox(x1, x2, y1, y2, z1, z2 float64) *Cell {
	c := New()
	c.Init(x1, x2, y1, y2, z1, z2)
	return c
}

// Init resets the cell to the box [x1,x2]x[y1,y2]x[z1,z2]. Any previously
// allocated face storage is reused.
func (c *Cell) Init(x1, x2, y1, y2, z1, z2 float64) {
	c.faces = c.faces[:0]
	c.ids = c.ids[:0]

	c.addFace(FaceXMin,
		Vec{x1, y1, z1}, Vec{x1, y1, z2}, Vec{x1, y2, z2}, Vec{x1, y2, z1})
	c.addFace(FaceXMax,
		Vec{x2, y1, z1}, Vec{x2, y2, z1}, Vec{x2, y2, z2}, Vec{x2, y1, z2})
	c.addFace(FaceYMin,
		Vec{x1, y1, z1}, Vec{x2, y1, z1}, Vec{x2, y1, z2}, Vec{x1, y1, z2})
	c.addFace(FaceYMax,
		Vec{x1, y2, z1}, Vec{x1, y2, z2}, Vec{x2, y2, z2}, Vec{x2, y2, z1})
	c.addFace(FaceZMin,
		Vec{x1, y1, z1}, Vec{x1, y2, z1}, Vec{x2, y2, z1}, Vec{x2, y1, z1})
	c.addFace(FaceZMax,
		Vec{x1, y1, z2}, Vec{x2, y1, z2}, Vec{x2, y2, z2}, Vec{x1, y2, z2})
}

func (c *Cell) addFace(id int, vs ...Vec) {
	c.faces = append(c.faces, vs)
	c.ids = append(c.ids, id)
}

// Cut intersects the cell with the half space 2*(v . n) <= rs, where
// n = (nx, ny, nz). For a neighboring particle at displacement n this is the
// Voronoi bisector when rs = |n|^2 and the radical (power) bisector when rs
// is shifted by the squared-radius difference. The id is recorded on the
// face the cut creates.
//
// Cut returns false if the half space excludes the entire cell, leaving the
// cell in an undefined state.
func (c *Cell) Cut(id int, nx, ny, nz, rs float64) bool {
	anyIn, anyOut := false, false
	for _, f := range c.faces {
		for _, v := range f {
			d := 2*(v[0]*nx+v[1]*ny+v[2]*nz) - rs
			if d < -cutTol {
				anyIn = true
			} else if d > cutTol {
				anyOut = true
			}
		}
	}
	if !anyOut {
		return true
	}
	if !anyIn {
		return false
	}

	capPts := c.capBuf[:0]
	out := 0
	for fi, f := range c.faces {
		clipped, pts := clipFace(f, c.clipBuf[:0], nx, ny, nz, rs)
		capPts = append(capPts, pts...)
		if len(clipped) >= 3 {
			c.faces[out] = append(c.faces[out][:0], clipped...)
			c.ids[out] = c.ids[fi]
			out++
		}
		c.clipBuf = clipped[:0]
	}
	c.faces = c.faces[:out]
	c.ids = c.ids[:out]
	c.capBuf = capPts

	capFace := orderCap(dedup(capPts), nx, ny, nz)
	if len(capFace) >= 3 {
		// The scratch buffer is reused on the next cut, so the face gets
		// its own storage.
		face := make([]Vec, len(capFace))
		copy(face, capFace)
		c.addFace(id, face...)
	}
	return true
}

// clipFace clips one polygon against the half space, appending kept vertices
// to dst. Points where an edge crosses the plane are also returned
// separately so the caller can assemble the new cap face.
func clipFace(f, dst []Vec, nx, ny, nz, rs float64) (clipped, crossings []Vec) {
	n := len(f)
	var pts []Vec
	for i := 0; i < n; i++ {
		a, b := f[i], f[(i+1)%n]
		da := 2*(a[0]*nx+a[1]*ny+a[2]*nz) - rs
		db := 2*(b[0]*nx+b[1]*ny+b[2]*nz) - rs

		if da <= 0 {
			dst = append(dst, a)
		}
		if (da < 0 && db > 0) || (da > 0 && db < 0) {
			t := da / (da - db)
			p := Vec{
				a[0] + t*(b[0]-a[0]),
				a[1] + t*(b[1]-a[1]),
				a[2] + t*(b[2]-a[2]),
			}
			dst = append(dst, p)
			pts = append(pts, p)
		} else if da == 0 {
			pts = append(pts, a)
		}
	}
	return dst, pts
}

func dedup(pts []Vec) []Vec {
	out := pts[:0]
	for _, p := range pts {
		keep := true
		for _, q := range out {
			dx, dy, dz := p[0]-q[0], p[1]-q[1], p[2]-q[2]
			if dx*dx+dy*dy+dz*dz < mergeTol*mergeTol {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, p)
		}
	}
	return out
}

// orderCap sorts the crossing points counterclockwise around the outward
// plane normal so the cap face closes the cut polyhedron.
func orderCap(pts []Vec, nx, ny, nz float64) []Vec {
	if len(pts) < 3 {
		return nil
	}

	norm := math.Sqrt(nx*nx + ny*ny + nz*nz)
	nhx, nhy, nhz := nx/norm, ny/norm, nz/norm

	// Any vector not parallel to n works as a seed for the in-plane basis.
	ax, ay, az := 1.0, 0.0, 0.0
	if math.Abs(nhx) > 0.9 {
		ax, ay, az = 0.0, 1.0, 0.0
	}
	ux, uy, uz := nhy*az-nhz*ay, nhz*ax-nhx*az, nhx*ay-nhy*ax
	un := math.Sqrt(ux*ux + uy*uy + uz*uz)
	ux, uy, uz = ux/un, uy/un, uz/un
	wx, wy, wz := nhy*uz-nhz*uy, nhz*ux-nhx*uz, nhx*uy-nhy*ux

	var cx, cy, cz float64
	for _, p := range pts {
		cx += p[0]
		cy += p[1]
		cz += p[2]
	}
	m := float64(len(pts))
	cx, cy, cz = cx/m, cy/m, cz/m

	angles := make([]float64, len(pts))
	for i, p := range pts {
		dx, dy, dz := p[0]-cx, p[1]-cy, p[2]-cz
		angles[i] = math.Atan2(
			dx*wx+dy*wy+dz*wz,
			dx*ux+dy*uy+dz*uz,
		)
	}
	// Insertion sort; cap faces rarely hold more than a handful of points.
	for i := 1; i < len(pts); i++ {
		for j := i; j > 0 && angles[j-1] > angles[j]; j-- {
			angles[j-1], angles[j] = angles[j], angles[j-1]
			pts[j-1], pts[j] = pts[j], pts[j-1]
		}
	}
	// The (u, w) basis satisfies u x w = n, so ascending angle winds the
	// face counterclockwise around the outward normal.
	return pts
}

// Volume returns the volume of the cell via the divergence theorem over its
// outward-oriented faces.
func (c *Cell) Volume() float64 {
	vol := 0.0
	for _, f := range c.faces {
		v0 := f[0]
		for i := 1; i < len(f)-1; i++ {
			v1, v2 := f[i], f[i+1]
			vol += v0[0]*(v1[1]*v2[2]-v1[2]*v2[1]) +
				v0[1]*(v1[2]*v2[0]-v1[0]*v2[2]) +
				v0[2]*(v1[0]*v2[1]-v1[1]*v2[0])
		}
	}
	return vol / 6
}

// Centroid returns the centroid of the cell relative to its particle.
func (c *Cell) Centroid() (cx, cy, cz float64) {
	var vol float64
	for _, f := range c.faces {
		v0 := f[0]
		for i := 1; i < len(f)-1; i++ {
			v1, v2 := f[i], f[i+1]
			dv := v0[0]*(v1[1]*v2[2]-v1[2]*v2[1]) +
				v0[1]*(v1[2]*v2[0]-v1[0]*v2[2]) +
				v0[2]*(v1[0]*v2[1]-v1[1]*v2[0])
			vol += dv
			// Tetrahedron centroid, with the fourth corner at the origin.
			cx += dv * (v0[0] + v1[0] + v2[0])
			cy += dv * (v0[1] + v1[1] + v2[1])
			cz += dv * (v0[2] + v1[2] + v2[2])
		}
	}
	if vol == 0 {
		return 0, 0, 0
	}
	return cx / (4 * vol), cy / (4 * vol), cz / (4 * vol)
}

// MaxRadiusSquared returns the squared distance from the particle to the
// farthest vertex of the cell. A neighbor at squared distance rs can only
// cut the cell if rs < 4*MaxRadiusSquared.
func (c *Cell) MaxRadiusSquared() float64 {
	max := 0.0
	for _, f := range c.faces {
		for _, v := range f {
			r := v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
			if r > max {
				max = r
			}
		}
	}
	return max
}

// NumFaces returns the number of faces of the cell.
func (c *Cell) NumFaces() int { return len(c.faces) }

// Neighbors returns the ids recorded on the cell's faces, in face order.
// Negative ids correspond to container boundaries and walls.
func (c *Cell) Neighbors() []int {
	out := make([]int, len(c.ids))
	copy(out, c.ids)
	return out
}

// Face returns a copy of the vertex loop of face i.
func (c *Cell) Face(i int) []Vec {
	out := make([]Vec, len(c.faces[i]))
	copy(out, c.faces[i])
	return out
}

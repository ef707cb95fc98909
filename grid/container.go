/*package grid implements the spatial container at the heart of the
tessellation: a uniform 3D grid of blocks that stores particle positions,
resolves periodic and fixed boundaries, and bootstraps the starting cell
that the compute engine then cuts down.

The grid uses a doubled index range along periodic axes so that "one period
to the left" and "one period to the right" are ordinary integer offsets.
Search loops run over block indices in [0, 2n) with the home block at n;
RegionIndex folds those back into storage indices and reports the matching
coordinate translation.*/
package grid

import (
	"fmt"
	"math"
)

// maxBlockMem is the hard ceiling on per-block particle capacity. Hitting
// it means pathological input (e.g. a huge number of coincident particles)
// rather than a big simulation, so growth past it fails. A var so tests can
// lower it.
var maxBlockMem = 1 << 24

// base carries the domain geometry and block storage shared by Container
// and PolyContainer. Bounds, grid dimensions, and periodicity are fixed at
// construction.
type base struct {
	ax, bx, ay, by, az, bz float64
	nx, ny, nz             int
	nxy, nxyz              int
	xPeriodic              bool
	yPeriodic              bool
	zPeriodic              bool

	boxx, boxy, boxz float64
	xsp, ysp, zsp    float64

	// Per-block parallel arrays. Slices are sized to capacity; co tracks
	// how many slots are in use.
	ids [][]int
	pos [][]float64 // 3 values per particle
	rad [][]float64 // 1 value per particle; nil unless radii are tracked

	co []int

	walls []Wall
}

func (b *base) init(
	ax, bx, ay, by, az, bz float64,
	nx, ny, nz int,
	periodicX, periodicY, periodicZ bool,
	blockCap int, radii bool,
) error {
	if bx <= ax || by <= ay || bz <= az {
		return fmt.Errorf(
			"grid: invalid domain (%g,%g) x (%g,%g) x (%g,%g): "+
				"bounds must satisfy min < max on every axis",
			ax, bx, ay, by, az, bz,
		)
	}
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return fmt.Errorf(
			"grid: invalid block counts %d x %d x %d: "+
				"need a positive count on every axis", nx, ny, nz,
		)
	}
	if blockCap <= 0 {
		return fmt.Errorf(
			"grid: need a positive initial block capacity, not %d", blockCap,
		)
	}

	b.ax, b.bx, b.ay, b.by, b.az, b.bz = ax, bx, ay, by, az, bz
	b.nx, b.ny, b.nz = nx, ny, nz
	b.nxy, b.nxyz = nx*ny, nx*ny*nz
	b.xPeriodic, b.yPeriodic, b.zPeriodic = periodicX, periodicY, periodicZ

	b.boxx = (bx - ax) / float64(nx)
	b.boxy = (by - ay) / float64(ny)
	b.boxz = (bz - az) / float64(nz)
	b.xsp = 1 / b.boxx
	b.ysp = 1 / b.boxy
	b.zsp = 1 / b.boxz

	b.ids = make([][]int, b.nxyz)
	b.pos = make([][]float64, b.nxyz)
	if radii {
		b.rad = make([][]float64, b.nxyz)
	}
	b.co = make([]int, b.nxyz)
	for ijk := 0; ijk < b.nxyz; ijk++ {
		b.ids[ijk] = make([]int, blockCap)
		b.pos[ijk] = make([]float64, 3*blockCap)
		if radii {
			b.rad[ijk] = make([]float64, blockCap)
		}
	}
	return nil
}

// Bounds returns the domain bounds (ax, bx, ay, by, az, bz).
func (b *base) Bounds() (ax, bx, ay, by, az, bz float64) {
	return b.ax, b.bx, b.ay, b.by, b.az, b.bz
}

// Blocks returns the grid dimensions.
func (b *base) Blocks() (nx, ny, nz int) { return b.nx, b.ny, b.nz }

// NumBlocks returns the total number of blocks.
func (b *base) NumBlocks() int { return b.nxyz }

// BlockSize returns the side lengths of one block.
func (b *base) BlockSize() (boxx, boxy, boxz float64) {
	return b.boxx, b.boxy, b.boxz
}

// Periodic reports the per-axis periodicity flags.
func (b *base) Periodic() (x, y, z bool) {
	return b.xPeriodic, b.yPeriodic, b.zPeriodic
}

// Count returns the number of particles stored in block ijk.
func (b *base) Count(ijk int) int { return b.co[ijk] }

// Particle returns the id and position of the particle in slot q of block
// ijk.
func (b *base) Particle(ijk, q int) (id int, x, y, z float64) {
	return b.ids[ijk][q], b.pos[ijk][3*q], b.pos[ijk][3*q+1], b.pos[ijk][3*q+2]
}

// Inside returns true if the point lies within the domain bounds.
func (b *base) Inside(x, y, z float64) bool {
	return x > b.ax && x < b.bx &&
		y > b.ay && y < b.by &&
		z > b.az && z < b.bz
}

// locate maps a position to its owning block, remapping the coordinates of
// periodic axes into the domain and clamping the block index into range on
// fixed axes. It grows the block first if it is full.
func (b *base) locate(x, y, z float64) (ijk int, rx, ry, rz float64, err error) {
	i, rx := remap(x, b.ax, b.boxx, b.xsp, b.nx, b.xPeriodic)
	j, ry := remap(y, b.ay, b.boxy, b.ysp, b.ny, b.yPeriodic)
	k, rz := remap(z, b.az, b.boxz, b.zsp, b.nz, b.zPeriodic)
	ijk = i + b.nx*(j+b.ny*k)

	if b.co[ijk] == len(b.ids[ijk]) {
		if err := b.grow(ijk); err != nil {
			return 0, 0, 0, 0, err
		}
	}
	return ijk, rx, ry, rz, nil
}

func remap(x, a, box, sp float64, n int, periodic bool) (int, float64) {
	i := int(math.Floor((x - a) * sp))
	if periodic {
		l := pMod(i, n)
		// l-i is a whole number of periods, so this shifts x by whole
		// domain lengths.
		x += box * float64(l-i)
		return l, x
	}
	if i < 0 {
		return 0, x
	}
	if i >= n {
		return n - 1, x
	}
	return i, x
}

// pMod computes the positive modulo x % y.
func pMod(x, y int) int {
	m := x % y
	if m < 0 {
		m += y
	}
	return m
}

// grow doubles the capacity of block ijk, preserving the stored particles
// and their order. Growth never happens implicitly outside an insertion.
func (b *base) grow(ijk int) error {
	newMem := 2 * len(b.ids[ijk])
	if newMem > maxBlockMem {
		return fmt.Errorf(
			"grid: block %d needs %d particle slots, more than the %d "+
				"allowed; the input is almost certainly degenerate",
			ijk, newMem, maxBlockMem,
		)
	}

	ids := make([]int, newMem)
	copy(ids, b.ids[ijk][:b.co[ijk]])
	b.ids[ijk] = ids

	pos := make([]float64, 3*newMem)
	copy(pos, b.pos[ijk][:3*b.co[ijk]])
	b.pos[ijk] = pos

	if b.rad != nil {
		rad := make([]float64, newMem)
		copy(rad, b.rad[ijk][:b.co[ijk]])
		b.rad[ijk] = rad
	}
	return nil
}

func (b *base) append(ijk, id int, x, y, z float64) {
	q := b.co[ijk]
	b.ids[ijk][q] = id
	b.pos[ijk][3*q] = x
	b.pos[ijk][3*q+1] = y
	b.pos[ijk][3*q+2] = z
	b.co[ijk]++
}

func (b *base) clear() {
	for ijk := range b.co {
		b.co[ijk] = 0
	}
}

// Container stores particles for an ordinary Voronoi tessellation, where
// every bisector is the plane equidistant between two particles.
type Container struct {
	base
}

// NewContainer creates a container over the domain
// [ax,bx] x [ay,by] x [az,bz], split into nx x ny x nz blocks with the given
// per-axis periodicity. Each block starts with room for blockCap particles.
func NewContainer(
	ax, bx, ay, by, az, bz float64,
	nx, ny, nz int,
	periodicX, periodicY, periodicZ bool,
	blockCap int,
) (*Container, error) {
	con := &Container{}
	err := con.init(
		ax, bx, ay, by, az, bz, nx, ny, nz,
		periodicX, periodicY, periodicZ, blockCap, false,
	)
	if err != nil {
		return nil, err
	}
	return con, nil
}

// Put stores a particle. Positions on periodic axes are wrapped into the
// domain; on fixed axes out-of-range positions are assigned to the nearest
// edge block. Put fails only when a block cannot grow any further.
func (con *Container) Put(id int, x, y, z float64) error {
	ijk, x, y, z, err := con.locate(x, y, z)
	if err != nil {
		return err
	}
	con.append(ijk, id, x, y, z)
	return nil
}

// Clear removes all particles. Block capacity is retained.
func (con *Container) Clear() { con.clear() }

// Policy returns the identity radius policy used for ordinary Voronoi
// diagrams.
func (con *Container) Policy() RadiusPolicy { return uniformPolicy{} }

// PolyContainer stores particles with per-particle radii for radical
// (power/Laguerre) tessellations.
type PolyContainer struct {
	base
	maxRadius float64
}

// NewPolyContainer is NewContainer for the radius-tracking variant.
func NewPolyContainer(
	ax, bx, ay, by, az, bz float64,
	nx, ny, nz int,
	periodicX, periodicY, periodicZ bool,
	blockCap int,
) (*PolyContainer, error) {
	con := &PolyContainer{}
	err := con.init(
		ax, bx, ay, by, az, bz, nx, ny, nz,
		periodicX, periodicY, periodicZ, blockCap, true,
	)
	if err != nil {
		return nil, err
	}
	return con, nil
}

// Put stores a particle with its radius, using the same remapping rules as
// Container.Put.
func (con *PolyContainer) Put(id int, x, y, z, r float64) error {
	ijk, x, y, z, err := con.locate(x, y, z)
	if err != nil {
		return err
	}
	q := con.co[ijk]
	con.append(ijk, id, x, y, z)
	con.rad[ijk][q] = r
	if r > con.maxRadius {
		con.maxRadius = r
	}
	return nil
}

// Radius returns the radius of the particle in slot q of block ijk.
func (con *PolyContainer) Radius(ijk, q int) float64 {
	return con.rad[ijk][q]
}

// MaxRadius returns the largest radius stored so far.
func (con *PolyContainer) MaxRadius() float64 { return con.maxRadius }

// Clear removes all particles and resets the maximum radius. Block capacity
// is retained.
func (con *PolyContainer) Clear() {
	con.clear()
	con.maxRadius = 0
}

// Policy returns a fresh radical-bisector policy bound to this container.
// Each concurrent worker should hold its own.
func (con *PolyContainer) Policy() RadiusPolicy {
	return &powerPolicy{con: con}
}

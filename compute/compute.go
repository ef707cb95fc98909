/*package compute drives the neighbor search that turns a bootstrapped cell
into a finished Voronoi (or power) cell. It walks blocks in expanding
shells around the particle, cutting the cell against every particle it
finds, and stops once no particle outside the scanned region can still
reach the cell.

The engine only talks to the container through the Source interface, so it
works identically for the uniform and the radius-weighted variants.*/
package compute

import (
	"math"

	"github.com/vorogo/voro/cell"
	"github.com/vorogo/voro/grid"
)

// coincTol is the squared distance below which a candidate sits too close
// for the cutting plane to be resolved against the cell's vertex tolerance.
// Such a pair is treated as one particle: the earliest stored one keeps the
// cell.
const coincTol = 1e-22

// Source is the grid-query surface the engine needs. Both grid.Container
// and grid.PolyContainer satisfy it.
type Source interface {
	InitCell(c *cell.Cell, ijk, q int) (grid.Context, bool)
	RegionIndex(ctx *grid.Context, ei, ej, ek int) (int, float64, float64, float64)
	FracPos(ctx *grid.Context) (fx, fy, fz float64)
	Count(ijk int) int
	Particle(ijk, q int) (id int, x, y, z float64)
	Blocks() (nx, ny, nz int)
	BlockSize() (boxx, boxy, boxz float64)
	Periodic() (x, y, z bool)
	NumBlocks() int
	Policy() grid.RadiusPolicy
}

// Typechecking.
var (
	_ Source = &grid.Container{}
	_ Source = &grid.PolyContainer{}
)

// Cell cuts c, previously bootstrapped into ctx by InitCell, against every
// stored particle that can contribute a face. It returns false if a cut
// removed the cell entirely, which can happen for power diagrams; such a
// particle has no cell. Particles closer together than the cut resolution
// share one cell, assigned to the one stored first.
func Cell(src Source, c *cell.Cell, ctx *grid.Context) bool {
	nx, ny, nz := src.Blocks()
	px, py, pz := src.Periodic()
	boxx, boxy, boxz := src.BlockSize()
	fx, fy, fz := src.FracPos(ctx)

	pol := src.Policy()
	pol.Begin(ctx.IJK, ctx.Q)

	maxS := shellLimit(ctx.I, nx, px)
	if s := shellLimit(ctx.J, ny, py); s > maxS {
		maxS = s
	}
	if s := shellLimit(ctx.K, nz, pz); s > maxS {
		maxS = s
	}

	for s := 0; s <= maxS; s++ {
		for dk := -s; dk <= s; dk++ {
			ek := ctx.Sk + dk
			if !axisValid(ek, dk, ctx.K, nz, pz) {
				continue
			}
			for dj := -s; dj <= s; dj++ {
				ej := ctx.Sj + dj
				if !axisValid(ej, dj, ctx.J, ny, py) {
					continue
				}
				for di := -s; di <= s; di++ {
					// Only the surface of the cube is new at shell s.
					if abs(di) != s && abs(dj) != s && abs(dk) != s {
						continue
					}
					ei := ctx.Si + di
					if !axisValid(ei, di, ctx.I, nx, px) {
						continue
					}

					ijk, qx, qy, qz := src.RegionIndex(ctx, ei, ej, ek)
					for q := 0; q < src.Count(ijk); q++ {
						if ijk == ctx.IJK && q == ctx.Q &&
							qx == 0 && qy == 0 && qz == 0 {
							continue
						}
						id, x, y, z := src.Particle(ijk, q)
						dx := x + qx - ctx.X
						dy := y + qy - ctx.Y
						dz := z + qz - ctx.Z
						rs := dx*dx + dy*dy + dz*dz
						if rs < coincTol {
							// A coincident particle in an earlier slot
							// already owns this cell.
							if ijk < ctx.IJK ||
								(ijk == ctx.IJK && q < ctx.Q) {
								return false
							}
							continue
						}
						rs = pol.Scale(rs, ijk, q)
						if !c.Cut(id, dx, dy, dz, rs) {
							return false
						}
					}
				}
			}
		}

		// A particle beyond the scanned cube is at least lr away; once no
		// such particle can cut the cell, the search is done.
		lr := shellDistance(s, fx, boxx, ctx.Si, nx, px)
		if d := shellDistance(s, fy, boxy, ctx.Sj, ny, py); d < lr {
			lr = d
		}
		if d := shellDistance(s, fz, boxz, ctx.Sk, nz, pz); d < lr {
			lr = d
		}
		if pol.Cutoff(lr*lr) >= 4*c.MaxRadiusSquared() {
			break
		}
	}
	return true
}

// shellLimit returns the largest shell that can hold unvisited blocks along
// one axis.
func shellLimit(i, n int, periodic bool) int {
	if periodic {
		return n
	}
	if i > n-1-i {
		return i
	}
	return n - 1 - i
}

// axisValid reports whether a search index along one axis addresses a real
// block. Periodic axes accept the whole doubled range scanned here; fixed
// axes use plain bounds.
func axisValid(e, d, i, n int, periodic bool) bool {
	if periodic {
		return d >= -n && d <= n
	}
	return e >= 0 && e < n
}

// shellDistance returns the minimum distance from the particle to any block
// outside the cube of radius s along one axis, or +Inf when that axis has
// no unscanned blocks left.
func shellDistance(s int, f, box float64, si, n int, periodic bool) float64 {
	var low, high float64 = math.Inf(1), math.Inf(1)
	if periodic {
		if s < n {
			low = f + float64(s)*box
			high = box - f + float64(s)*box
		}
	} else {
		if si-s > 0 {
			low = f + float64(s)*box
		}
		if si+s < n-1 {
			high = box - f + float64(s)*box
		}
	}
	if low < high {
		return low
	}
	return high
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// All computes every cell in src, calling emit with each particle's id,
// position, and finished cell. The cell is reused between calls. Particles
// whose cells are removed by walls, power cuts, or an earlier coincident
// particle are skipped.
func All(src Source, emit func(id int, x, y, z float64, c *cell.Cell)) {
	c := cell.New()
	for ijk := 0; ijk < src.NumBlocks(); ijk++ {
		for q := 0; q < src.Count(ijk); q++ {
			ctx, ok := src.InitCell(c, ijk, q)
			if !ok {
				continue
			}
			if !Cell(src, c, &ctx) {
				continue
			}
			id, x, y, z := src.Particle(ijk, q)
			emit(id, x, y, z, c)
		}
	}
}

// SumCellVolumes computes all cells and returns the total volume. With no
// walls this equals the domain volume.
func SumCellVolumes(src Source) float64 {
	sum := 0.0
	All(src, func(_ int, _, _, _ float64, c *cell.Cell) {
		sum += c.Volume()
	})
	return sum
}

package grid

import (
	"github.com/vorogo/voro/cell"
)

// Context is the per-cell working state produced by InitCell and consumed
// by the compute engine's grid queries. A Context is only meaningful for
// the one cell construction it was created for, and each concurrent worker
// must use its own.
type Context struct {
	// Position of the particle whose cell is under construction.
	X, Y, Z float64

	// Block coordinates of the particle and the flat index of its block.
	I, J, K int
	IJK     int

	// Slot of the particle within its block.
	Q int

	// Search start indices, one per axis: the block count n on periodic
	// axes, the particle's own block coordinate on fixed ones.
	Si, Sj, Sk int

	// IJK offset by the start indices; RegionIndex adds search offsets to
	// this base.
	Base int
}

// InitCell bootstraps the cell of the particle in slot q of block ijk: the
// cell starts as the full domain on fixed axes and as the symmetric half
// domain centered on the particle on periodic axes (no periodic image can
// cut closer than that), and every registered wall is then applied in
// insertion order.
//
// ok is false if the walls removed the cell entirely. That is a normal
// geometric outcome, not an error; callers skip the particle.
func (b *base) InitCell(c *cell.Cell, ijk, q int) (ctx Context, ok bool) {
	ctx.X = b.pos[ijk][3*q]
	ctx.Y = b.pos[ijk][3*q+1]
	ctx.Z = b.pos[ijk][3*q+2]
	ctx.I = ijk % b.nx
	ctx.J = (ijk / b.nx) % b.ny
	ctx.K = ijk / b.nxy
	ctx.IJK = ijk
	ctx.Q = q

	var x1, x2, y1, y2, z1, z2 float64
	if b.xPeriodic {
		x2 = 0.5 * (b.bx - b.ax)
		x1 = -x2
		ctx.Si = b.nx
	} else {
		x1, x2 = b.ax-ctx.X, b.bx-ctx.X
		ctx.Si = ctx.I
	}
	if b.yPeriodic {
		y2 = 0.5 * (b.by - b.ay)
		y1 = -y2
		ctx.Sj = b.ny
	} else {
		y1, y2 = b.ay-ctx.Y, b.by-ctx.Y
		ctx.Sj = ctx.J
	}
	if b.zPeriodic {
		z2 = 0.5 * (b.bz - b.az)
		z1 = -z2
		ctx.Sk = b.nz
	} else {
		z1, z2 = b.az-ctx.Z, b.bz-ctx.Z
		ctx.Sk = ctx.K
	}

	c.Init(x1, x2, y1, y2, z1, z2)
	ctx.Base = ijk - ctx.Si - b.nx*(ctx.Sj+b.ny*ctx.Sk)

	if !b.applyWalls(c, ctx.X, ctx.Y, ctx.Z) {
		return ctx, false
	}
	return ctx, true
}

// RegionIndex maps search indices (ei, ej, ek) to the flat index of a
// block, plus the translation (qx, qy, qz) that must be added to positions
// read from that block to bring them into the frame of ctx's particle.
//
// Along a periodic axis the indices run over a doubled range with the home
// block at n: an index that would land below n (measured from the
// particle's block) wraps up by n and records a translation of minus one
// domain length, and an index at or past 2n wraps down by n and records
// plus one domain length. The two directions deliberately use different
// comparisons (< n versus >= 2n); which one fires picks which periodic
// image of a neighbor is seen.
func (b *base) RegionIndex(
	ctx *Context, ei, ej, ek int,
) (ijk int, qx, qy, qz float64) {
	if b.xPeriodic {
		if ctx.I+ei < b.nx {
			ei += b.nx
			qx = -(b.bx - b.ax)
		} else if ctx.I+ei >= b.nx<<1 {
			ei -= b.nx
			qx = b.bx - b.ax
		}
	}
	if b.yPeriodic {
		if ctx.J+ej < b.ny {
			ej += b.ny
			qy = -(b.by - b.ay)
		} else if ctx.J+ej >= b.ny<<1 {
			ej -= b.ny
			qy = b.by - b.ay
		}
	}
	if b.zPeriodic {
		if ctx.K+ek < b.nz {
			ek += b.nz
			qz = -(b.bz - b.az)
		} else if ctx.K+ek >= b.nz<<1 {
			ek -= b.nz
			qz = b.bz - b.az
		}
	}
	return ctx.Base + ei + b.nx*(ej+b.ny*ek), qx, qy, qz
}

// FracPos returns the position of ctx's particle relative to the low corner
// of its own block.
func (b *base) FracPos(ctx *Context) (fx, fy, fz float64) {
	fx = ctx.X - b.ax - b.boxx*float64(ctx.I)
	fy = ctx.Y - b.ay - b.boxy*float64(ctx.J)
	fz = ctx.Z - b.az - b.boxz*float64(ctx.K)
	return fx, fy, fz
}

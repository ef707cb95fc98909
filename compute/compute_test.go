package compute

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vorogo/voro/cell"
	"github.com/vorogo/voro/grid"
	"github.com/vorogo/voro/walls"
)

func container(t *testing.T, periodic bool) *grid.Container {
	con, err := grid.NewContainer(
		0, 1, 0, 1, 0, 1, 4, 4, 4,
		periodic, periodic, periodic, 8,
	)
	assert.NoError(t, err)
	return con
}

func TestSingleParticlePeriodic(t *testing.T) {
	con := container(t, true)
	assert.NoError(t, con.Put(0, 0.5, 0.5, 0.5))

	// With only its own periodic images to cut against, the particle keeps
	// the whole domain.
	count := 0
	All(con, func(id int, x, y, z float64, c *cell.Cell) {
		count++
		assert.Equal(t, 0, id)
		assert.InDelta(t, 1.0, c.Volume(), 1e-10)
	})
	assert.Equal(t, 1, count)
}

func TestTwoParticleBisector(t *testing.T) {
	con := container(t, false)
	assert.NoError(t, con.Put(0, 0.25, 0.5, 0.5))
	assert.NoError(t, con.Put(1, 0.75, 0.5, 0.5))

	vols := map[int]float64{}
	All(con, func(id int, _, _, _ float64, c *cell.Cell) {
		vols[id] = c.Volume()
	})

	assert.InDelta(t, 0.5, vols[0], 1e-10)
	assert.InDelta(t, 0.5, vols[1], 1e-10)
}

func TestNeighborsAreSymmetricPair(t *testing.T) {
	con := container(t, false)
	assert.NoError(t, con.Put(0, 0.25, 0.5, 0.5))
	assert.NoError(t, con.Put(1, 0.75, 0.5, 0.5))

	neighbors := map[int][]int{}
	All(con, func(id int, _, _, _ float64, c *cell.Cell) {
		neighbors[id] = c.Neighbors()
	})

	assert.Contains(t, neighbors[0], 1)
	assert.Contains(t, neighbors[1], 0)
}

func TestVolumeSumFixed(t *testing.T) {
	con := container(t, false)
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		err := con.Put(i, rnd.Float64(), rnd.Float64(), rnd.Float64())
		assert.NoError(t, err)
	}

	// With no walls the cells tile the domain exactly.
	assert.InDelta(t, 1.0, SumCellVolumes(con), 1e-8)
}

func TestVolumeSumPeriodic(t *testing.T) {
	con := container(t, true)
	rnd := rand.New(rand.NewSource(99))
	for i := 0; i < 20; i++ {
		err := con.Put(i, rnd.Float64(), rnd.Float64(), rnd.Float64())
		assert.NoError(t, err)
	}

	assert.InDelta(t, 1.0, SumCellVolumes(con), 1e-8)
}

func TestPowerBisector(t *testing.T) {
	con, err := grid.NewPolyContainer(
		0, 1, 0, 1, 0, 1, 4, 4, 4, false, false, false, 8,
	)
	assert.NoError(t, err)
	assert.NoError(t, con.Put(0, 0.3, 0.5, 0.5, 0.1))
	assert.NoError(t, con.Put(1, 0.7, 0.5, 0.5, 0.2))

	vols := map[int]float64{}
	All(con, func(id int, _, _, _ float64, c *cell.Cell) {
		vols[id] = c.Volume()
	})

	// The radical plane between the particles sits at
	// x = 0.5 + (r1^2 - r2^2) / (2 * 0.4) = 0.4625.
	assert.InDelta(t, 0.4625, vols[0], 1e-10)
	assert.InDelta(t, 0.5375, vols[1], 1e-10)
	assert.InDelta(t, 1.0, vols[0]+vols[1], 1e-10)
}

func TestNearCoincidentParticlesShareOneCell(t *testing.T) {
	con := container(t, false)
	assert.NoError(t, con.Put(0, 0.25, 0.5, 0.5))
	assert.NoError(t, con.Put(1, 0.75, 0.5, 0.5))
	// Closer to particle 1 than any cut can resolve.
	assert.NoError(t, con.Put(2, 0.75+1e-13, 0.5, 0.5))

	ids := []int{}
	All(con, func(id int, _, _, _ float64, _ *cell.Cell) {
		ids = append(ids, id)
	})
	assert.ElementsMatch(t, []int{0, 1}, ids, "first stored duplicate wins")
	assert.InDelta(t, 1.0, SumCellVolumes(con), 1e-10,
		"duplicates must not double count volume")
}

func TestExactDuplicateParticles(t *testing.T) {
	con := container(t, true)
	assert.NoError(t, con.Put(0, 0.5, 0.5, 0.5))
	assert.NoError(t, con.Put(1, 0.5, 0.5, 0.5))

	count := 0
	All(con, func(id int, _, _, _ float64, c *cell.Cell) {
		count++
		assert.Equal(t, 0, id)
		assert.InDelta(t, 1.0, c.Volume(), 1e-10)
	})
	assert.Equal(t, 1, count)
}

func TestWallClipsCells(t *testing.T) {
	con := container(t, false)
	// Keep x < 0.5 only.
	con.AddWall(walls.NewPlane(1, 0, 0, 0.5, walls.DefaultID))
	assert.NoError(t, con.Put(0, 0.25, 0.5, 0.5))

	vols := []float64{}
	All(con, func(_ int, _, _, _ float64, c *cell.Cell) {
		vols = append(vols, c.Volume())
		assert.Contains(t, c.Neighbors(), walls.DefaultID)
	})
	assert.Equal(t, 1, len(vols))
	assert.InDelta(t, 0.5, vols[0], 1e-10)
}

func TestWallRemovesAllCells(t *testing.T) {
	con := container(t, false)
	// The kept half space x < -0.5 misses the whole domain.
	con.AddWall(walls.NewPlane(1, 0, 0, -0.5, walls.DefaultID))
	assert.NoError(t, con.Put(0, 0.5, 0.5, 0.5))

	count := 0
	All(con, func(_ int, _, _, _ float64, _ *cell.Cell) { count++ })
	assert.Equal(t, 0, count, "degenerate cells are skipped, not emitted")
	assert.InDelta(t, 0.0, SumCellVolumes(con), 1e-12)
}

func TestDenseBlockGrowthEndToEnd(t *testing.T) {
	// Small blocks force growth during insertion and multi-shell searches
	// during computation.
	con, err := grid.NewContainer(
		0, 1, 0, 1, 0, 1, 2, 2, 2, true, true, true, 1,
	)
	assert.NoError(t, err)

	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 30; i++ {
		err := con.Put(i, rnd.Float64(), rnd.Float64(), rnd.Float64())
		assert.NoError(t, err)
	}

	assert.InDelta(t, 1.0, SumCellVolumes(con), 1e-8)
}

package config

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, text string) string {
	f, err := ioutil.TempFile("", "voro_config")
	assert.NoError(t, err)
	_, err = f.Write([]byte(text))
	assert.NoError(t, err)
	assert.NoError(t, f.Close())
	return f.Name()
}

func TestReadConfig(t *testing.T) {
	fname := writeConfig(t, `[container]
minx = 0
maxx = 2
miny = -1
maxy = 1
minz = 0
maxz = 1
blocksx = 8
blocksy = 4
blocksz = 2
periodicx = true
radii = true
particlefile = particles.txt
`)
	defer os.Remove(fname)

	c, err := Read(fname)
	assert.NoError(t, err)

	assert.Equal(t, 2.0, c.MaxX)
	assert.Equal(t, -1.0, c.MinY)
	assert.Equal(t, 8, c.BlocksX)
	assert.Equal(t, 2, c.BlocksZ)
	assert.True(t, c.PeriodicX)
	assert.False(t, c.PeriodicY)
	assert.True(t, c.Radii)
	assert.Equal(t, "particles.txt", c.ParticleFile)
	assert.Equal(t, defaultBlockCap, c.BlockCap, "default capacity")
}

func TestReadConfigErrors(t *testing.T) {
	fname := writeConfig(t, `[container]
minx = 1
maxx = 0
miny = 0
maxy = 1
minz = 0
maxz = 1
blocksx = 4
blocksy = 4
blocksz = 4
`)
	defer os.Remove(fname)

	_, err := Read(fname)
	assert.Error(t, err, "inverted bounds")

	fname2 := writeConfig(t, `[container]
minx = 0
maxx = 1
miny = 0
maxy = 1
minz = 0
maxz = 1
blocksy = 4
blocksz = 4
`)
	defer os.Remove(fname2)

	_, err = Read(fname2)
	assert.Error(t, err, "missing block count")
}

func TestCheckInitRejectsNegativeBlockCap(t *testing.T) {
	c := &Container{
		MinX: 0, MaxX: 1, MinY: 0, MaxY: 1, MinZ: 0, MaxZ: 1,
		BlocksX: 4, BlocksY: 4, BlocksZ: 4, BlockCap: -2,
	}
	assert.Error(t, c.CheckInit())
}

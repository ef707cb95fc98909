/*package config reads tessellation setups from gcfg-style configuration
files. A minimal file looks like

	[container]
	minx = 0
	maxx = 1
	miny = 0
	maxy = 1
	minz = 0
	maxz = 1
	blocksx = 4
	blocksy = 4
	blocksz = 4
	periodicx = true
	periodicy = true
	periodicz = true
	particlefile = particles.txt
*/
package config

import (
	"fmt"

	"gopkg.in/gcfg.v1"
)

const defaultBlockCap = 8

type Container struct {
	// Required
	MinX, MaxX                float64
	MinY, MaxY                float64
	MinZ, MaxZ                float64
	BlocksX, BlocksY, BlocksZ int

	// Optional
	PeriodicX, PeriodicY, PeriodicZ bool
	BlockCap                        int
	Radii                           bool
	ParticleFile                    string
}

// CheckInit validates the configuration and fills in defaults.
func (c *Container) CheckInit() error {
	if c.MaxX <= c.MinX {
		return fmt.Errorf(
			"Need MaxX > MinX, but have MinX = %g, MaxX = %g.",
			c.MinX, c.MaxX,
		)
	} else if c.MaxY <= c.MinY {
		return fmt.Errorf(
			"Need MaxY > MinY, but have MinY = %g, MaxY = %g.",
			c.MinY, c.MaxY,
		)
	} else if c.MaxZ <= c.MinZ {
		return fmt.Errorf(
			"Need MaxZ > MinZ, but have MinZ = %g, MaxZ = %g.",
			c.MinZ, c.MaxZ,
		)
	}

	if c.BlocksX <= 0 {
		return fmt.Errorf("Need to specify a positive BlocksX.")
	} else if c.BlocksY <= 0 {
		return fmt.Errorf("Need to specify a positive BlocksY.")
	} else if c.BlocksZ <= 0 {
		return fmt.Errorf("Need to specify a positive BlocksZ.")
	}

	if c.BlockCap == 0 {
		c.BlockCap = defaultBlockCap
	} else if c.BlockCap < 0 {
		return fmt.Errorf(
			"Given a negative BlockCap, %d.", c.BlockCap,
		)
	}

	return nil
}

type wrapper struct {
	Container Container
}

// Read reads and validates a [container] section from the given file.
func Read(fname string) (*Container, error) {
	wrap := wrapper{}
	if err := gcfg.ReadFileInto(&wrap, fname); err != nil {
		return nil, err
	}
	if err := wrap.Container.CheckInit(); err != nil {
		return nil, err
	}
	return &wrap.Container, nil
}

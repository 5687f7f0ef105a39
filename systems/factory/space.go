package factory

import (
	cfg "github.com/automoto/doomerang-hostiles/config"
	"github.com/automoto/doomerang-hostiles/spatial"
)

// CreateSpace builds the spatial index for a level. Zero sizes fall back to
// the configured defaults.
func CreateSpace(width, height int) *spatial.Space {
	if width <= 0 {
		width = cfg.Sim.DefaultWidth
	}
	if height <= 0 {
		height = cfg.Sim.DefaultHeight
	}
	return spatial.NewSpace(width, height, cfg.Sim.CellWidth, cfg.Sim.CellHeight)
}

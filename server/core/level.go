package core

import (
	"fmt"
	"os"

	"github.com/automoto/doomerang-hostiles/sim"
)

// LoadLevels loads every .tmx level under assetsDir/levels into world and
// activates start, or the first level by name when start is empty.
func LoadLevels(world *sim.World, assetsDir, start string) error {
	names, err := world.LoadLevels(os.DirFS(assetsDir), "levels")
	if err != nil {
		return fmt.Errorf("load all levels: %w", err)
	}

	if len(names) == 0 {
		return fmt.Errorf("no levels in %s", assetsDir)
	}
	if start == "" {
		start = names[0]
	}
	if err := world.ActivateLevel(start); err != nil {
		return fmt.Errorf("start level: %w", err)
	}
	return nil
}

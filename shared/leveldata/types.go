// Package leveldata provides TMX level parsing for the simulation.
// It has no dependencies on donburi or resolv, pure data only.
package leveldata

// LevelData holds everything the simulation reads from a TMX level file.
type LevelData struct {
	ID          string
	SolidRects  []SolidRect
	SpawnPoints []SpawnPoint
	EnemySpawns []EnemySpawn
	MapWidth    int
	MapHeight   int
}

// SolidRect represents a solid collision tile.
type SolidRect struct {
	X, Y, W, H float64
}

// SpawnPoint represents a player spawn location. Name is the target of a
// spawn-point handoff from another level.
type SpawnPoint struct {
	X, Y  float64
	Index int
	Name  string
}

// EnemySpawn represents an enemy placement.
type EnemySpawn struct {
	X, Y     float64
	Type     string
	BossID   string // stable ledger id, empty for regular enemies
	Boss     bool
	FaceLeft bool
}

// SpawnPoint returns the spawn point named name.
func (l *LevelData) SpawnPoint(name string) (SpawnPoint, bool) {
	for _, sp := range l.SpawnPoints {
		if sp.Name == name {
			return sp, true
		}
	}
	return SpawnPoint{}, false
}

// DefaultSpawn returns the spawn point with the lowest index, or the map
// origin if the level has none.
func (l *LevelData) DefaultSpawn() SpawnPoint {
	if len(l.SpawnPoints) == 0 {
		return SpawnPoint{}
	}
	best := l.SpawnPoints[0]
	for _, sp := range l.SpawnPoints[1:] {
		if sp.Index < best.Index {
			best = sp
		}
	}
	return best
}

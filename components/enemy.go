package components

import (
	"github.com/automoto/doomerang-hostiles/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type EnemyData struct {
	ID         string                  // stable id; for bosses the persistent ledger key
	TypeName   string                  // "Slime", "Goblin", "Dragon" etc...
	TypeConfig *config.EnemyTypeConfig // Cached reference to type configuration
	Boss       bool

	Facing         float64 // config.DirectionLeft or config.DirectionRight
	AttackCooldown float64 // seconds until the next attack may start

	SpawnPosition dmath.Vec2 // captured once at creation, used by respawn
}

var Enemy = donburi.NewComponentType[EnemyData]()

package factory

import (
	"errors"
	"log/slog"

	"github.com/automoto/doomerang-hostiles/archetypes"
	"github.com/automoto/doomerang-hostiles/components"
	cfg "github.com/automoto/doomerang-hostiles/config"
	"github.com/automoto/doomerang-hostiles/shared/messages"
	"github.com/automoto/doomerang-hostiles/spatial"
	"github.com/automoto/doomerang-hostiles/tags"
	"github.com/google/uuid"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	// ErrDefeated is returned when a boss already in the defeat ledger is
	// asked to spawn again.
	ErrDefeated = errors.New("boss already defeated")
	// ErrUnknownEnemyType is returned when neither the requested type nor
	// the configured default type exists.
	ErrUnknownEnemyType = errors.New("unknown enemy type")
)

// DefeatLedger is the read side of the persistent defeat ledger.
type DefeatLedger interface {
	Contains(id string) bool
}

// EnemySpawn describes one enemy placement.
type EnemySpawn struct {
	ID       string // stable id; required for bosses, generated otherwise
	TypeName string
	X, Y     float64
	Boss     bool // forces the boss path even if the type is not a boss
	Facing   float64
}

// CreateEnemy builds an enemy and adds its collision object to space. A boss
// whose id is in defeated is not created and ErrDefeated is returned.
func CreateEnemy(ecs *ecs.ECS, space *spatial.Space, defeated DefeatLedger, spawn EnemySpawn) (*donburi.Entry, error) {
	// Use the requested enemy type, fall back to the default if not found
	typeName := spawn.TypeName
	enemyType, exists := cfg.Enemy.Types[typeName]
	if !exists {
		slog.Warn("unknown enemy type, using default",
			"type", typeName,
			"default", cfg.Enemy.DefaultType)
		typeName = cfg.Enemy.DefaultType
		enemyType, exists = cfg.Enemy.Types[typeName]
		if !exists {
			return nil, ErrUnknownEnemyType
		}
	}

	boss := spawn.Boss || enemyType.Boss
	id := spawn.ID
	if id == "" {
		if boss {
			id = typeName
		} else {
			id = uuid.NewString()
		}
	}

	if boss && defeated != nil && defeated.Contains(id) {
		slog.Info("skipping defeated boss", "id", id, "type", typeName)
		return nil, ErrDefeated
	}

	var enemy *donburi.Entry
	if boss {
		enemy = archetypes.Enemy.Spawn(ecs, tags.Boss)
	} else {
		enemy = archetypes.Enemy.Spawn(ecs)
	}

	// Create collision object
	obj := resolv.NewObject(spawn.X, spawn.Y, enemyType.CollisionWidth, enemyType.CollisionHeight)
	obj.SetShape(resolv.NewRectangle(0, 0, enemyType.CollisionWidth, enemyType.CollisionHeight))
	obj.AddTags("character", tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	if space != nil {
		space.Add(obj)
	}

	facing := spawn.Facing
	if facing == 0 {
		facing = cfg.DirectionLeft
	}

	components.Enemy.SetValue(enemy, components.EnemyData{
		ID:            id,
		TypeName:      typeName,
		TypeConfig:    &enemyType,
		Boss:          boss,
		Facing:        facing,
		SpawnPosition: dmath.NewVec2(spawn.X, spawn.Y),
	})
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: enemyType.Health,
		Max:     enemyType.Health,
	})
	components.Presence.Get(enemy).SetAll(true)

	messages.EnemySpawned.Publish(ecs.World, messages.EnemySpawnedEvent{
		Entity: enemy.Entity(),
		ID:     id,
	})

	return enemy, nil
}

// Package messages defines the events the simulation publishes and the
// commands clients send. Events are queued on the donburi world and delivered
// once per step, so the simulation never depends on who is listening.
package messages

import (
	"github.com/automoto/doomerang-hostiles/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	dmath "github.com/yohamta/donburi/features/math"
)

// StateChangedEvent is published on every behavior state transition.
type StateChangedEvent struct {
	Entity donburi.Entity
	Old    config.StateID
	New    config.StateID
}

// HealthChangedEvent is published whenever hit points change or are reset.
type HealthChangedEvent struct {
	Entity  donburi.Entity
	Current int
	Max     int
}

// SpawnLootEvent asks the loot collaborator to place one pickup.
type SpawnLootEvent struct {
	Source   donburi.Entity
	Item     string
	Quantity int
	Position dmath.Vec2
}

// MonsterDefeatedEvent is published once per death with the kill rewards.
type MonsterDefeatedEvent struct {
	Entity   donburi.Entity
	ID       string
	TypeName string
	Boss     bool
	Exp      int
	Gold     int
}

// EnemySpawnedEvent is published when an enemy materializes in the world.
type EnemySpawnedEvent struct {
	Entity donburi.Entity
	ID     string
}

// EnemyRespawnedEvent is published when a dead enemy comes back.
type EnemyRespawnedEvent struct {
	Entity donburi.Entity
	ID     string
}

// EnemyDespawnedEvent is published right before an enemy leaves the world
// for good (boss death or level teardown).
type EnemyDespawnedEvent struct {
	Entity donburi.Entity
	ID     string
}

// PlayerHitEvent is published when an enemy attack connects.
type PlayerHitEvent struct {
	Player   donburi.Entity
	Attacker donburi.Entity
	Damage   int
}

// PlayerDefeatedEvent is published when the player's health reaches zero.
type PlayerDefeatedEvent struct {
	Player donburi.Entity
}

var (
	StateChanged    = events.NewEventType[StateChangedEvent]()
	HealthChanged   = events.NewEventType[HealthChangedEvent]()
	SpawnLoot       = events.NewEventType[SpawnLootEvent]()
	MonsterDefeated = events.NewEventType[MonsterDefeatedEvent]()
	EnemySpawned    = events.NewEventType[EnemySpawnedEvent]()
	EnemyRespawned  = events.NewEventType[EnemyRespawnedEvent]()
	EnemyDespawned  = events.NewEventType[EnemyDespawnedEvent]()
	PlayerHit       = events.NewEventType[PlayerHitEvent]()
	PlayerDefeated  = events.NewEventType[PlayerDefeatedEvent]()
)

// Dispatch delivers every queued event to its subscribers.
func Dispatch(w donburi.World) {
	events.ProcessAllEvents(w)
}

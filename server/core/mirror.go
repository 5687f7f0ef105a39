package core

import (
	"log/slog"

	"github.com/automoto/doomerang-hostiles/shared/messages"
	"github.com/automoto/doomerang-hostiles/shared/netcomponents"
	"github.com/automoto/doomerang-hostiles/sim"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/yohamta/donburi"
)

// Mirror keeps one network-synced entity per enemy, plus one for the player,
// and copies the simulation's observable state into them every tick.
type Mirror struct {
	sim          *sim.World
	world        donburi.World
	player       donburi.Entity
	playerSynced bool

	// enemy entity -> mirror entity
	enemies map[donburi.Entity]donburi.Entity
}

// NewMirror subscribes to enemy spawn and despawn events on the world.
func NewMirror(world *sim.World) *Mirror {
	m := &Mirror{
		sim:     world,
		world:   world.ECS().World,
		enemies: make(map[donburi.Entity]donburi.Entity),
	}

	messages.EnemySpawned.Subscribe(m.world, func(w donburi.World, ev messages.EnemySpawnedEvent) {
		m.track(ev.Entity)
	})
	messages.EnemyDespawned.Subscribe(m.world, func(w donburi.World, ev messages.EnemyDespawnedEvent) {
		m.untrack(ev.Entity)
	})

	return m
}

func (m *Mirror) track(enemy donburi.Entity) {
	if _, ok := m.enemies[enemy]; ok {
		return
	}
	entity := m.world.Create(netcomponents.NetEnemy)
	if err := srvsync.NetworkSync(m.world, &entity, srvsync.WithInterp(netcomponents.NetEnemy)); err != nil {
		slog.Warn("failed to set up network sync for enemy", "error", err)
		m.world.Remove(entity)
		return
	}
	m.enemies[enemy] = entity
}

func (m *Mirror) untrack(enemy donburi.Entity) {
	entity, ok := m.enemies[enemy]
	if !ok {
		return
	}
	delete(m.enemies, enemy)
	if m.world.Valid(entity) {
		m.world.Remove(entity)
	}
}

// Sync copies the current enemy and player state into the mirrors. Mirrors
// of enemies that no longer exist are dropped.
func (m *Mirror) Sync() {
	for enemy := range m.enemies {
		if !m.world.Valid(enemy) {
			m.untrack(enemy)
		}
	}

	for _, e := range m.sim.Enemies() {
		mirror, ok := m.enemies[e.Entity()]
		if !ok {
			continue
		}
		cur, max := e.Health()
		pos := e.Position()
		presence := e.Presence()
		netcomponents.NetEnemy.SetValue(m.world.Entry(mirror), netcomponents.NetEnemyData{
			ID:        e.ID(),
			TypeName:  e.TypeName(),
			X:         pos.X,
			Y:         pos.Y,
			Facing:    e.Facing(),
			State:     int(e.CurrentState()),
			Health:    cur,
			MaxHealth: max,
			Boss:      e.IsBoss(),
			Dead:      e.IsDead(),
			Visible:   presence.Visible,
		})
	}

	m.syncPlayer()
}

func (m *Mirror) syncPlayer() {
	if !m.sim.HasPlayer() {
		return
	}
	if !m.playerSynced || !m.world.Valid(m.player) {
		entity := m.world.Create(netcomponents.NetPlayer)
		if err := srvsync.NetworkSync(m.world, &entity, srvsync.WithInterp(netcomponents.NetPlayer)); err != nil {
			slog.Warn("failed to set up network sync for player", "error", err)
			m.world.Remove(entity)
			return
		}
		m.player = entity
		m.playerSynced = true
	}

	cur, max := m.sim.PlayerHealth()
	pos := m.sim.PlayerPosition()
	netcomponents.NetPlayer.SetValue(m.world.Entry(m.player), netcomponents.NetPlayerData{
		X:           pos.X,
		Y:           pos.Y,
		Facing:      m.sim.PlayerFacing(),
		Health:      cur,
		MaxHealth:   max,
		KnockedBack: m.sim.PlayerKnockedBack(),
		Level:       m.sim.CurrentLevelID(),
	})
}

// Len returns the number of mirrored enemies.
func (m *Mirror) Len() int {
	return len(m.enemies)
}

package systems

import (
	"testing"

	"github.com/automoto/doomerang-hostiles/components"
	cfg "github.com/automoto/doomerang-hostiles/config"
	"github.com/automoto/doomerang-hostiles/shared/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerAttackHitsEnemiesInWeaponRange(t *testing.T) {
	f := newFixture(t)
	player := f.spawnPlayer(100, 100)
	near := f.spawnSlime(t, 101, 100)
	edge := f.spawnSlime(t, 101.4, 100)
	far := f.spawnSlime(t, 105, 100)

	hit := ResolvePlayerAttack(f.env, player)
	assert.Equal(t, 2, hit)

	assert.Equal(t, 9, health(near))
	assert.Equal(t, 9, health(edge))
	assert.Equal(t, 10, health(far))
	assert.Equal(t, cfg.Knockback, CurrentState(near))
	assert.Equal(t, cfg.Idle, CurrentState(far))
	assert.Greater(t, velocity(near).X, 0.0, "pushed away from the player")
}

func TestPlayerAttackFollowsFacing(t *testing.T) {
	f := newFixture(t)
	player := f.spawnPlayer(100, 100)
	behind := f.spawnSlime(t, 99, 100)

	assert.Equal(t, 0, ResolvePlayerAttack(f.env, player))

	components.Player.Get(player).Facing = cfg.DirectionLeft
	assert.Equal(t, 1, ResolvePlayerAttack(f.env, player))
	assert.Equal(t, 9, health(behind))
}

func TestPlayerAttackKillsAndSkipsDead(t *testing.T) {
	f := newFixture(t)
	player := f.spawnPlayer(100, 100)
	e := f.spawnSlime(t, 101, 100)
	components.Health.Get(e).Current = 1

	assert.Equal(t, 1, ResolvePlayerAttack(f.env, player))
	assert.True(t, IsDead(e))
	assert.False(t, IsKnockedBack(e), "no knockback on a corpse")

	assert.Equal(t, 0, ResolvePlayerAttack(f.env, player))
}

func TestPlayerDefeatedOnce(t *testing.T) {
	f := newFixture(t)
	defeated := record(f.world(), messages.PlayerDefeated)
	player := f.spawnPlayer(100, 100)
	enemy := f.spawnSlime(t, 101, 100)

	DamagePlayer(f.env, player, enemy.Entity(), 4)
	assert.Equal(t, 6, health(player))

	DamagePlayer(f.env, player, enemy.Entity(), 100)
	assert.Equal(t, 0, health(player))

	DamagePlayer(f.env, player, enemy.Entity(), 1)
	f.dispatch()
	require.Len(t, defeated.events, 1)
	assert.Equal(t, player.Entity(), defeated.events[0].Player)
}

func TestEnemyAttackIgnoredWhenDead(t *testing.T) {
	f := newFixture(t)
	player := f.spawnPlayer(101, 100)
	e := f.spawnSlime(t, 100, 100)
	Die(f.env, e)

	assert.False(t, ResolveEnemyAttack(f.env, e))
	assert.Equal(t, 10, health(player))
}

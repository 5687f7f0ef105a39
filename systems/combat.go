package systems

import (
	"log/slog"

	"github.com/automoto/doomerang-hostiles/components"
	cfg "github.com/automoto/doomerang-hostiles/config"
	"github.com/automoto/doomerang-hostiles/shared/messages"
	"github.com/automoto/doomerang-hostiles/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// attackPoint returns where a swing lands, mirrored by facing.
func attackPoint(pos dmath.Vec2, facing, offsetX, offsetY float64) dmath.Vec2 {
	return pos.Add(dmath.NewVec2(offsetX*facing, offsetY))
}

// ResolveEnemyAttack lands an enemy's swing on the first player within its
// weapon range: the player loses the enemy's damage and is knocked back.
// Returns true if a player was hit.
func ResolveEnemyAttack(env *Env, e *donburi.Entry) bool {
	if env.Space == nil || !e.Valid() || IsDead(e) {
		return false
	}
	if !components.Presence.Get(e).Combat {
		return false
	}

	enemy := components.Enemy.Get(e)
	typ := enemy.TypeConfig
	pos := components.Object.Get(e).Position()
	point := attackPoint(pos, enemy.Facing, typ.AttackOffsetX, typ.AttackOffsetY)

	hits := env.Space.QueryInRange(point, typ.WeaponRange, tags.ResolvPlayer)
	if len(hits) == 0 {
		return false
	}

	player, ok := hits[0].Object.Data.(*donburi.Entry)
	if !ok || !player.Valid() {
		return false
	}

	DamagePlayer(env, player, e.Entity(), typ.Damage)
	TriggerKnockback(env, player, pos, typ.KnockbackForce, typ.KnockbackDuration, typ.StunDuration)
	return true
}

// DamagePlayer takes damage from the player's health. The first hit that
// brings it to zero publishes PlayerDefeated.
func DamagePlayer(env *Env, player *donburi.Entry, attacker donburi.Entity, damage int) {
	if !player.Valid() || !player.HasComponent(components.Player) {
		return
	}
	data := components.Player.Get(player)
	if data.Defeated {
		return
	}

	health := components.Health.Get(player)
	health.Current -= damage
	if health.Current > health.Max {
		health.Current = health.Max
	}
	if health.Current < 0 {
		health.Current = 0
	}

	messages.PlayerHit.Publish(player.World, messages.PlayerHitEvent{
		Player:   player.Entity(),
		Attacker: attacker,
		Damage:   damage,
	})
	messages.HealthChanged.Publish(player.World, messages.HealthChangedEvent{
		Entity:  player.Entity(),
		Current: health.Current,
		Max:     health.Max,
	})

	if health.Current == 0 {
		data.Defeated = true
		slog.Info("player defeated", "entity", player.Entity())
		messages.PlayerDefeated.Publish(player.World, messages.PlayerDefeatedEvent{
			Player: player.Entity(),
		})
	}
}

// ResolvePlayerAttack damages and knocks back every live enemy within the
// player's weapon range. Returns the number of enemies hit.
func ResolvePlayerAttack(env *Env, player *donburi.Entry) int {
	if env.Space == nil || !player.Valid() || !player.HasComponent(components.Player) {
		return 0
	}

	pos := components.Object.Get(player).Position()
	facing := components.Player.Get(player).Facing
	point := attackPoint(pos, facing, cfg.Player.AttackOffsetX, cfg.Player.AttackOffsetY)

	hits := env.Space.QueryInRange(point, cfg.Player.WeaponRange, tags.ResolvEnemy)
	count := 0
	for _, hit := range hits {
		enemy, ok := hit.Object.Data.(*donburi.Entry)
		if !ok || !enemy.Valid() || IsDead(enemy) {
			continue
		}
		if !components.Presence.Get(enemy).Combat {
			continue
		}

		ApplyDamage(env, enemy, -cfg.Player.Damage)
		TriggerKnockback(env, enemy, pos,
			cfg.Player.KnockbackForce,
			cfg.Player.KnockbackDuration,
			cfg.Player.StunDuration)
		count++
	}
	return count
}

package systems

import (
	"log/slog"
	"math"

	cfg "github.com/automoto/doomerang-hostiles/config"
	"github.com/automoto/doomerang-hostiles/shared/messages"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// ResolveLoot rolls every loot table entry independently and publishes one
// SpawnLoot event per dropped unit, scattered inside the type's loot radius.
// An entry drops when its roll in [0,1) is strictly below the drop chance,
// not at or below it, so a chance of 0 never drops and 1 always does.
// Returns the number of units dropped.
func ResolveLoot(env *Env, w donburi.World, source donburi.Entity, typ *cfg.EnemyTypeConfig, pos dmath.Vec2) int {
	dropped := 0
	for i, entry := range typ.Loot {
		if entry.Item == "" {
			slog.Warn("skipping loot entry without item", "type", typ.Name, "index", i)
			continue
		}
		if entry.MinQty < 0 || entry.MaxQty < entry.MinQty {
			slog.Warn("skipping loot entry with invalid quantity",
				"type", typ.Name,
				"item", entry.Item,
				"min", entry.MinQty,
				"max", entry.MaxQty)
			continue
		}

		if env.Rand.Float64() >= entry.DropChance {
			continue
		}

		qty := entry.MinQty + env.Rand.IntN(entry.MaxQty-entry.MinQty+1)
		for n := 0; n < qty; n++ {
			messages.SpawnLoot.Publish(w, messages.SpawnLootEvent{
				Source:   source,
				Item:     entry.Item,
				Quantity: 1,
				Position: pos.Add(env.offsetInRadius(typ.LootRadius)),
			})
		}
		dropped += qty
	}
	return dropped
}

// offsetInRadius returns a point uniformly distributed in a disk of radius r.
func (env *Env) offsetInRadius(r float64) dmath.Vec2 {
	if r <= 0 {
		return dmath.NewVec2(0, 0)
	}
	angle := env.Rand.Float64() * 2 * math.Pi
	dist := r * math.Sqrt(env.Rand.Float64())
	return dmath.NewVec2(math.Cos(angle)*dist, math.Sin(angle)*dist)
}

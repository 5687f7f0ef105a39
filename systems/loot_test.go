package systems

import (
	"math/rand/v2"
	"testing"

	cfg "github.com/automoto/doomerang-hostiles/config"
	"github.com/automoto/doomerang-hostiles/shared/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

var noSource donburi.Entity

func TestLootCertainAndImpossibleDrops(t *testing.T) {
	typ := &cfg.EnemyTypeConfig{
		Name: "Test",
		Loot: []cfg.LootEntry{
			{Item: "A", DropChance: 1.0, MinQty: 1, MaxQty: 1},
			{Item: "B", DropChance: 0.0, MinQty: 1, MaxQty: 1},
		},
	}

	for seed := uint64(0); seed < 200; seed++ {
		f := newFixture(t)
		f.env.Rand = rand.New(rand.NewPCG(seed, seed*7+1))
		drops := record(f.world(), messages.SpawnLoot)

		n := ResolveLoot(f.env, f.world(), noSource, typ, dmath.NewVec2(10, 10))
		f.dispatch()

		require.Equal(t, 1, n)
		require.Len(t, drops.events, 1)
		assert.Equal(t, "A", drops.events[0].Item)
	}
}

func TestLootQuantityAndScatter(t *testing.T) {
	f := newFixture(t)
	drops := record(f.world(), messages.SpawnLoot)
	typ := &cfg.EnemyTypeConfig{
		Name:       "Test",
		LootRadius: 1.5,
		Loot:       []cfg.LootEntry{{Item: "coin", DropChance: 1, MinQty: 2, MaxQty: 4}},
	}
	origin := dmath.NewVec2(50, 50)

	total := 0
	for i := 0; i < 100; i++ {
		n := ResolveLoot(f.env, f.world(), noSource, typ, origin)
		assert.GreaterOrEqual(t, n, 2)
		assert.LessOrEqual(t, n, 4)
		total += n
	}
	f.dispatch()

	require.Len(t, drops.events, total)
	for _, ev := range drops.events {
		assert.Equal(t, 1, ev.Quantity)
		assert.LessOrEqual(t, ev.Position.Distance(origin), 1.5+1e-9)
	}
}

func TestMalformedLootEntriesAreSkipped(t *testing.T) {
	f := newFixture(t)
	drops := record(f.world(), messages.SpawnLoot)
	typ := &cfg.EnemyTypeConfig{
		Name: "Test",
		Loot: []cfg.LootEntry{
			{Item: "", DropChance: 1, MinQty: 1, MaxQty: 1},
			{Item: "backwards", DropChance: 1, MinQty: 3, MaxQty: 1},
			{Item: "ok", DropChance: 1, MinQty: 1, MaxQty: 1},
		},
	}

	n := ResolveLoot(f.env, f.world(), noSource, typ, dmath.NewVec2(0, 0))
	f.dispatch()

	assert.Equal(t, 1, n)
	require.Len(t, drops.events, 1)
	assert.Equal(t, "ok", drops.events[0].Item)
}

func TestZeroQuantityDropsNothing(t *testing.T) {
	f := newFixture(t)
	typ := &cfg.EnemyTypeConfig{
		Loot: []cfg.LootEntry{{Item: "air", DropChance: 1, MinQty: 0, MaxQty: 0}},
	}
	assert.Equal(t, 0, ResolveLoot(f.env, f.world(), noSource, typ, dmath.NewVec2(0, 0)))
}

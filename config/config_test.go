package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreValid(t *testing.T) {
	Reset()
	require.NoError(t, Validate())

	slime := Enemy.Types["Slime"]
	assert.Equal(t, 2.0, slime.AttackRange)
	assert.Equal(t, 20.0, slime.DetectRange)
	assert.Equal(t, 0.5, slime.AttackCooldown)
	assert.False(t, slime.Boss)
	assert.True(t, Enemy.Types["Dragon"].Boss)
}

func TestLoadOverlaysExistingType(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	doc := `
sim:
  tick_rate: 30
enemy:
  types:
    Slime:
      health: 42
      loot:
        - item: gem
          drop_chance: 0.5
          min_qty: 1
          max_qty: 2
`
	require.NoError(t, Load(strings.NewReader(doc)))

	assert.Equal(t, 30, Sim.TickRate)
	assert.Equal(t, 16, Sim.CellWidth, "untouched sim fields keep defaults")

	slime := Enemy.Types["Slime"]
	assert.Equal(t, 42, slime.Health)
	assert.Equal(t, 2.0, slime.AttackRange, "untouched type fields keep defaults")
	require.Len(t, slime.Loot, 1)
	assert.Equal(t, LootEntry{Item: "gem", DropChance: 0.5, MinQty: 1, MaxQty: 2}, slime.Loot[0])
}

func TestLoadAddsNewType(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	doc := `
enemy:
  default_type: Bat
  types:
    Bat:
      health: 3
      speed: 4
      detect_range: 8
`
	require.NoError(t, Load(strings.NewReader(doc)))

	bat, ok := Enemy.Types["Bat"]
	require.True(t, ok)
	assert.Equal(t, "Bat", bat.Name)
	assert.Equal(t, 3, bat.Health)
	assert.Equal(t, 1.0, bat.CollisionWidth)
	assert.Equal(t, "Bat", Enemy.DefaultType)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"zero tick rate", "sim:\n  tick_rate: 0\n"},
		{"negative health", "enemy:\n  types:\n    Slime:\n      health: -1\n"},
		{"negative cooldown", "enemy:\n  types:\n    Slime:\n      attack_cooldown: -2\n"},
		{"negative attack duration", "enemy:\n  types:\n    Slime:\n      attack_duration: -1\n"},
		{"unknown default", "enemy:\n  default_type: Nope\n"},
		{"malformed yaml", "sim: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Reset()
			t.Cleanup(Reset)
			assert.Error(t, Load(strings.NewReader(tt.doc)))
		})
	}
}

func TestLoadEmptyDocument(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	require.NoError(t, Load(strings.NewReader("")))
	assert.Equal(t, 60, Sim.TickRate)
}

func TestStateIDString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "knockback", Knockback.String())
	assert.Equal(t, "unknown", StateID(99).String())
	assert.Equal(t, "none", StateNone.String())

	var zero StateID
	assert.Equal(t, Idle, zero, "zero value is idle")
	assert.Equal(t, "idle", zero.String())
}

package config

import "github.com/yohamta/donburi/ecs"

// Default is the only ECS layer; the simulation has no renderers.
const Default ecs.LayerID = 0

// LootEntry is one row of an enemy's loot table.
type LootEntry struct {
	Item       string  `yaml:"item"`
	DropChance float64 `yaml:"drop_chance"` // 0.0 - 1.0
	MinQty     int     `yaml:"min_qty"`
	MaxQty     int     `yaml:"max_qty"`
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name   string `yaml:"name"`
	Health int    `yaml:"health"`
	Boss   bool   `yaml:"boss"`

	// Movement
	Speed float64 `yaml:"speed"` // units per second while chasing

	// Detection
	DetectRange   float64 `yaml:"detect_range"`
	DetectOffsetX float64 `yaml:"detect_offset_x"` // detection anchor relative to position
	DetectOffsetY float64 `yaml:"detect_offset_y"`

	// Combat
	Damage            int     `yaml:"damage"`
	AttackRange       float64 `yaml:"attack_range"`
	AttackCooldown    float64 `yaml:"attack_cooldown"` // seconds
	AttackDuration    float64 `yaml:"attack_duration"` // swing length in seconds; 0 waits for an external FinishAttack
	WeaponRange       float64 `yaml:"weapon_range"`
	AttackOffsetX     float64 `yaml:"attack_offset_x"` // attack point relative to position, mirrored by facing
	AttackOffsetY     float64 `yaml:"attack_offset_y"`
	KnockbackForce    float64 `yaml:"knockback_force"`
	KnockbackDuration float64 `yaml:"knockback_duration"` // seconds
	StunDuration      float64 `yaml:"stun_duration"`      // seconds

	// Death
	RespawnDelay float64     `yaml:"respawn_delay"` // seconds
	Exp          int         `yaml:"exp"`
	Gold         int         `yaml:"gold"`
	Loot         []LootEntry `yaml:"loot"`
	LootRadius   float64     `yaml:"loot_radius"`

	// Dimensions
	CollisionWidth  float64 `yaml:"collision_width"`
	CollisionHeight float64 `yaml:"collision_height"`
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types       map[string]EnemyTypeConfig `yaml:"types"`
	DefaultType string                     `yaml:"default_type"`
}

// PlayerConfig contains the player stats the combat systems read.
type PlayerConfig struct {
	Health int     `yaml:"health"`
	Speed  float64 `yaml:"speed"` // units per second

	Damage            int     `yaml:"damage"`
	WeaponRange       float64 `yaml:"weapon_range"`
	AttackOffsetX     float64 `yaml:"attack_offset_x"`
	AttackOffsetY     float64 `yaml:"attack_offset_y"`
	KnockbackForce    float64 `yaml:"knockback_force"`
	KnockbackDuration float64 `yaml:"knockback_duration"`
	StunDuration      float64 `yaml:"stun_duration"`

	CollisionWidth  float64 `yaml:"collision_width"`
	CollisionHeight float64 `yaml:"collision_height"`
}

// SimConfig holds simulation-wide settings.
type SimConfig struct {
	TickRate   int `yaml:"tick_rate"`
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`

	// Space size used when a level does not define one.
	DefaultWidth  int `yaml:"default_width"`
	DefaultHeight int `yaml:"default_height"`
}

// Global configuration instances
var Enemy EnemyConfig
var Player PlayerConfig
var Sim SimConfig

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Reset()
}

// Reset restores every configuration value to its built-in default.
func Reset() {
	Sim = SimConfig{
		TickRate:      60,
		CellWidth:     16,
		CellHeight:    16,
		DefaultWidth:  2048,
		DefaultHeight: 2048,
	}

	Player = PlayerConfig{
		Health: 10,
		Speed:  4,

		Damage:            1,
		WeaponRange:       1,
		AttackOffsetX:     0.5,
		KnockbackForce:    6,
		KnockbackDuration: 0.15,
		StunDuration:      0.3,

		CollisionWidth:  1,
		CollisionHeight: 1,
	}

	slimeType := EnemyTypeConfig{
		Name:   "Slime",
		Health: 10,

		Speed: 2,

		DetectRange: 20,

		Damage:            1,
		AttackRange:       2,
		AttackCooldown:    0.5,
		AttackDuration:    0.3,
		WeaponRange:       1,
		AttackOffsetX:     0.5,
		KnockbackForce:    5,
		KnockbackDuration: 0.15,
		StunDuration:      0.3,

		RespawnDelay: 30,
		Exp:          3,
		Gold:         3,
		Loot: []LootEntry{
			{Item: "coin", DropChance: 1, MinQty: 1, MaxQty: 3},
			{Item: "slime_gel", DropChance: 0.25, MinQty: 1, MaxQty: 1},
		},
		LootRadius: 1,

		CollisionWidth:  1,
		CollisionHeight: 1,
	}

	goblinType := slimeType
	goblinType.Name = "Goblin"
	goblinType.Health = 15
	goblinType.Speed = 3
	goblinType.Damage = 2
	goblinType.Loot = []LootEntry{
		{Item: "coin", DropChance: 1, MinQty: 2, MaxQty: 5},
		{Item: "health_potion", DropChance: 0.1, MinQty: 1, MaxQty: 1},
	}

	dragonType := EnemyTypeConfig{
		Name:   "Dragon",
		Health: 120,
		Boss:   true,

		Speed: 1.5,

		DetectRange: 25,

		Damage:            4,
		AttackRange:       3,
		AttackCooldown:    1.5,
		AttackDuration:    0.6,
		WeaponRange:       2,
		AttackOffsetX:     1,
		KnockbackForce:    10,
		KnockbackDuration: 0.25,
		StunDuration:      0.5,

		Exp:  100,
		Gold: 250,
		Loot: []LootEntry{
			{Item: "dragon_scale", DropChance: 1, MinQty: 1, MaxQty: 1},
			{Item: "coin", DropChance: 1, MinQty: 20, MaxQty: 40},
		},
		LootRadius: 2,

		CollisionWidth:  3,
		CollisionHeight: 3,
	}

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			slimeType.Name:  slimeType,
			goblinType.Name: goblinType,
			dragonType.Name: dragonType,
		},
		DefaultType: slimeType.Name,
	}
}

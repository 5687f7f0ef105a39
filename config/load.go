package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the YAML layout. Nodes are decoded onto the current
// values so a file only needs to mention what it overrides.
type fileConfig struct {
	Sim    yaml.Node `yaml:"sim"`
	Player yaml.Node `yaml:"player"`
	Enemy  struct {
		DefaultType string               `yaml:"default_type"`
		Types       map[string]yaml.Node `yaml:"types"`
	} `yaml:"enemy"`
}

// LoadFile overlays the YAML file at path onto the current configuration.
func LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	if err := Load(f); err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	return nil
}

// Load overlays YAML read from r onto the current configuration.
func Load(r io.Reader) error {
	var fc fileConfig
	if err := yaml.NewDecoder(r).Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode yaml: %w", err)
	}

	if !fc.Sim.IsZero() {
		if err := fc.Sim.Decode(&Sim); err != nil {
			return fmt.Errorf("sim: %w", err)
		}
	}
	if !fc.Player.IsZero() {
		if err := fc.Player.Decode(&Player); err != nil {
			return fmt.Errorf("player: %w", err)
		}
	}

	for name, node := range fc.Enemy.Types {
		enemyType, exists := Enemy.Types[name]
		if !exists {
			enemyType = EnemyTypeConfig{CollisionWidth: 1, CollisionHeight: 1}
		}
		if err := node.Decode(&enemyType); err != nil {
			return fmt.Errorf("enemy type %q: %w", name, err)
		}
		if enemyType.Name == "" {
			enemyType.Name = name
		}
		Enemy.Types[name] = enemyType
	}
	if fc.Enemy.DefaultType != "" {
		Enemy.DefaultType = fc.Enemy.DefaultType
	}

	return Validate()
}

// Validate reports configuration values the simulation cannot run with.
// Loot rows are not checked here; bad rows are skipped at drop time.
func Validate() error {
	if Sim.TickRate <= 0 {
		return fmt.Errorf("sim.tick_rate must be positive, got %d", Sim.TickRate)
	}
	if Player.Health <= 0 {
		return fmt.Errorf("player.health must be positive, got %d", Player.Health)
	}
	if _, ok := Enemy.Types[Enemy.DefaultType]; !ok {
		return fmt.Errorf("enemy.default_type %q is not a known type", Enemy.DefaultType)
	}
	for name, t := range Enemy.Types {
		switch {
		case t.Health <= 0:
			return fmt.Errorf("enemy type %q: health must be positive", name)
		case t.AttackRange < 0 || t.DetectRange < 0 || t.WeaponRange < 0:
			return fmt.Errorf("enemy type %q: ranges must not be negative", name)
		case t.AttackCooldown < 0 || t.AttackDuration < 0 || t.StunDuration < 0 || t.KnockbackDuration < 0 || t.RespawnDelay < 0:
			return fmt.Errorf("enemy type %q: durations must not be negative", name)
		}
	}
	return nil
}

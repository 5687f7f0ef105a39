package components

import (
	"time"

	"github.com/automoto/doomerang-hostiles/timer"
	"github.com/yohamta/donburi"
)

// DeathData marks an entity that is dead. Its presence is the isDead flag;
// respawn removes it.
type DeathData struct {
	DiedAt       time.Duration
	RespawnTimer *timer.Handle // nil for bosses, which never come back
}

var Death = donburi.NewComponentType[DeathData]()

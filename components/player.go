package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Facing      float64
	KnockedBack bool // set while an enemy hit stuns the player
	Defeated    bool
}

var Player = donburi.NewComponentType[PlayerData]()

package components

import (
	"github.com/automoto/doomerang-hostiles/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTime     float64 // seconds spent in CurrentState
}

var State = donburi.NewComponentType[StateData]()

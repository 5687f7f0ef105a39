package netcomponents

import "github.com/yohamta/donburi"

// NetPlayerData is the client-visible mirror of the session's player.
type NetPlayerData struct {
	X, Y        float64
	Facing      float64
	Health      int
	MaxHealth   int
	KnockedBack bool
	Level       string
}

var NetPlayer = donburi.NewComponentType[NetPlayerData]()

// LerpNetPlayer interpolates between two player states
func LerpNetPlayer(from, to NetPlayerData, t float64) *NetPlayerData {
	out := to
	out.X = from.X + (to.X-from.X)*t
	out.Y = from.Y + (to.Y-from.Y)*t
	return &out
}

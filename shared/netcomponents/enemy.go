package netcomponents

import "github.com/yohamta/donburi"

// NetEnemyData is the client-visible mirror of one enemy.
type NetEnemyData struct {
	ID        string
	TypeName  string // "Slime", "Goblin", "Dragon" etc...
	X, Y      float64
	Facing    float64
	State     int
	Health    int
	MaxHealth int
	Boss      bool
	Dead      bool
	Visible   bool
}

var NetEnemy = donburi.NewComponentType[NetEnemyData]()

// LerpNetEnemy interpolates between two enemy states
func LerpNetEnemy(from, to NetEnemyData, t float64) *NetEnemyData {
	out := to
	out.X = from.X + (to.X-from.X)*t
	out.Y = from.Y + (to.Y-from.Y)*t
	return &out
}

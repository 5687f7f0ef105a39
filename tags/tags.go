package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
	Boss   = donburi.NewTag().SetName("Boss")
	Wall   = donburi.NewTag().SetName("Wall")
)

// Resolv tags, used as spatial query categories
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
)

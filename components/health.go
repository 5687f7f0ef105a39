package components

import "github.com/yohamta/donburi"

// HealthData holds hit points. Systems keep 0 <= Current <= Max.
type HealthData struct {
	Current int
	Max     int
}

var Health = donburi.NewComponentType[HealthData]()

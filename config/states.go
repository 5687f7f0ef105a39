package config

// StateID identifies the behavior state of an enemy. The zero value is Idle.
type StateID int

const (
	Idle StateID = iota
	Chasing
	Attacking
	Knockback
)

// StateNone is reported for entities that have no behavior state.
const StateNone StateID = -1

var stateNames = map[StateID]string{
	StateNone: "none",
	Idle:      "idle",
	Chasing:   "chasing",
	Attacking: "attacking",
	Knockback: "knockback",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

package messages

// PlayerCommand is sent from client to server with the player's intent for
// the next tick.
type PlayerCommand struct {
	Sequence uint32
	MoveX    float64 // -1..1
	MoveY    float64 // -1..1
	Attack   bool
}

// TravelCommand asks the server to activate another level, landing the
// player on the named spawn point.
type TravelCommand struct {
	Level      string
	SpawnPoint string
}

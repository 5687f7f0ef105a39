package components

import "github.com/yohamta/donburi"

// PresenceData carries the switches a dead, respawnable enemy turns off so
// movement, combat, collision and visibility collaborators skip it.
type PresenceData struct {
	Movement  bool
	Combat    bool
	Collision bool
	Visible   bool
}

// Enabled reports whether every switch is on.
func (p *PresenceData) Enabled() bool {
	return p.Movement && p.Combat && p.Collision && p.Visible
}

// SetAll turns every switch on or off.
func (p *PresenceData) SetAll(on bool) {
	p.Movement = on
	p.Combat = on
	p.Collision = on
	p.Visible = on
}

var Presence = donburi.NewComponentType[PresenceData]()

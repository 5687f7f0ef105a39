package systems

import (
	"log/slog"

	"github.com/automoto/doomerang-hostiles/components"
	cfg "github.com/automoto/doomerang-hostiles/config"
	"github.com/automoto/doomerang-hostiles/shared/messages"
	"github.com/yohamta/donburi"
)

// changeState moves the entity to next and publishes StateChanged. Staying in
// the same state is not a transition.
func changeState(e *donburi.Entry, next cfg.StateID) {
	state := components.State.Get(e)
	if state.CurrentState == next {
		return
	}

	prev := state.CurrentState
	state.PreviousState = prev
	state.CurrentState = next
	state.StateTime = 0

	messages.StateChanged.Publish(e.World, messages.StateChangedEvent{
		Entity: e.Entity(),
		Old:    prev,
		New:    next,
	})

	if IsDebugEnabled() {
		slog.Debug("enemy state changed",
			"entity", e.Entity(),
			"from", prev,
			"to", next)
	}
}

// CurrentState returns the behavior state of an enemy, or StateNone for
// entities without one.
func CurrentState(e *donburi.Entry) cfg.StateID {
	if !e.Valid() || !e.HasComponent(components.State) {
		return cfg.StateNone
	}
	return components.State.Get(e).CurrentState
}

package systems

import (
	"math/rand/v2"
	"time"

	"github.com/automoto/doomerang-hostiles/ledger"
	"github.com/automoto/doomerang-hostiles/spatial"
	"github.com/automoto/doomerang-hostiles/timer"
	dmath "github.com/yohamta/donburi/features/math"
)

// Env bundles the collaborators the enemy systems are wired with.
type Env struct {
	Space  *spatial.Space
	Timers *timer.Scheduler
	Ledger *ledger.Ledger
	Rand   *rand.Rand

	// Bounds keeps moving entities inside the queryable area. Zero disables it.
	Bounds dmath.Vec2
}

// NewEnv creates an Env. A nil ledger, scheduler or rng is replaced with a
// fresh one.
func NewEnv(space *spatial.Space, timers *timer.Scheduler, defeated *ledger.Ledger, rng *rand.Rand) *Env {
	if timers == nil {
		timers = timer.NewScheduler()
	}
	if defeated == nil {
		defeated = ledger.New()
	}
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return &Env{
		Space:  space,
		Timers: timers,
		Ledger: defeated,
		Rand:   rng,
	}
}

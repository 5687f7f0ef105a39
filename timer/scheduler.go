// Package timer provides the step-driven one-shot scheduler used for respawn
// and stun expiry. Timers never run on their own goroutine: they fire from
// Advance, on the simulation step boundary.
package timer

import (
	"container/heap"
	"math"
	"time"
)

// Handle is a cancellable reference to a scheduled callback.
type Handle struct {
	due      time.Duration
	seq      uint64
	fn       func()
	index    int
	canceled bool
	fired    bool
}

// Cancel prevents the callback from firing. Safe on nil, fired or already
// canceled handles.
func (h *Handle) Cancel() {
	if h == nil {
		return
	}
	h.canceled = true
	h.fn = nil
}

// Pending reports whether the callback is still waiting to fire.
func (h *Handle) Pending() bool {
	return h != nil && !h.canceled && !h.fired
}

// Due returns the scheduler time at which the callback fires.
func (h *Handle) Due() time.Duration {
	return h.due
}

// Scheduler keeps simulation time and the queue of pending one-shot callbacks.
// It is not safe for concurrent use; the simulation owns it.
type Scheduler struct {
	now   time.Duration
	seq   uint64
	queue handleQueue
}

// NewScheduler creates a scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the elapsed simulation time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Len returns the number of scheduled callbacks, canceled ones included
// until they are drained.
func (s *Scheduler) Len() int {
	return s.queue.Len()
}

// ScheduleOnce runs fn on the first Advance at or after now+delay.
func (s *Scheduler) ScheduleOnce(delay time.Duration, fn func()) *Handle {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	h := &Handle{due: s.now + delay, seq: s.seq, fn: fn}
	heap.Push(&s.queue, h)
	return h
}

// Advance moves time forward by dt and fires every due callback in due order.
// Callbacks scheduled at the same instant fire in scheduling order.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt > 0 {
		s.now += dt
	}
	for s.queue.Len() > 0 {
		next := s.queue[0]
		if next.due > s.now {
			return
		}
		heap.Pop(&s.queue)
		if next.canceled {
			continue
		}
		fn := next.fn
		next.fired = true
		next.fn = nil
		if fn != nil {
			fn()
		}
	}
}

// AdvanceSeconds is Advance for a float delta in seconds.
func (s *Scheduler) AdvanceSeconds(dt float64) {
	s.Advance(Seconds(dt))
}

// Seconds converts a float duration in seconds to a time.Duration, rounded to
// the nanosecond so repeated steps add up exactly.
func Seconds(sec float64) time.Duration {
	return time.Duration(math.Round(sec * float64(time.Second)))
}

type handleQueue []*Handle

func (q handleQueue) Len() int { return len(q) }

func (q handleQueue) Less(i, j int) bool {
	if q[i].due == q[j].due {
		return q[i].seq < q[j].seq
	}
	return q[i].due < q[j].due
}

func (q handleQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *handleQueue) Push(x any) {
	h := x.(*Handle)
	h.index = len(*q)
	*q = append(*q, h)
}

func (q *handleQueue) Pop() any {
	old := *q
	n := len(old)
	h := old[n-1]
	old[n-1] = nil
	h.index = -1
	*q = old[:n-1]
	return h
}

package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleOnceFiresAtDue(t *testing.T) {
	s := NewScheduler()
	fired := 0
	h := s.ScheduleOnce(30*time.Second, func() { fired++ })

	s.AdvanceSeconds(29.9)
	assert.Equal(t, 0, fired)
	assert.True(t, h.Pending())

	s.AdvanceSeconds(0.1)
	assert.Equal(t, 1, fired)
	assert.False(t, h.Pending())

	s.AdvanceSeconds(100)
	assert.Equal(t, 1, fired, "one-shot fires exactly once")
}

func TestCancelPreventsFire(t *testing.T) {
	s := NewScheduler()
	fired := false
	h := s.ScheduleOnce(time.Second, func() { fired = true })
	h.Cancel()

	s.Advance(2 * time.Second)
	assert.False(t, fired)
	assert.False(t, h.Pending())
	assert.Equal(t, 0, s.Len())
}

func TestCancelIsSafeOnNilAndFired(t *testing.T) {
	var h *Handle
	assert.NotPanics(t, h.Cancel)
	assert.False(t, h.Pending())

	s := NewScheduler()
	fired := s.ScheduleOnce(0, func() {})
	s.Advance(0)
	assert.NotPanics(t, fired.Cancel)
}

func TestFiresInDueThenScheduleOrder(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.ScheduleOnce(2*time.Second, func() { order = append(order, "late") })
	s.ScheduleOnce(time.Second, func() { order = append(order, "first") })
	s.ScheduleOnce(time.Second, func() { order = append(order, "second") })

	s.Advance(5 * time.Second)
	assert.Equal(t, []string{"first", "second", "late"}, order)
}

func TestCallbackMaySchedule(t *testing.T) {
	s := NewScheduler()
	var fired []time.Duration
	s.ScheduleOnce(time.Second, func() {
		fired = append(fired, s.Now())
		s.ScheduleOnce(time.Second, func() { fired = append(fired, s.Now()) })
	})

	s.Advance(time.Second)
	require.Len(t, fired, 1)

	s.Advance(time.Second)
	require.Len(t, fired, 2)
	assert.Equal(t, 2*time.Second, fired[1])
}

func TestSecondsRoundsToNanoseconds(t *testing.T) {
	assert.Equal(t, 30*time.Second, Seconds(29.9)+Seconds(0.1))
	assert.Equal(t, 500*time.Millisecond, Seconds(0.5))

	total := time.Duration(0)
	for i := 0; i < 300; i++ {
		total += Seconds(0.1)
	}
	assert.Equal(t, 30*time.Second, total)
}

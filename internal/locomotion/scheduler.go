package locomotion

import (
	"time"

	"github.com/google/uuid"
)

// ActionKind identifies what a timer is sequencing.
type ActionKind uint8

const (
	ActionRoll ActionKind = iota
	ActionStun
)

// String returns the kind name.
func (k ActionKind) String() string {
	switch k {
	case ActionRoll:
		return "roll"
	case ActionStun:
		return "stun"
	default:
		return "unknown"
	}
}

// ActionTimer is one running timed action. It completes on the first
// Advance at which the clock reaches Start+Duration.
type ActionTimer struct {
	ID       uuid.UUID
	Kind     ActionKind
	Start    time.Duration
	Duration time.Duration

	onComplete func(*ActionTimer)
}

// Deadline returns the clock time at which the timer completes.
func (t *ActionTimer) Deadline() time.Duration {
	return t.Start + t.Duration
}

// Scheduler runs timed actions against a virtual clock. The clock only
// moves when Advance is called, so callers own the notion of time.
// Timers cannot be cancelled.
type Scheduler struct {
	now    time.Duration
	timers []*ActionTimer
}

// NewScheduler creates a scheduler with its clock at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the current virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Start schedules a timer beginning now. onComplete runs from Advance.
func (s *Scheduler) Start(kind ActionKind, d time.Duration, onComplete func(*ActionTimer)) *ActionTimer {
	t := &ActionTimer{
		ID:         uuid.New(),
		Kind:       kind,
		Start:      s.now,
		Duration:   d,
		onComplete: onComplete,
	}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward by dt and completes every timer whose
// deadline has been reached, in the order they were started. Timers
// started by a completion callback are not completed in the same call.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt > 0 {
		s.now += dt
	}

	due := s.timers[:0:0]
	pending := s.timers[:0]
	for _, t := range s.timers {
		if s.now >= t.Deadline() {
			due = append(due, t)
		} else {
			pending = append(pending, t)
		}
	}
	s.timers = pending

	for _, t := range due {
		if t.onComplete != nil {
			t.onComplete(t)
		}
	}
}

// Active returns the number of running timers of the given kind.
func (s *Scheduler) Active(kind ActionKind) int {
	n := 0
	for _, t := range s.timers {
		if t.Kind == kind {
			n++
		}
	}
	return n
}

// Len returns the number of running timers.
func (s *Scheduler) Len() int {
	return len(s.timers)
}

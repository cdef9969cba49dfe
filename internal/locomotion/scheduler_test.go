package locomotion

import (
	"testing"
	"time"
)

func TestSchedulerCompletesAtDeadline(t *testing.T) {
	s := NewScheduler()
	done := false
	timer := s.Start(ActionRoll, 350*time.Millisecond, func(*ActionTimer) { done = true })

	if timer.Deadline() != 350*time.Millisecond {
		t.Fatalf("deadline = %v, want 350ms", timer.Deadline())
	}

	s.Advance(200 * time.Millisecond)
	s.Advance(149 * time.Millisecond)
	if done {
		t.Fatal("timer completed early")
	}

	s.Advance(time.Millisecond)
	if !done {
		t.Fatal("timer did not complete at its deadline")
	}
	if s.Len() != 0 {
		t.Errorf("%d timers left, want 0", s.Len())
	}
}

func TestSchedulerCompletesInStartOrder(t *testing.T) {
	s := NewScheduler()
	var order []ActionKind

	s.Start(ActionStun, 100*time.Millisecond, func(t *ActionTimer) { order = append(order, t.Kind) })
	s.Start(ActionRoll, 50*time.Millisecond, func(t *ActionTimer) { order = append(order, t.Kind) })

	s.Advance(time.Second)

	if len(order) != 2 || order[0] != ActionStun || order[1] != ActionRoll {
		t.Errorf("completion order = %v, want [stun roll]", order)
	}
}

func TestSchedulerTimersAreIndependent(t *testing.T) {
	s := NewScheduler()
	s.Start(ActionStun, 2*time.Second, nil)
	s.Advance(time.Second)
	s.Start(ActionStun, 2*time.Second, nil)

	if got := s.Active(ActionStun); got != 2 {
		t.Fatalf("active stuns = %d, want 2", got)
	}

	s.Advance(time.Second)
	if got := s.Active(ActionStun); got != 1 {
		t.Errorf("active stuns after first deadline = %d, want 1", got)
	}
	if got := s.Active(ActionRoll); got != 0 {
		t.Errorf("active rolls = %d, want 0", got)
	}
}

func TestSchedulerCallbackStartsNextTimer(t *testing.T) {
	s := NewScheduler()
	second := false

	s.Start(ActionRoll, 10*time.Millisecond, func(*ActionTimer) {
		s.Start(ActionRoll, 0, func(*ActionTimer) { second = true })
	})

	s.Advance(10 * time.Millisecond)
	if second {
		t.Fatal("timer started by a callback completed in the same advance")
	}
	if s.Len() != 1 {
		t.Fatalf("%d timers pending, want 1", s.Len())
	}

	s.Advance(0)
	if !second {
		t.Error("chained timer never completed")
	}
}

func TestSchedulerIgnoresNegativeDelta(t *testing.T) {
	s := NewScheduler()
	s.Advance(time.Second)
	s.Advance(-time.Second)

	if s.Now() != time.Second {
		t.Errorf("Now = %v, want 1s", s.Now())
	}
}

func TestSchedulerUniqueIDs(t *testing.T) {
	s := NewScheduler()
	a := s.Start(ActionRoll, time.Second, nil)
	b := s.Start(ActionRoll, time.Second, nil)

	if a.ID == b.ID {
		t.Error("timers share an ID")
	}
}

package animator

import (
	"testing"
	"time"
)

func attackClips() map[string]Clip {
	return map[string]Clip{
		"Attack1Trigger": {
			Length: 500 * time.Millisecond,
			Events: []Event{
				{Name: "MeleeAttackEnd", At: 400 * time.Millisecond},
				{Name: "MeleeAttackStart", At: 100 * time.Millisecond, Param: 1},
				{Name: "Hit", At: 200 * time.Millisecond},
			},
		},
		"RollForwardTrigger": {Length: 300 * time.Millisecond},
	}
}

type recorded struct {
	name  string
	param int
}

func TestParameters(t *testing.T) {
	a := New(nil)
	a.SetFloat("Speed", 0.75)
	a.SetBool("Moving", true)

	if a.Float("Speed") != 0.75 {
		t.Errorf("Speed = %v, want 0.75", a.Float("Speed"))
	}
	if !a.Bool("Moving") {
		t.Error("Moving should be true")
	}
	if a.Float("Missing") != 0 || a.Bool("Missing") {
		t.Error("unset parameters should be zero")
	}
}

func TestClipEventsFireInTimelineOrder(t *testing.T) {
	a := New(attackClips())
	var got []recorded
	a.OnEvent(func(name string, param int) { got = append(got, recorded{name, param}) })

	a.SetTrigger("Attack1Trigger")
	if a.Playing() != "Attack1Trigger" {
		t.Fatalf("Playing = %q, want Attack1Trigger", a.Playing())
	}

	a.Update(150 * time.Millisecond)
	if len(got) != 1 || got[0] != (recorded{"MeleeAttackStart", 1}) {
		t.Fatalf("after 150ms events = %v", got)
	}

	a.Update(300 * time.Millisecond)
	want := []recorded{{"MeleeAttackStart", 1}, {"Hit", 0}, {"MeleeAttackEnd", 0}}
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}

	a.Update(100 * time.Millisecond)
	if a.Playing() != "" {
		t.Errorf("clip still playing after its length: %q", a.Playing())
	}
}

func TestTriggerRestartsClip(t *testing.T) {
	a := New(attackClips())
	hits := 0
	a.OnEvent(func(name string, _ int) {
		if name == "Hit" {
			hits++
		}
	})

	a.SetTrigger("Attack1Trigger")
	a.Update(150 * time.Millisecond)
	a.SetTrigger("Attack1Trigger")
	a.Update(150 * time.Millisecond)
	if hits != 0 {
		t.Fatalf("hit fired before 200ms into the restarted clip")
	}
	a.Update(100 * time.Millisecond)
	if hits != 1 {
		t.Errorf("hits = %d, want 1", hits)
	}
}

func TestTriggerInterruptsOtherClip(t *testing.T) {
	a := New(attackClips())
	var events []string
	a.OnEvent(func(name string, _ int) { events = append(events, name) })

	a.SetTrigger("Attack1Trigger")
	a.Update(50 * time.Millisecond)
	a.SetTrigger("RollForwardTrigger")
	a.Update(time.Second)

	if len(events) != 0 {
		t.Errorf("interrupted clip raised events %v", events)
	}
	if a.Playing() != "" {
		t.Errorf("Playing = %q after roll finished", a.Playing())
	}
}

func TestTriggerListenersSeeEveryTrigger(t *testing.T) {
	a := New(attackClips())
	var triggers []string
	a.OnTrigger(func(name string) { triggers = append(triggers, name) })

	a.SetTrigger("Attack1Trigger")
	a.SetTrigger("NoClipTrigger")

	if len(triggers) != 2 || triggers[1] != "NoClipTrigger" {
		t.Errorf("triggers = %v", triggers)
	}
	if a.Playing() != "Attack1Trigger" {
		t.Errorf("trigger without clip changed playing clip to %q", a.Playing())
	}
}

func TestSetClipsStopsRemovedClip(t *testing.T) {
	a := New(attackClips())
	a.SetTrigger("Attack1Trigger")

	a.SetClips(map[string]Clip{"RollForwardTrigger": {Length: time.Second}})
	if a.Playing() != "" {
		t.Errorf("Playing = %q, want nothing after its clip was removed", a.Playing())
	}
}

// Package animator is a minimal parameter-driven animation state machine:
// float and bool parameters, one-shot triggers, and clips whose timeline
// events are raised as they play.
package animator

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/warrior/internal/logger"
)

// Clip is a one-shot animation started by a trigger.
type Clip struct {
	Length time.Duration
	Events []Event
}

// Event is raised when a playing clip passes At.
type Event struct {
	Name  string
	At    time.Duration
	Param int
}

// EventListener receives clip events.
type EventListener func(name string, param int)

// TriggerListener receives every trigger as it is set.
type TriggerListener func(name string)

// Animator holds parameter state and plays at most one clip at a time.
type Animator struct {
	floats map[string]float32
	bools  map[string]bool
	clips  map[string]Clip

	playing   string
	clipTime  time.Duration
	nextEvent int

	eventListeners   []EventListener
	triggerListeners []TriggerListener

	log *zap.Logger
}

// New creates an animator with the given clips keyed by trigger name.
func New(clips map[string]Clip) *Animator {
	a := &Animator{
		floats: make(map[string]float32),
		bools:  make(map[string]bool),
		log:    logger.Named("animator"),
	}
	a.SetClips(clips)
	return a
}

// SetClips replaces the clip table. A playing clip continues on its new
// timeline, or stops if its trigger no longer has a clip.
func (a *Animator) SetClips(clips map[string]Clip) {
	a.clips = make(map[string]Clip, len(clips))
	for name, clip := range clips {
		events := append([]Event(nil), clip.Events...)
		sort.SliceStable(events, func(i, j int) bool { return events[i].At < events[j].At })
		a.clips[name] = Clip{Length: clip.Length, Events: events}
	}
	if _, ok := a.clips[a.playing]; !ok {
		a.playing = ""
		a.clipTime = 0
		a.nextEvent = 0
	}
}

// OnEvent registers a clip event listener.
func (a *Animator) OnEvent(l EventListener) {
	a.eventListeners = append(a.eventListeners, l)
}

// OnTrigger registers a trigger listener.
func (a *Animator) OnTrigger(l TriggerListener) {
	a.triggerListeners = append(a.triggerListeners, l)
}

// SetFloat sets a float parameter.
func (a *Animator) SetFloat(param string, value float32) {
	a.floats[param] = value
}

// SetBool sets a bool parameter.
func (a *Animator) SetBool(param string, value bool) {
	a.bools[param] = value
}

// SetTrigger fires a one-shot trigger. If a clip is bound to it, the clip
// starts from the beginning, interrupting whatever was playing.
func (a *Animator) SetTrigger(name string) {
	for _, l := range a.triggerListeners {
		l(name)
	}

	if _, ok := a.clips[name]; !ok {
		a.log.Debug("trigger without clip", zap.String("trigger", name))
		return
	}
	if a.playing != "" {
		a.log.Debug("clip interrupted",
			zap.String("clip", a.playing),
			zap.String("by", name),
			zap.Duration("at", a.clipTime),
		)
	}
	a.playing = name
	a.clipTime = 0
	a.nextEvent = 0
}

// Update advances the playing clip by dt, raising every event passed.
func (a *Animator) Update(dt time.Duration) {
	if a.playing == "" {
		return
	}
	clip := a.clips[a.playing]
	a.clipTime += dt

	for a.nextEvent < len(clip.Events) && clip.Events[a.nextEvent].At <= a.clipTime {
		ev := clip.Events[a.nextEvent]
		a.nextEvent++
		for _, l := range a.eventListeners {
			l(ev.Name, ev.Param)
		}
		// A listener may have started another clip
		if a.nextEvent == 0 {
			return
		}
	}

	if a.clipTime >= clip.Length {
		a.playing = ""
		a.clipTime = 0
		a.nextEvent = 0
	}
}

// Float returns a float parameter, zero if unset.
func (a *Animator) Float(param string) float32 {
	return a.floats[param]
}

// Bool returns a bool parameter, false if unset.
func (a *Animator) Bool(param string) bool {
	return a.bools[param]
}

// Playing returns the trigger name of the playing clip, or "".
func (a *Animator) Playing() string {
	return a.playing
}

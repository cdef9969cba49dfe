package gesture

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/warrior/internal/logger"
	"github.com/Faultbox/warrior/pkg/math"
)

// Config holds recognizer thresholds. Distances are in normalized screen
// units where the window spans [0,1] on both axes, Y pointing down.
type Config struct {
	SwipeMinDistance float32
	SwipeMaxDuration time.Duration
	DoubleTapWindow  time.Duration
	DoubleTapRadius  float32
}

// Recognizer turns press/release samples from a single pointer into
// gesture events published on a Bus.
type Recognizer struct {
	config Config
	bus    *Bus

	// Facing maps a screen point to the rotation attached to the event.
	// Nil means identity.
	Facing func(p math.Vec2) math.Quat

	pressed  bool
	pressPos math.Vec2
	pressAt  time.Duration

	hasTap bool
	tapPos math.Vec2
	tapAt  time.Duration
}

// NewRecognizer creates a recognizer that publishes to bus.
func NewRecognizer(cfg Config, bus *Bus) *Recognizer {
	return &Recognizer{
		config: cfg,
		bus:    bus,
	}
}

// SetConfig replaces the thresholds. Pending taps are kept.
func (r *Recognizer) SetConfig(cfg Config) {
	r.config = cfg
}

// Press records the pointer going down at p. at is a monotonic timestamp.
func (r *Recognizer) Press(p math.Vec2, at time.Duration) {
	r.pressed = true
	r.pressPos = p
	r.pressAt = at
}

// Release records the pointer going up at p and publishes any gesture it
// completes. A release without a press is ignored.
func (r *Recognizer) Release(p math.Vec2, at time.Duration) {
	if !r.pressed {
		return
	}
	r.pressed = false

	delta := p.Sub(r.pressPos)
	held := at - r.pressAt

	if delta.Length() >= r.config.SwipeMinDistance {
		if r.config.SwipeMaxDuration > 0 && held > r.config.SwipeMaxDuration {
			logger.Debug("gesture: drag too slow for swipe", zap.Duration("held", held))
			return
		}
		r.hasTap = false
		r.publish(Swipe(swipeDirection(delta), r.facing(p)))
		return
	}

	if delta.Length() > r.config.DoubleTapRadius {
		return
	}

	if r.hasTap && at-r.tapAt <= r.config.DoubleTapWindow && p.Distance(r.tapPos) <= r.config.DoubleTapRadius {
		r.hasTap = false
		r.publish(DoubleTouch(r.facing(p)))
		return
	}

	r.hasTap = true
	r.tapPos = p
	r.tapAt = at
}

// Cancel drops the pending press, for example when the touch leaves the window.
func (r *Recognizer) Cancel() {
	r.pressed = false
}

func (r *Recognizer) publish(e Event) {
	logger.Debug("gesture recognized",
		zap.Stringer("kind", e.Kind),
		zap.Stringer("direction", e.Direction),
	)
	if r.bus != nil {
		r.bus.Publish(e)
	}
}

func (r *Recognizer) facing(p math.Vec2) math.Quat {
	if r.Facing == nil {
		return math.QuatIdentity()
	}
	return r.Facing(p)
}

// swipeDirection picks the dominant axis. Screen Y grows downward.
func swipeDirection(delta math.Vec2) Direction {
	if math.Abs(delta.X) > math.Abs(delta.Y) {
		if delta.X > 0 {
			return Right
		}
		return Left
	}
	if delta.Y > 0 {
		return Down
	}
	return Up
}

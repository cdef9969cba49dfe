// Package gesture classifies touch input into swipes and double-touches
// and delivers them to subscribers.
package gesture

import (
	"github.com/Faultbox/warrior/pkg/math"
)

// Kind distinguishes the gesture variants.
type Kind uint8

const (
	KindSwipe Kind = iota
	KindDoubleTouch
)

// Direction is the dominant axis of a swipe in screen space.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindSwipe:
		return "swipe"
	case KindDoubleTouch:
		return "double_touch"
	default:
		return "unknown"
	}
}

// Event is a classified gesture. Direction is meaningful for swipes only.
// Rotation is the facing the gesture points the character toward.
type Event struct {
	Kind      Kind
	Direction Direction
	Rotation  math.Quat
}

// Swipe builds a swipe event.
func Swipe(dir Direction, rotation math.Quat) Event {
	return Event{Kind: KindSwipe, Direction: dir, Rotation: rotation}
}

// DoubleTouch builds a double-touch event.
func DoubleTouch(rotation math.Quat) Event {
	return Event{Kind: KindDoubleTouch, Rotation: rotation}
}

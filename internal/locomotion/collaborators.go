// Package locomotion drives a third-person character from joystick axes
// and gestures: camera-relative facing, animation parameters, and short
// timed actions (rolls and melee attacks).
//
// Everything here runs on the frame thread. Timed actions are records
// advanced by Controller.Update, never goroutines.
package locomotion

import (
	"github.com/Faultbox/warrior/pkg/math"
)

// InputSource exposes the two movement axes, each in [-1,1].
type InputSource interface {
	Horizontal() float32
	Vertical() float32
}

// AnimationDriver receives animation parameters and one-shot triggers.
type AnimationDriver interface {
	SetFloat(param string, value float32)
	SetBool(param string, value bool)
	SetTrigger(name string)
}

// WeaponDriver begins and ends melee attacks.
type WeaponDriver interface {
	BeginAttack(throwing bool)
	EndAttack()
}

// Transform is the character's orientation in the world.
type Transform interface {
	Rotation() math.Quat
	SetRotation(q math.Quat)
}

// Camera supplies the view direction movement is relative to.
type Camera interface {
	Forward() math.Vec3
}

// CueSink receives animation events that only have audible or visual
// effects (footsteps, impacts).
type CueSink func(name string)

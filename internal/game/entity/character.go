// Package entity provides the controlled character.
package entity

import (
	"time"

	"github.com/Faultbox/warrior/pkg/math"
)

// Default movement tuning in world units per second.
const (
	DefaultMoveSpeed = 4.0
	DefaultRollSpeed = 7.0
)

// Character is the body the locomotion controller turns. It stands in
// for animation root motion by walking along its facing.
type Character struct {
	Position math.Vec3
	rotation math.Quat

	MoveSpeed float32 // at full stick deflection
	RollSpeed float32
}

// NewCharacter creates a character at position facing +Z.
func NewCharacter(position math.Vec3) *Character {
	return &Character{
		Position:  position,
		rotation:  math.QuatIdentity(),
		MoveSpeed: DefaultMoveSpeed,
		RollSpeed: DefaultRollSpeed,
	}
}

// Rotation returns the current orientation.
func (c *Character) Rotation() math.Quat {
	return c.rotation
}

// SetRotation replaces the orientation.
func (c *Character) SetRotation(q math.Quat) {
	c.rotation = q.Normalize()
}

// Facing returns the horizontal unit forward vector.
func (c *Character) Facing() math.Vec3 {
	f := c.rotation.Forward().Flatten().Normalize()
	if f.IsZero() {
		return math.Forward
	}
	return f
}

// Advance moves the character along its facing for dt. speed is the
// normalized stick magnitude; a roll moves at RollSpeed regardless, and
// backwards when backward is set.
func (c *Character) Advance(speed float32, rolling, backward bool, dt time.Duration) {
	if dt <= 0 {
		return
	}
	secs := float32(dt.Seconds())

	var units float32
	switch {
	case rolling:
		units = c.RollSpeed * secs
		if backward {
			units = -units
		}
	case speed > 0:
		units = math.Clamp(speed, 0, 1) * c.MoveSpeed * secs
	default:
		return
	}
	c.Position = c.Position.Add(c.Facing().Scale(units))
}

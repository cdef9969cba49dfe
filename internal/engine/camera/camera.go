// Package camera provides the follow camera the character moves relative to.
package camera

import (
	gomath "math"

	"github.com/Faultbox/warrior/pkg/math"
)

// ThirdPersonCamera follows a target from behind and above.
type ThirdPersonCamera struct {
	Yaw   float32 // Horizontal rotation around target (radians)
	Pitch float32 // Vertical angle (radians)

	Distance    float32
	MinDistance float32
	MaxDistance float32

	YawSensitivity  float32
	ZoomSensitivity float32

	// Height above the target's origin the camera aims at.
	LookHeight float32
}

// NewThirdPersonCamera creates a camera with default framing.
func NewThirdPersonCamera() *ThirdPersonCamera {
	return &ThirdPersonCamera{
		Yaw:             0.0,
		Pitch:           0.5, // ~29 degrees above the horizon
		Distance:        8.0,
		MinDistance:     3.0,
		MaxDistance:     20.0,
		YawSensitivity:  0.005,
		ZoomSensitivity: 0.1,
		LookHeight:      1.0,
	}
}

// Position calculates camera position for the given target.
func (c *ThirdPersonCamera) Position(target math.Vec3) math.Vec3 {
	offsetY := c.Distance * float32(gomath.Sin(float64(c.Pitch)))
	horizDist := c.Distance * float32(gomath.Cos(float64(c.Pitch)))
	offsetX := horizDist * float32(gomath.Sin(float64(c.Yaw)))
	offsetZ := horizDist * float32(gomath.Cos(float64(c.Yaw)))

	return math.Vec3{
		X: target.X - offsetX,
		Y: target.Y + c.LookHeight + offsetY,
		Z: target.Z - offsetZ,
	}
}

// Forward returns the unit view direction. It does not depend on the
// target, only on yaw and pitch.
func (c *ThirdPersonCamera) Forward() math.Vec3 {
	cosPitch := float32(gomath.Cos(float64(c.Pitch)))
	return math.Vec3{
		X: float32(gomath.Sin(float64(c.Yaw))) * cosPitch,
		Y: -float32(gomath.Sin(float64(c.Pitch))),
		Z: float32(gomath.Cos(float64(c.Yaw))) * cosPitch,
	}
}

// ViewMatrix returns the view matrix for this camera looking at target.
func (c *ThirdPersonCamera) ViewMatrix(target math.Vec3) math.Mat4 {
	eye := c.Position(target)
	center := math.Vec3{X: target.X, Y: target.Y + c.LookHeight, Z: target.Z}
	return math.LookAt(eye, center, math.Up)
}

// HandleYaw rotates camera horizontally around target.
func (c *ThirdPersonCamera) HandleYaw(deltaX float32) {
	c.Yaw -= deltaX * c.YawSensitivity
}

// HandleZoom updates distance from target.
func (c *ThirdPersonCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// ScreenFacing returns the rotation that faces the character toward a
// point on screen, taking the window centre as the character. p is in
// normalized screen coordinates with Y pointing down.
func (c *ThirdPersonCamera) ScreenFacing(p math.Vec2) math.Quat {
	dx := p.X - 0.5
	dy := 0.5 - p.Y

	forward := c.Forward().Flatten().Normalize()
	right := forward.Cross(math.Up)
	dir := right.Scale(dx).Add(forward.Scale(dy))
	return math.QuatLookRotation(dir, math.Up)
}

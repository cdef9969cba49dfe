package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/warrior/pkg/math"
)

func TestForwardPointsAtTarget(t *testing.T) {
	c := NewThirdPersonCamera()
	c.Yaw = 0.7

	target := math.Vec3{X: 3, Y: 0, Z: -2}
	eye := c.Position(target)
	aim := math.Vec3{X: target.X, Y: target.Y + c.LookHeight, Z: target.Z}

	want := aim.Sub(eye).Normalize()
	got := c.Forward()
	if got.Sub(want).Length() > 0.001 {
		t.Errorf("Forward() = %v, want %v", got, want)
	}
}

func TestForwardAtZeroYawLooksAlongZ(t *testing.T) {
	c := NewThirdPersonCamera()
	c.Pitch = 0

	if got := c.Forward(); got.Sub(math.Forward).Length() > 0.001 {
		t.Errorf("Forward() = %v, want +Z", got)
	}
}

func TestHandleZoomClamps(t *testing.T) {
	c := NewThirdPersonCamera()

	c.HandleZoom(100)
	if c.Distance != c.MinDistance {
		t.Errorf("Distance = %v, want min %v", c.Distance, c.MinDistance)
	}
	c.HandleZoom(-100)
	if c.Distance != c.MaxDistance {
		t.Errorf("Distance = %v, want max %v", c.Distance, c.MaxDistance)
	}
}

func TestHandleYaw(t *testing.T) {
	c := NewThirdPersonCamera()
	c.HandleYaw(100)
	if gomath.Abs(float64(c.Yaw+0.5)) > 0.0001 {
		t.Errorf("Yaw = %v, want -0.5", c.Yaw)
	}
}

func TestScreenFacing(t *testing.T) {
	c := NewThirdPersonCamera()

	tests := []struct {
		name string
		p    math.Vec2
		want math.Vec3
	}{
		{"above centre faces away from camera", math.Vec2{X: 0.5, Y: 0.1}, math.Vec3{Z: 1}},
		{"below centre faces the camera", math.Vec2{X: 0.5, Y: 0.9}, math.Vec3{Z: -1}},
		{"right of centre faces screen right", math.Vec2{X: 0.9, Y: 0.5}, math.Vec3{X: -1}},
		{"left of centre faces screen left", math.Vec2{X: 0.1, Y: 0.5}, math.Vec3{X: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.ScreenFacing(tt.p).Forward()
			if got.Sub(tt.want).Length() > 0.01 {
				t.Errorf("facing = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestViewMatrixMapsAimToAxis(t *testing.T) {
	c := NewThirdPersonCamera()
	target := math.Vec3{X: 1, Z: 1}
	view := c.ViewMatrix(target)

	aim := view.TransformVec3(math.Vec3{X: target.X, Y: target.Y + c.LookHeight, Z: target.Z})
	if math.Abs(aim.X) > 0.001 || math.Abs(aim.Y) > 0.001 || aim.Z >= 0 {
		t.Errorf("aim point in view space = %v, want on -Z axis", aim)
	}
}

package input

import (
	"testing"

	"github.com/Faultbox/warrior/pkg/math"
)

func TestNormalizeAxis(t *testing.T) {
	tests := []struct {
		raw  int16
		want float32
	}{
		{0, 0},
		{32767, 1},
		{-32768, -1}, // clamped
		{16384, 0.5},
	}

	for _, tt := range tests {
		got := NormalizeAxis(tt.raw)
		if math.Abs(got-tt.want) > 0.001 {
			t.Errorf("NormalizeAxis(%d) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestApplyDeadZone(t *testing.T) {
	tests := []struct {
		name  string
		v, dz float32
		want  float32
	}{
		{"inside zone", 0.04, 0.05, 0},
		{"negative inside zone", -0.04, 0.05, 0},
		{"full deflection", 1, 0.05, 1},
		{"negative full deflection", -1, 0.05, -1},
		{"halfway rescaled", 0.6, 0.2, 0.5},
		{"no zone passes through", 0.01, 0, 0.01},
		{"zone of one swallows all", 0.9, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyDeadZone(tt.v, tt.dz)
			if math.Abs(got-tt.want) > 0.0001 {
				t.Errorf("ApplyDeadZone(%v, %v) = %v, want %v", tt.v, tt.dz, got, tt.want)
			}
		})
	}
}

func TestKeyAxis(t *testing.T) {
	tests := []struct {
		neg, pos bool
		want     float32
	}{
		{false, false, 0},
		{true, false, -1},
		{false, true, 1},
		{true, true, 0},
	}

	for _, tt := range tests {
		if got := KeyAxis(tt.neg, tt.pos); got != tt.want {
			t.Errorf("KeyAxis(%v, %v) = %v, want %v", tt.neg, tt.pos, got, tt.want)
		}
	}
}

func TestCombineAxis(t *testing.T) {
	if got := CombineAxis(0.3, -1); got != 0.3 {
		t.Errorf("stick should win, got %v", got)
	}
	if got := CombineAxis(0, -1); got != -1 {
		t.Errorf("keys should be used when stick is idle, got %v", got)
	}
}

func TestScreenPoint(t *testing.T) {
	got := ScreenPoint(320, 180, 1280, 720)
	if got.X != 0.25 || got.Y != 0.25 {
		t.Errorf("ScreenPoint = %v, want (0.25, 0.25)", got)
	}
	if got := ScreenPoint(10, 10, 0, 0); got != (math.Vec2{}) {
		t.Errorf("zero-sized window should give origin, got %v", got)
	}
}

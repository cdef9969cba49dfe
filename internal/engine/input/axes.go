package input

import "github.com/Faultbox/warrior/pkg/math"

// axisMax is the magnitude SDL reports for a fully deflected stick.
const axisMax = 32767

// NormalizeAxis converts a raw controller axis reading into [-1, 1].
func NormalizeAxis(raw int16) float32 {
	return math.Clamp(float32(raw)/axisMax, -1, 1)
}

// ApplyDeadZone zeroes readings inside the dead zone and rescales the
// rest so output still spans the full [-1, 1] range.
func ApplyDeadZone(v, deadZone float32) float32 {
	if deadZone <= 0 {
		return v
	}
	if deadZone >= 1 {
		return 0
	}
	mag := math.Abs(v)
	if mag < deadZone {
		return 0
	}
	scaled := math.Clamp((mag-deadZone)/(1-deadZone), 0, 1)
	if v < 0 {
		return -scaled
	}
	return scaled
}

// KeyAxis maps a pair of opposing keys to -1, 0 or 1.
func KeyAxis(negative, positive bool) float32 {
	var v float32
	if negative {
		v--
	}
	if positive {
		v++
	}
	return v
}

// CombineAxis prefers the stick and falls back to the keyboard.
func CombineAxis(stick, keys float32) float32 {
	if stick != 0 {
		return stick
	}
	return keys
}

// ScreenPoint converts window pixel coordinates into normalized screen
// coordinates, origin top-left, Y down.
func ScreenPoint(x, y int32, width, height int) math.Vec2 {
	if width <= 0 || height <= 0 {
		return math.Vec2{}
	}
	return math.Vec2{
		X: float32(x) / float32(width),
		Y: float32(y) / float32(height),
	}
}

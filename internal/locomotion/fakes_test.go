package locomotion

import (
	"github.com/Faultbox/warrior/pkg/math"
)

type axes struct {
	h, v float32
}

func (a *axes) Horizontal() float32 { return a.h }
func (a *axes) Vertical() float32   { return a.v }

type recordingAnimator struct {
	floats   map[string]float32
	bools    map[string]bool
	triggers []string
}

func newRecordingAnimator() *recordingAnimator {
	return &recordingAnimator{
		floats: make(map[string]float32),
		bools:  make(map[string]bool),
	}
}

func (r *recordingAnimator) SetFloat(param string, value float32) { r.floats[param] = value }
func (r *recordingAnimator) SetBool(param string, value bool)     { r.bools[param] = value }
func (r *recordingAnimator) SetTrigger(name string)               { r.triggers = append(r.triggers, name) }

func (r *recordingAnimator) count(trigger string) int {
	n := 0
	for _, t := range r.triggers {
		if t == trigger {
			n++
		}
	}
	return n
}

type pose struct {
	rotation math.Quat
	sets     int
}

func (p *pose) Rotation() math.Quat { return p.rotation }
func (p *pose) SetRotation(q math.Quat) {
	p.rotation = q
	p.sets++
}

type fixedCamera struct {
	forward math.Vec3
}

func (c fixedCamera) Forward() math.Vec3 { return c.forward }

type spyWeapon struct {
	begins []bool
	ends   int
}

func (w *spyWeapon) BeginAttack(throwing bool) { w.begins = append(w.begins, throwing) }
func (w *spyWeapon) EndAttack()                { w.ends++ }

type harness struct {
	ctrl   *Controller
	input  *axes
	anim   *recordingAnimator
	pose   *pose
	camera *fixedCamera
}

func newHarness() *harness {
	h := &harness{
		input:  &axes{},
		anim:   newRecordingAnimator(),
		pose:   &pose{rotation: math.QuatIdentity()},
		camera: &fixedCamera{forward: math.Forward},
	}
	h.ctrl = New(DefaultSettings(), h.input, h.anim, h.pose, h.camera)
	return h
}

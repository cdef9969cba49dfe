package game

import (
	"time"

	"github.com/Faultbox/warrior/internal/config"
	"github.com/Faultbox/warrior/internal/engine/animator"
	"github.com/Faultbox/warrior/internal/engine/renderer"
	"github.com/Faultbox/warrior/internal/game/entity"
	"github.com/Faultbox/warrior/internal/gesture"
	"github.com/Faultbox/warrior/internal/locomotion"
	"github.com/Faultbox/warrior/pkg/math"
)

// Scene wires the character simulation together independently of any
// window or device: gestures in, animator and controller stepped, the
// character advanced.
type Scene struct {
	Bus        *gesture.Bus
	Recognizer *gesture.Recognizer
	Animator   *animator.Animator
	Controller *locomotion.Controller
	Character  *entity.Character
}

// NewScene builds the simulation. camera may be nil. cue, when set,
// receives every animator trigger and cosmetic animation event by name.
func NewScene(cfg *config.Config, in locomotion.InputSource, camera locomotion.Camera, cue locomotion.CueSink) *Scene {
	s := &Scene{
		Bus:       gesture.NewBus(),
		Animator:  animator.New(animatorClips(cfg)),
		Character: entity.NewCharacter(math.Vec3{}),
	}
	s.Recognizer = gesture.NewRecognizer(gestureConfig(cfg), s.Bus)
	s.Controller = locomotion.New(locomotionSettings(cfg), in, s.Animator, s.Character, camera)

	s.Animator.OnEvent(s.Controller.HandleAnimationEvent)
	if cue != nil {
		s.Animator.OnTrigger(func(name string) { cue(name) })
		s.Controller.SetCueSink(cue)
	}
	return s
}

// Start subscribes the controller to gestures.
func (s *Scene) Start() {
	s.Controller.Enable(s.Bus)
}

// Stop unsubscribes the controller and drops any half-made gesture.
func (s *Scene) Stop() {
	s.Controller.Disable()
	s.Recognizer.Cancel()
}

// Step advances one frame. Animation events raised this frame are
// handled before the controller reads input.
func (s *Scene) Step(dt time.Duration) {
	s.Animator.Update(dt)
	s.Controller.Update(dt)

	speed := float32(0)
	if s.Controller.Moving() {
		speed = s.Controller.Speed()
	}
	rolling := s.Controller.Rolling()
	backward := rolling && s.Controller.RollDirection() == locomotion.RollBackward
	s.Character.Advance(speed, rolling, backward, dt)
}

// Apply pushes reloaded tuning into the running simulation.
func (s *Scene) Apply(cfg *config.Config) {
	s.Controller.SetSettings(locomotionSettings(cfg))
	s.Recognizer.SetConfig(gestureConfig(cfg))
	s.Animator.SetClips(animatorClips(cfg))
}

// State returns the displayed character state.
func (s *Scene) State() renderer.State {
	return renderer.CharacterState(s.Controller.Moving(), s.Controller.Rolling(), s.Controller.Stunned())
}

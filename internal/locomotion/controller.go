package locomotion

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/warrior/internal/gesture"
	"github.com/Faultbox/warrior/internal/logger"
	"github.com/Faultbox/warrior/pkg/math"
)

// Settings tunes the controller and names the animator parameters it drives.
type Settings struct {
	RotationSpeed  float32 // slerp rate per second toward the input direction
	MoveThreshold  float32 // axis magnitude at which the character counts as moving
	RollDuration   time.Duration
	AttackDuration time.Duration

	SpeedParam          string
	MovingParam         string
	HandAttackTrigger   string
	FootAttackTrigger   string
	RollForwardTrigger  string
	RollBackwardTrigger string
}

// DefaultSettings returns the stock tuning.
func DefaultSettings() Settings {
	return Settings{
		RotationSpeed:       30,
		MoveThreshold:       0.1,
		RollDuration:        350 * time.Millisecond,
		AttackDuration:      2 * time.Second,
		SpeedParam:          "Speed",
		MovingParam:         "Moving",
		HandAttackTrigger:   "Attack1Trigger",
		FootAttackTrigger:   "Attack2Trigger",
		RollForwardTrigger:  "RollForwardTrigger",
		RollBackwardTrigger: "RollBackwardTrigger",
	}
}

// RollDirection selects the roll variant.
type RollDirection uint8

const (
	RollForward RollDirection = iota
	RollBackward
)

// String returns the direction name.
func (d RollDirection) String() string {
	if d == RollBackward {
		return "backward"
	}
	return "forward"
}

// Controller is the per-character locomotion and action coordinator.
type Controller struct {
	settings Settings

	input     InputSource
	anim      AnimationDriver
	transform Transform
	camera    Camera

	body   *BodyWeapon
	weapon WeaponDriver
	cues   CueSink

	scheduler *Scheduler
	log       *zap.Logger

	// Locomotion state
	inputVector     math.Vec3 // (horizontal, 0, vertical)
	targetDirection math.Vec3
	speed           float32
	moving          bool
	rolling         bool
	rollDirection   RollDirection

	unsubscribe func()
}

// New creates a controller. camera may be nil, in which case movement is
// relative to world +Z. A nil input reads as a centred stick.
func New(settings Settings, input InputSource, anim AnimationDriver, transform Transform, camera Camera) *Controller {
	log := logger.Named("locomotion")
	return &Controller{
		settings:  settings,
		input:     input,
		anim:      anim,
		transform: transform,
		camera:    camera,
		body:      newBodyWeapon(log),
		scheduler: NewScheduler(),
		log:       log,
	}
}

// Enable subscribes the controller to gesture events. Calling it while
// already enabled does nothing.
func (c *Controller) Enable(bus *gesture.Bus) {
	if c.unsubscribe != nil || bus == nil {
		return
	}
	c.unsubscribe = bus.Subscribe(c.HandleGesture)
	c.log.Debug("controller enabled")
}

// Disable detaches from the gesture bus. Running actions still complete
// on later Updates.
func (c *Controller) Disable() {
	if c.unsubscribe == nil {
		return
	}
	c.unsubscribe()
	c.unsubscribe = nil
	c.log.Debug("controller disabled")
}

// Update runs one frame: timed actions first, then movement and facing.
func (c *Controller) Update(dt time.Duration) {
	c.scheduler.Advance(dt)

	var h, v float32
	if c.input != nil {
		h = math.Clamp(c.input.Horizontal(), -1, 1)
		v = math.Clamp(c.input.Vertical(), -1, 1)
	}
	c.inputVector = math.Vec3{X: h, Z: v}

	c.speed = max(math.Abs(h), math.Abs(v))
	c.anim.SetFloat(c.settings.SpeedParam, c.speed)

	c.moving = math.Abs(h) >= c.settings.MoveThreshold || math.Abs(v) >= c.settings.MoveThreshold
	c.anim.SetBool(c.settings.MovingParam, c.moving)

	c.targetDirection = c.cameraRelative(h, v)
	if !c.inputVector.IsZero() {
		c.rotateToward(c.targetDirection, dt)
	}
}

// cameraRelative blends the axes along the camera's horizontal basis.
func (c *Controller) cameraRelative(h, v float32) math.Vec3 {
	forward := math.Forward
	if c.camera != nil {
		forward = c.camera.Forward()
	}
	forward = forward.Flatten().Normalize()
	if forward.IsZero() {
		// Camera looking straight down has no horizontal heading
		forward = math.Forward
	}
	// Right-handed, matching math.LookAt: looking along +Z, screen right is -X
	right := forward.Cross(math.Up)

	return right.Scale(h).Add(forward.Scale(v))
}

func (c *Controller) rotateToward(direction math.Vec3, dt time.Duration) {
	if direction.Length() < math.Epsilon {
		return
	}
	goal := math.QuatLookRotation(direction, math.Up)
	t := math.Clamp(float32(dt.Seconds())*c.settings.RotationSpeed, 0, 1)
	c.transform.SetRotation(c.transform.Rotation().Slerp(goal, t))
}

// HandleGesture dispatches a gesture to its action. It is the bus handler
// installed by Enable and may also be called directly.
func (c *Controller) HandleGesture(e gesture.Event) {
	switch e.Kind {
	case gesture.KindSwipe:
		switch e.Direction {
		case gesture.Up:
			c.Roll(RollForward)
		case gesture.Down:
			c.Roll(RollBackward)
		case gesture.Left:
			c.attack(c.settings.FootAttackTrigger)
		case gesture.Right:
			c.attack(c.settings.HandAttackTrigger)
		}
	case gesture.KindDoubleTouch:
		if c.rolling {
			c.log.Debug("double touch ignored while rolling")
			return
		}
		c.transform.SetRotation(e.Rotation)
		c.Roll(RollForward)
	}
}

// Roll starts a roll unless one is already running. The rolling flag is
// claimed before anything else happens, so a second request in the same
// frame is rejected. Reports whether the roll started.
func (c *Controller) Roll(dir RollDirection) bool {
	if c.rolling {
		c.log.Debug("roll rejected", zap.Stringer("direction", dir))
		return false
	}
	c.rolling = true
	c.rollDirection = dir

	trigger := c.settings.RollForwardTrigger
	if dir == RollBackward {
		trigger = c.settings.RollBackwardTrigger
	}
	c.anim.SetTrigger(trigger)

	timer := c.scheduler.Start(ActionRoll, c.settings.RollDuration, func(t *ActionTimer) {
		c.rolling = false
		c.log.Debug("roll finished", zap.Stringer("id", t.ID))
	})
	c.log.Debug("roll started",
		zap.Stringer("id", timer.ID),
		zap.Stringer("direction", dir),
		zap.Duration("duration", timer.Duration),
	)
	return true
}

// attack fires the trigger and starts a stun timer. The stun gates
// nothing; it only runs out.
func (c *Controller) attack(trigger string) {
	c.anim.SetTrigger(trigger)
	timer := c.scheduler.Start(ActionStun, c.settings.AttackDuration, func(t *ActionTimer) {
		c.log.Debug("stun finished", zap.Stringer("id", t.ID))
	})
	c.log.Debug("attack started",
		zap.String("trigger", trigger),
		zap.Stringer("id", timer.ID),
	)
}

// SetWeapon replaces the melee delegate. nil restores the body.
func (c *Controller) SetWeapon(w WeaponDriver) {
	c.weapon = w
}

// MeleeAttackStart begins an attack on the active weapon. Animation
// events carry an int, so any non-zero variant means throwing.
func (c *Controller) MeleeAttackStart(variant int) {
	c.activeWeapon().BeginAttack(variant != 0)
}

// MeleeAttackEnd ends the attack on the active weapon.
func (c *Controller) MeleeAttackEnd() {
	c.activeWeapon().EndAttack()
}

func (c *Controller) activeWeapon() WeaponDriver {
	if c.weapon != nil {
		return c.weapon
	}
	return c.body
}

// SetInput replaces the axis source.
func (c *Controller) SetInput(in InputSource) {
	c.input = in
}

// SetCueSink sets the receiver for cosmetic animation events.
func (c *Controller) SetCueSink(sink CueSink) {
	c.cues = sink
}

// HandleAnimationEvent routes a named event raised by an animation clip.
func (c *Controller) HandleAnimationEvent(name string, param int) {
	switch name {
	case "MeleeAttackStart":
		c.MeleeAttackStart(param)
	case "MeleeAttackEnd":
		c.MeleeAttackEnd()
	case "Hit", "FootL", "FootR":
		if c.cues != nil {
			c.cues(name)
		}
	default:
		c.log.Debug("unhandled animation event", zap.String("name", name))
	}
}

// SetSettings replaces the tuning. Running timers keep their durations.
func (c *Controller) SetSettings(s Settings) {
	c.settings = s
}

// Settings returns the current tuning.
func (c *Controller) Settings() Settings {
	return c.settings
}

// Body returns the default body weapon.
func (c *Controller) Body() *BodyWeapon {
	return c.body
}

// Rolling reports whether a roll is running.
func (c *Controller) Rolling() bool {
	return c.rolling
}

// RollDirection returns the direction of the current or last roll.
func (c *Controller) RollDirection() RollDirection {
	return c.rollDirection
}

// Stunned reports whether any attack stun timer is running.
func (c *Controller) Stunned() bool {
	return c.scheduler.Active(ActionStun) > 0
}

// Speed returns the last published speed.
func (c *Controller) Speed() float32 {
	return c.speed
}

// Moving returns the last published moving flag.
func (c *Controller) Moving() bool {
	return c.moving
}

// InputVector returns the last axes as (horizontal, 0, vertical).
func (c *Controller) InputVector() math.Vec3 {
	return c.inputVector
}

// TargetDirection returns the last camera-relative movement direction.
func (c *Controller) TargetDirection() math.Vec3 {
	return c.targetDirection
}

// Scheduler exposes the action clock for inspection.
func (c *Controller) Scheduler() *Scheduler {
	return c.scheduler
}

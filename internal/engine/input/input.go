// Package input handles SDL2 input events: stick and keyboard axes for
// locomotion, touch and mouse gestures, and camera controls.
package input

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/warrior/internal/gesture"
	"github.com/Faultbox/warrior/internal/logger"
	"github.com/Faultbox/warrior/pkg/math"
)

// SDL_TOUCH_MOUSEID: mouse events synthesized from touches carry this id.
const touchMouseID = 0xFFFFFFFF

// Event types for game use
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
}

// CameraControl receives orbit and zoom input.
type CameraControl interface {
	HandleYaw(deltaX float32)
	HandleZoom(delta float32)
}

// Config holds device settings.
type Config struct {
	ControllerIndex int
	DeadZone        float32
}

// Input pumps SDL events once per frame and exposes the movement axes.
type Input struct {
	cfg        Config
	recognizer *gesture.Recognizer
	camera     CameraControl

	controller *sdl.GameController

	width, height int

	horizontal float32
	vertical   float32

	rightDrag bool
	events    []Event

	log *zap.Logger
}

// New creates an input handler. recognizer and camera may be nil.
func New(cfg Config, width, height int, recognizer *gesture.Recognizer, camera CameraControl) *Input {
	i := &Input{
		cfg:        cfg,
		recognizer: recognizer,
		camera:     camera,
		width:      width,
		height:     height,
		events:     make([]Event, 0, 16),
		log:        logger.Named("input"),
	}
	i.openController(cfg.ControllerIndex)
	return i
}

// SetConfig replaces device settings, reopening the controller if its
// index changed.
func (i *Input) SetConfig(cfg Config) {
	reopen := cfg.ControllerIndex != i.cfg.ControllerIndex
	i.cfg = cfg
	if reopen {
		i.closeController()
		i.openController(cfg.ControllerIndex)
	}
}

// Close releases the game controller.
func (i *Input) Close() {
	i.closeController()
}

func (i *Input) openController(index int) {
	if i.controller != nil {
		return
	}
	if index < 0 || index >= sdl.NumJoysticks() || !sdl.IsGameController(index) {
		return
	}
	c := sdl.GameControllerOpen(index)
	if c == nil {
		i.log.Warn("failed to open game controller", zap.Int("index", index))
		return
	}
	i.controller = c
	i.log.Info("game controller opened", zap.Int("index", index), zap.String("name", c.Name()))
}

func (i *Input) closeController() {
	if i.controller != nil {
		i.controller.Close()
		i.controller = nil
	}
}

// Update polls SDL events and samples the axes.
// Returns true if the game should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.width, i.height = int(e.Data1), int(e.Data2)
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  i.width,
					Height: i.height,
				})
			}
			if e.Event == sdl.WINDOWEVENT_FOCUS_LOST && i.recognizer != nil {
				i.recognizer.Cancel()
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				i.events = append(i.events, Event{Type: EventKeyDown, Key: e.Keysym.Scancode})
			}

		case *sdl.ControllerDeviceEvent:
			switch e.Type {
			case sdl.CONTROLLERDEVICEADDED:
				if int(e.Which) == i.cfg.ControllerIndex {
					i.openController(int(e.Which))
				}
			case sdl.CONTROLLERDEVICEREMOVED:
				if i.controller != nil && i.controller.Joystick().InstanceID() == e.Which {
					i.log.Info("game controller removed")
					i.closeController()
				}
			}

		case *sdl.TouchFingerEvent:
			i.handleTouch(e)

		case *sdl.MouseButtonEvent:
			i.handleMouseButton(e)

		case *sdl.MouseMotionEvent:
			if i.rightDrag && i.camera != nil {
				i.camera.HandleYaw(float32(e.XRel))
			}

		case *sdl.MouseWheelEvent:
			if i.camera != nil && e.Y != 0 {
				i.camera.HandleZoom(float32(e.Y))
			}
		}
	}

	i.sampleAxes()
	return quit
}

func (i *Input) handleTouch(e *sdl.TouchFingerEvent) {
	if i.recognizer == nil {
		return
	}
	// Finger coordinates are already normalized to the window
	p := math.Vec2{X: e.X, Y: e.Y}
	at := time.Duration(e.Timestamp) * time.Millisecond

	switch e.Type {
	case sdl.FINGERDOWN:
		i.recognizer.Press(p, at)
	case sdl.FINGERUP:
		i.recognizer.Release(p, at)
	}
}

func (i *Input) handleMouseButton(e *sdl.MouseButtonEvent) {
	if e.Which == touchMouseID {
		return
	}

	switch e.Button {
	case sdl.BUTTON_RIGHT:
		i.rightDrag = e.Type == sdl.MOUSEBUTTONDOWN

	case sdl.BUTTON_LEFT:
		if i.recognizer == nil {
			return
		}
		p := ScreenPoint(e.X, e.Y, i.width, i.height)
		at := time.Duration(e.Timestamp) * time.Millisecond
		if e.Type == sdl.MOUSEBUTTONDOWN {
			i.recognizer.Press(p, at)
		} else {
			i.recognizer.Release(p, at)
		}
	}
}

func (i *Input) sampleAxes() {
	var stickX, stickY float32
	if i.controller != nil {
		stickX = ApplyDeadZone(NormalizeAxis(i.controller.Axis(sdl.CONTROLLER_AXIS_LEFTX)), i.cfg.DeadZone)
		// SDL reports stick Y growing downward
		stickY = -ApplyDeadZone(NormalizeAxis(i.controller.Axis(sdl.CONTROLLER_AXIS_LEFTY)), i.cfg.DeadZone)
	}

	keys := sdl.GetKeyboardState()
	pressed := func(codes ...sdl.Scancode) bool {
		for _, c := range codes {
			if int(c) < len(keys) && keys[c] != 0 {
				return true
			}
		}
		return false
	}
	keyX := KeyAxis(pressed(sdl.SCANCODE_A, sdl.SCANCODE_LEFT), pressed(sdl.SCANCODE_D, sdl.SCANCODE_RIGHT))
	keyY := KeyAxis(pressed(sdl.SCANCODE_S, sdl.SCANCODE_DOWN), pressed(sdl.SCANCODE_W, sdl.SCANCODE_UP))

	i.horizontal = CombineAxis(stickX, keyX)
	i.vertical = CombineAxis(stickY, keyY)
}

// Horizontal returns the left/right axis sampled by the last Update.
func (i *Input) Horizontal() float32 {
	return i.horizontal
}

// Vertical returns the back/forward axis sampled by the last Update.
func (i *Input) Vertical() float32 {
	return i.vertical
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}

// Size returns the last known window size.
func (i *Input) Size() (int, int) {
	return i.width, i.height
}

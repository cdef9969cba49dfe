// Package config handles loading and saving of controller settings.
package config

import "time"

// Config holds all settings.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Locomotion LocomotionConfig `yaml:"locomotion"`
	Actions    ActionsConfig    `yaml:"actions"`
	Animation  AnimationConfig  `yaml:"animation"`
	Input      InputConfig      `yaml:"input"`
	Audio      AudioConfig      `yaml:"audio"`
	Logging    LoggingConfig    `yaml:"logging"`

	// path is the file the config was loaded from, if any.
	path string
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// LocomotionConfig tunes the per-frame movement update.
type LocomotionConfig struct {
	RotationSpeed float32 `yaml:"rotation_speed"` // slerp rate per second
	MoveThreshold float32 `yaml:"move_threshold"` // axis magnitude that counts as moving
}

// ActionsConfig holds timed action durations.
type ActionsConfig struct {
	RollDuration   time.Duration `yaml:"roll_duration"`
	AttackDuration time.Duration `yaml:"attack_duration"`
}

// AnimationConfig names the animator parameters and describes clips.
type AnimationConfig struct {
	SpeedParam          string `yaml:"speed_param"`
	MovingParam         string `yaml:"moving_param"`
	HandAttackTrigger   string `yaml:"hand_attack_trigger"`
	FootAttackTrigger   string `yaml:"foot_attack_trigger"`
	RollForwardTrigger  string `yaml:"roll_forward_trigger"`
	RollBackwardTrigger string `yaml:"roll_backward_trigger"`

	// Clips maps a trigger name to the clip it starts.
	Clips map[string]ClipConfig `yaml:"clips"`
}

// ClipConfig describes a one-shot clip and the events it emits.
type ClipConfig struct {
	Length time.Duration `yaml:"length"`
	Events []ClipEvent   `yaml:"events"`
}

// ClipEvent is an animation event fired at an offset into a clip.
type ClipEvent struct {
	Name  string        `yaml:"name"`
	At    time.Duration `yaml:"at"`
	Param int           `yaml:"param"`
}

// InputConfig holds device and gesture settings.
type InputConfig struct {
	ControllerIndex  int           `yaml:"controller_index"`
	DeadZone         float32       `yaml:"dead_zone"`
	SwipeMinDistance float32       `yaml:"swipe_min_distance"` // normalized screen units
	SwipeMaxDuration time.Duration `yaml:"swipe_max_duration"`
	DoubleTapWindow  time.Duration `yaml:"double_tap_window"`
	DoubleTapRadius  float32       `yaml:"double_tap_radius"`
}

// AudioConfig holds sound cue settings.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"`
	SFXVolume    float64 `yaml:"sfx_volume"`

	// Cues maps a trigger or animation event name to a WAV file.
	Cues map[string]string `yaml:"cues"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Path returns the file the config was loaded from, or "" for defaults.
func (c *Config) Path() string {
	return c.path
}

// Default returns a Config with the stock tuning values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Warrior",
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Locomotion: LocomotionConfig{
			RotationSpeed: 30,
			MoveThreshold: 0.1,
		},
		Actions: ActionsConfig{
			RollDuration:   350 * time.Millisecond,
			AttackDuration: 2 * time.Second,
		},
		Animation: AnimationConfig{
			SpeedParam:          "Speed",
			MovingParam:         "Moving",
			HandAttackTrigger:   "Attack1Trigger",
			FootAttackTrigger:   "Attack2Trigger",
			RollForwardTrigger:  "RollForwardTrigger",
			RollBackwardTrigger: "RollBackwardTrigger",
			Clips: map[string]ClipConfig{
				"Attack1Trigger": {
					Length: 800 * time.Millisecond,
					Events: []ClipEvent{
						{Name: "MeleeAttackStart", At: 200 * time.Millisecond},
						{Name: "Hit", At: 350 * time.Millisecond},
						{Name: "MeleeAttackEnd", At: 500 * time.Millisecond},
					},
				},
				"Attack2Trigger": {
					Length: time.Second,
					Events: []ClipEvent{
						{Name: "MeleeAttackStart", At: 250 * time.Millisecond},
						{Name: "Hit", At: 450 * time.Millisecond},
						{Name: "MeleeAttackEnd", At: 650 * time.Millisecond},
					},
				},
				"RollForwardTrigger": {
					Length: 350 * time.Millisecond,
					Events: []ClipEvent{{Name: "FootR", At: 300 * time.Millisecond}},
				},
				"RollBackwardTrigger": {
					Length: 350 * time.Millisecond,
					Events: []ClipEvent{{Name: "FootL", At: 300 * time.Millisecond}},
				},
			},
		},
		Input: InputConfig{
			ControllerIndex:  0,
			DeadZone:         0.05,
			SwipeMinDistance: 0.08,
			SwipeMaxDuration: 500 * time.Millisecond,
			DoubleTapWindow:  300 * time.Millisecond,
			DoubleTapRadius:  0.05,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.8,
			SFXVolume:    0.8,
			Cues:         map[string]string{},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

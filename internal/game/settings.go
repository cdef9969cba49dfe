package game

import (
	"github.com/Faultbox/warrior/internal/config"
	"github.com/Faultbox/warrior/internal/engine/animator"
	"github.com/Faultbox/warrior/internal/engine/input"
	"github.com/Faultbox/warrior/internal/gesture"
	"github.com/Faultbox/warrior/internal/locomotion"
)

// locomotionSettings maps the config file onto controller tuning.
func locomotionSettings(cfg *config.Config) locomotion.Settings {
	return locomotion.Settings{
		RotationSpeed:       cfg.Locomotion.RotationSpeed,
		MoveThreshold:       cfg.Locomotion.MoveThreshold,
		RollDuration:        cfg.Actions.RollDuration,
		AttackDuration:      cfg.Actions.AttackDuration,
		SpeedParam:          cfg.Animation.SpeedParam,
		MovingParam:         cfg.Animation.MovingParam,
		HandAttackTrigger:   cfg.Animation.HandAttackTrigger,
		FootAttackTrigger:   cfg.Animation.FootAttackTrigger,
		RollForwardTrigger:  cfg.Animation.RollForwardTrigger,
		RollBackwardTrigger: cfg.Animation.RollBackwardTrigger,
	}
}

func gestureConfig(cfg *config.Config) gesture.Config {
	return gesture.Config{
		SwipeMinDistance: cfg.Input.SwipeMinDistance,
		SwipeMaxDuration: cfg.Input.SwipeMaxDuration,
		DoubleTapWindow:  cfg.Input.DoubleTapWindow,
		DoubleTapRadius:  cfg.Input.DoubleTapRadius,
	}
}

func inputConfig(cfg *config.Config) input.Config {
	return input.Config{
		ControllerIndex: cfg.Input.ControllerIndex,
		DeadZone:        cfg.Input.DeadZone,
	}
}

func animatorClips(cfg *config.Config) map[string]animator.Clip {
	clips := make(map[string]animator.Clip, len(cfg.Animation.Clips))
	for trigger, c := range cfg.Animation.Clips {
		events := make([]animator.Event, 0, len(c.Events))
		for _, e := range c.Events {
			events = append(events, animator.Event{Name: e.Name, At: e.At, Param: e.Param})
		}
		clips[trigger] = animator.Clip{Length: c.Length, Events: events}
	}
	return clips
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	// Explicit path takes priority over the search locations
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Reload reads the file the config was loaded from on top of the defaults
// and re-applies flags. Configs built from defaults only return a copy.
func (c *Config) Reload() (*Config, error) {
	next := Default()
	if c.path != "" {
		if err := loadFromFile(next, c.path); err != nil {
			return nil, fmt.Errorf("reloading config from %s: %w", c.path, err)
		}
	}
	applyFlags(next)
	if err := next.Validate(); err != nil {
		return nil, err
	}
	return next, nil
}

// Validate rejects settings the controller cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Locomotion.RotationSpeed <= 0 {
		errs = append(errs, fmt.Errorf("locomotion.rotation_speed must be positive, got %v", c.Locomotion.RotationSpeed))
	}
	// Zero would count a centred stick as moving
	if c.Locomotion.MoveThreshold <= 0 || c.Locomotion.MoveThreshold > 1 {
		errs = append(errs, fmt.Errorf("locomotion.move_threshold must be in (0,1], got %v", c.Locomotion.MoveThreshold))
	}
	if c.Actions.RollDuration <= 0 {
		errs = append(errs, fmt.Errorf("actions.roll_duration must be positive, got %v", c.Actions.RollDuration))
	}
	if c.Actions.AttackDuration < 0 {
		errs = append(errs, fmt.Errorf("actions.attack_duration must not be negative, got %v", c.Actions.AttackDuration))
	}
	if c.Input.DeadZone < 0 || c.Input.DeadZone >= 1 {
		errs = append(errs, fmt.Errorf("input.dead_zone must be in [0,1), got %v", c.Input.DeadZone))
	}
	if c.Input.SwipeMinDistance <= 0 {
		errs = append(errs, fmt.Errorf("input.swipe_min_distance must be positive, got %v", c.Input.SwipeMinDistance))
	}
	if c.Input.SwipeMaxDuration < 0 {
		errs = append(errs, fmt.Errorf("input.swipe_max_duration must not be negative, got %v", c.Input.SwipeMaxDuration))
	}
	if c.Input.DoubleTapWindow < 0 {
		errs = append(errs, fmt.Errorf("input.double_tap_window must not be negative, got %v", c.Input.DoubleTapWindow))
	}
	if c.Input.DoubleTapRadius < 0 {
		errs = append(errs, fmt.Errorf("input.double_tap_radius must not be negative, got %v", c.Input.DoubleTapRadius))
	}
	for name, clip := range c.Animation.Clips {
		for _, ev := range clip.Events {
			if ev.At > clip.Length {
				errs = append(errs, fmt.Errorf("animation.clips.%s: event %s at %v is past clip length %v", name, ev.Name, ev.At, clip.Length))
			}
		}
	}
	return errors.Join(errs...)
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Warrior")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Warrior")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "warrior")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "warrior")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	cfg.path = abs
	return nil
}

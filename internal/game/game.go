// Package game implements the main loop and owns every collaborator of
// the character controller.
package game

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/warrior/internal/config"
	"github.com/Faultbox/warrior/internal/engine/audio"
	"github.com/Faultbox/warrior/internal/engine/camera"
	"github.com/Faultbox/warrior/internal/engine/input"
	"github.com/Faultbox/warrior/internal/engine/renderer"
	"github.com/Faultbox/warrior/internal/engine/window"
	"github.com/Faultbox/warrior/internal/logger"
)

// maxFrameDelta caps a single step so a stall does not skip whole actions.
const maxFrameDelta = 100 * time.Millisecond

// Game is the main game instance.
type Game struct {
	config  *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.ThirdPersonCamera
	audio    *audio.Manager
	watcher  *config.Watcher

	scene *Scene
	log   *zap.Logger
}

// New creates a new game instance.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		config: cfg,
		camera: camera.NewThirdPersonCamera(),
		audio:  audio.New(),
		log:    logger.Named("game"),
	}

	g.log.Info("initializing game",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	// Window first: it owns SDL and the OpenGL context
	var err error
	g.window, err = window.New(cfg.Window)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := g.window.GetSize()
	g.renderer, err = renderer.New(renderer.Config{Width: width, Height: height})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.initAudio()

	g.scene = NewScene(cfg, nil, g.camera, g.audio.PlayCue)
	g.scene.Recognizer.Facing = g.camera.ScreenFacing

	g.input = input.New(inputConfig(cfg), width, height, g.scene.Recognizer, g.camera)
	g.scene.Controller.SetInput(g.input)

	if path := cfg.Path(); path != "" {
		g.watcher, err = config.NewWatcher(path)
		if err != nil {
			g.log.Warn("config hot reload disabled", zap.String("path", path), zap.Error(err))
		}
	}

	g.log.Info("game initialized successfully")
	return g, nil
}

// initAudio opens the speaker and loads cues. Failures only disable sound.
func (g *Game) initAudio() {
	a := g.config.Audio
	if !a.Enabled {
		g.log.Info("audio disabled")
		return
	}
	if err := g.audio.Init(); err != nil {
		g.log.Warn("audio unavailable", zap.Error(err))
		return
	}
	g.audio.SetMasterVolume(a.MasterVolume)
	g.audio.SetSFXVolume(a.SFXVolume)
	g.audio.LoadCues(a.Cues, g.cueDir())
}

// cueDir resolves relative cue paths against the config file location.
func (g *Game) cueDir() string {
	if path := g.config.Path(); path != "" {
		return filepath.Dir(path)
	}
	return "."
}

// Run starts the main game loop.
func (g *Game) Run() error {
	g.running = true
	g.scene.Start()
	defer g.scene.Stop()

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	g.log.Info("starting game loop")

	for g.running {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now
		if dt > maxFrameDelta {
			dt = maxFrameDelta
		}

		// 1. Input; gestures are published to the controller as they are recognized
		if g.input.Update() {
			g.running = false
			break
		}

		for _, event := range g.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				g.renderer.Resize(event.Width, event.Height)
			case input.EventKeyDown:
				if event.Key == sdl.SCANCODE_ESCAPE {
					g.running = false
				}
			}
		}

		// 2. Simulation
		g.scene.Step(dt)

		// 3. Tuning edits from disk
		g.pollConfig()

		// 4. Render
		g.render()
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			g.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Duration("dt", dt),
				zap.Stringer("state", g.scene.State()),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// pollConfig applies a pending config change without blocking the frame.
func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	select {
	case <-g.watcher.Changed:
		cfg, err := g.config.Reload()
		if err != nil {
			g.log.Warn("config reload rejected", zap.Error(err))
			return
		}
		g.config = cfg
		g.scene.Apply(cfg)
		g.input.SetConfig(inputConfig(cfg))
		if g.audio.IsInitialized() {
			g.audio.SetMasterVolume(cfg.Audio.MasterVolume)
			g.audio.SetSFXVolume(cfg.Audio.SFXVolume)
			g.audio.LoadCues(cfg.Audio.Cues, g.cueDir())
		}
		g.log.Info("config reloaded", zap.String("path", cfg.Path()))
	case err := <-g.watcher.Errors:
		g.log.Warn("config watcher error", zap.Error(err))
	default:
	}
}

func (g *Game) render() {
	target := g.scene.Character.Position
	g.renderer.Begin(g.camera.ViewMatrix(target))
	g.renderer.DrawGround()
	g.renderer.DrawCharacter(target, g.scene.Character.Rotation(), g.scene.State())
	g.renderer.End()
}

// Close cleans up game resources.
func (g *Game) Close() {
	g.log.Info("closing game")

	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			g.log.Warn("closing config watcher", zap.Error(err))
		}
	}
	if g.input != nil {
		g.input.Close()
	}
	g.audio.Close()
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}

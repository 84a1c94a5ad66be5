// Package game wires the window, renderer and scene to the render loop.
package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/seascape/internal/anim"
	"github.com/Faultbox/seascape/internal/config"
	"github.com/Faultbox/seascape/internal/engine/audio"
	"github.com/Faultbox/seascape/internal/engine/camera"
	"github.com/Faultbox/seascape/internal/engine/debug"
	"github.com/Faultbox/seascape/internal/engine/input"
	"github.com/Faultbox/seascape/internal/engine/renderer"
	"github.com/Faultbox/seascape/internal/engine/window"
	"github.com/Faultbox/seascape/internal/logger"
	"github.com/Faultbox/seascape/internal/sim"
	"github.com/Faultbox/seascape/internal/world"
)

// Title is the window title.
const Title = "Seascape"

// Game is the running application.
type Game struct {
	config *config.Config

	window   *window.Window
	renderer *renderer.Renderer
	camera   *camera.PerspectiveCamera
	input    *input.Input
	audio    *audio.Manager
	shots    *debug.ScreenshotCapture
	watcher  *config.Watcher

	world   *world.World
	pointer *anim.Pointer
	sim     *sim.Context
	loop    *sim.Loop
}

// New creates the window and the scene. configPath is watched for changes
// when watch is set and the path is not empty.
func New(cfg *config.Config, configPath string, watch bool) (*Game, error) {
	logger.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Bool("fullscreen", cfg.Graphics.Fullscreen),
	)

	g := &Game{config: cfg}

	var err error
	g.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer must come after the window, which owns the GL context
	fbWidth, fbHeight := g.window.DrawableSize()
	rcfg := renderer.DefaultConfig(fbWidth, fbHeight)
	rcfg.Fog = fog(cfg.Scene, rcfg.Fog)
	rcfg.Lighting = lights(cfg.Scene)
	g.renderer, err = renderer.New(rcfg)
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.shots, err = debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "seascape", cfg.Debug.ScreenshotFormat)
	if err != nil {
		g.Close()
		return nil, err
	}

	g.camera = camera.NewPerspectiveCamera(fbWidth, fbHeight)
	g.input = input.New()

	seed := sceneSeed(cfg.Scene, time.Now())
	g.world = world.Build(rand.New(rand.NewSource(seed)), seaOptions(cfg.Scene))
	logger.Info("scene built",
		zap.Int64("seed", seed),
		zap.Int("meshes", g.world.Root.MeshCount()),
		zap.Int("sea_vertices", len(g.world.Waves.Waves())),
	)

	// Pointer events arrive in window coordinates, not framebuffer pixels
	g.pointer = anim.NewPointer(cfg.Scene.InvertPointerY)
	g.pointer.SetViewport(g.window.GetSize())

	g.sim = sim.NewContext(g.world, g.pointer, follower(cfg.Scene))

	g.startAudio()

	if watch && configPath != "" {
		g.watcher, err = config.Watch(configPath)
		if err != nil {
			logger.Warn("config watch disabled", zap.String("path", configPath), zap.Error(err))
		} else {
			logger.Info("watching config", zap.String("path", g.watcher.Path()))
		}
	}

	d := &display{game: g, showBounds: cfg.Debug.ShowBounds, showFPS: cfg.Debug.ShowFPS}
	g.loop = sim.NewLoop(g.sim, d, d, sim.SystemClock{})

	logger.Info("initialized successfully")
	return g, nil
}

func (g *Game) startAudio() {
	ac := g.config.Audio
	g.audio = audio.New(ac.MasterVolume, ac.AmbientVolume, ac.Muted)
	g.switchTrack(ac.AmbientTrack)
}

// switchTrack follows the configured ambient track; clearing it stops playback.
func (g *Game) switchTrack(track string) {
	if err := g.audio.SetAmbientTrack(track); err != nil {
		logger.Warn("ambient track failed", zap.String("track", track), zap.Error(err))
	}
}

// Run drives the render loop until the window closes or ctx ends.
func (g *Game) Run(ctx context.Context) error {
	return g.loop.Run(ctx)
}

// Close releases everything New acquired. It tolerates partial construction.
func (g *Game) Close() {
	logger.Info("closing")

	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			logger.Warn("closing config watcher", zap.Error(err))
		}
	}
	if g.audio != nil {
		g.audio.Close()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}

// applyConfig applies the settings that can change while running.
// Window size, sea resolution and the seed need a restart.
func (g *Game) applyConfig(cfg *config.Config) {
	logger.SetLevel(cfg.Logging.Level)

	g.sim.Follow = follower(cfg.Scene)
	g.pointer.SetInvertY(cfg.Scene.InvertPointerY)
	g.renderer.SetFog(fog(cfg.Scene, renderer.DefaultFog()))

	if g.audio != nil {
		g.audio.SetMasterVolume(cfg.Audio.MasterVolume)
		g.audio.SetAmbientVolume(cfg.Audio.AmbientVolume)
		g.audio.SetMuted(cfg.Audio.Muted)
		g.switchTrack(cfg.Audio.AmbientTrack)
	}

	g.config = cfg
	logger.Info("config reloaded",
		zap.String("level", cfg.Logging.Level),
		zap.Float64("follow_factor", g.sim.Follow.Factor),
		zap.Bool("frame_rate_neutral", g.sim.Follow.FrameRateNeutral),
		zap.Bool("ambient_playing", g.audio != nil && g.audio.IsPlaying()),
	)
}

package game

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/seascape/internal/engine/debug"
	"github.com/Faultbox/seascape/internal/engine/input"
	"github.com/Faultbox/seascape/internal/logger"
	"github.com/Faultbox/seascape/internal/scene"
	"github.com/Faultbox/seascape/internal/sim"
)

// boundsColor tints the debug box drawn around the boat.
var boundsColor = scene.Hex(0x00ff00)

// statusEvery is how many frames pass between status title refreshes.
const statusEvery = 30

// display connects the loop to SDL: it is both the frame source, pumping
// window events between frames, and the sink that draws and presents.
type display struct {
	game *Game

	screenshotPending bool
	showBounds        bool
	showFPS           bool
	shownStatus       string
}

// NextFrame handles pending window events and config reloads. Vsync in
// Submit's buffer swap is what paces frames.
func (d *display) NextFrame(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	g := d.game
	if g.input.Update() {
		return sim.ErrStopped
	}

	for _, e := range g.input.Events() {
		switch e.Type {
		case input.EventWindowResize:
			d.resize()
		case input.EventMouseMove:
			g.pointer.Move(float64(e.MouseX), float64(e.MouseY))
		case input.EventKeyDown:
			if stop := d.handleAction(g.input.Action(e)); stop {
				return sim.ErrStopped
			}
		}
	}

	d.drainReloads()
	return nil
}

func (d *display) handleAction(a input.Action) (stop bool) {
	g := d.game
	switch a {
	case input.ActionQuit:
		return true
	case input.ActionScreenshot:
		d.screenshotPending = true
	case input.ActionToggleMute:
		muted := g.audio.ToggleMute()
		logger.Info("audio mute toggled", zap.Bool("muted", muted))
	case input.ActionToggleBounds:
		d.showBounds = !d.showBounds
	}
	return false
}

// resize refreshes every size-dependent piece from the window itself, since
// the event reports window units and the framebuffer may be larger.
func (d *display) resize() {
	g := d.game
	fbWidth, fbHeight := g.window.DrawableSize()
	g.renderer.Resize(fbWidth, fbHeight)
	g.camera.Resize(fbWidth, fbHeight)
	g.pointer.SetViewport(g.window.GetSize())
}

func (d *display) drainReloads() {
	w := d.game.watcher
	if w == nil {
		return
	}
	select {
	case cfg := <-w.Updates:
		d.game.applyConfig(cfg)
	case err := <-w.Errors:
		logger.Warn("config reload failed, keeping previous settings", zap.Error(err))
	default:
	}
}

// Submit draws the posed scene and presents it.
func (d *display) Submit(c *sim.Context) error {
	g := d.game
	g.renderer.Render(g.world.Root, g.camera)

	if d.showBounds {
		if b, ok := debug.NodeBounds(c.Boat); ok {
			g.renderer.DrawLines(debug.BoundsWireframe(b, debug.DefaultBBoxPadding), boundsColor, g.camera)
		}
	}

	if d.screenshotPending {
		d.screenshotPending = false
		d.capture()
	}

	if d.showFPS {
		d.updateTitle(c)
	}

	g.window.SwapBuffers()
	return nil
}

func (d *display) updateTitle(c *sim.Context) {
	g := d.game
	if g.loop.Frames()%statusEvery != 0 {
		return
	}
	status := statusLine(g.loop.FPS(), c, g.audio.IsPlaying(), g.audio.Muted())
	if status == d.shownStatus {
		return
	}
	d.shownStatus = status
	g.window.SetTitle(status)
}

// statusLine is the window title shown with show_fps: frame rate, where the
// boat sits and where it is heading, the bob state and the follow tuning.
func statusLine(fps int, c *sim.Context, playing, muted bool) string {
	sound := "off"
	switch {
	case playing && muted:
		sound = "muted"
	case playing:
		sound = "on"
	}
	pos := c.Boat.Position
	return fmt.Sprintf("%s - %d fps - boat %.1f,%.1f -> %.1f,%.1f - %s/%s - follow %.3f - sound %s",
		Title, fps,
		pos.X, pos.Z, c.TargetX, c.TargetZ,
		c.Bob.Direction, c.Bob.Phase,
		c.Follow.Factor, sound,
	)
}

func (d *display) capture() {
	pixels, w, h := d.game.renderer.ReadPixels()
	path, err := d.game.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

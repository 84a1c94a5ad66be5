package sim

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/seascape/internal/logger"
)

// ErrStopped is returned by a FrameSource when there will be no more frames.
var ErrStopped = errors.New("sim: stopped")

// FrameSource paces the loop. NextFrame returns once the display is ready
// for another frame, or ErrStopped when the loop should end.
type FrameSource interface {
	NextFrame(ctx context.Context) error
}

// Sink receives the posed scene after every update.
type Sink interface {
	Submit(c *Context) error
}

// Loop runs one update and one submit per display frame. It never catches
// up on missed frames.
type Loop struct {
	sim    *Context
	frames FrameSource
	sink   Sink
	clock  Clock

	frameCount uint64
	lastFrame  time.Time

	// FPS counter
	fpsFrames int
	fpsSince  time.Time
	fps       int
}

// NewLoop creates a loop over sim. A nil clock uses the system clock.
func NewLoop(sim *Context, frames FrameSource, sink Sink, clock Clock) *Loop {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Loop{
		sim:    sim,
		frames: frames,
		sink:   sink,
		clock:  clock,
	}
}

// Frames returns how many frames have been submitted.
func (l *Loop) Frames() uint64 {
	return l.frameCount
}

// FPS returns the frame count of the last full second, or 0 before one
// has passed.
func (l *Loop) FPS() int {
	return l.fps
}

// Run loops until the frame source stops or ctx is cancelled.
// A clean stop returns nil.
func (l *Loop) Run(ctx context.Context) error {
	logger.Info("starting render loop")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := l.RunFrame(ctx); err != nil {
			if errors.Is(err, ErrStopped) {
				logger.Info("render loop stopped", zap.Uint64("frames", l.frameCount))
				return nil
			}
			return err
		}
	}
}

// RunFrame waits for the next frame, updates the scene and submits it.
func (l *Loop) RunFrame(ctx context.Context) error {
	if err := l.frames.NextFrame(ctx); err != nil {
		return err
	}

	now := l.clock.Now()
	var dt time.Duration
	if !l.lastFrame.IsZero() {
		dt = now.Sub(l.lastFrame)
	}
	l.lastFrame = now

	l.sim.Update(dt)

	if err := l.sink.Submit(l.sim); err != nil {
		return fmt.Errorf("submit frame %d: %w", l.frameCount, err)
	}
	l.frameCount++

	l.countFPS(now, dt)
	return nil
}

func (l *Loop) countFPS(now time.Time, dt time.Duration) {
	if l.fpsSince.IsZero() {
		l.fpsSince = now
	}
	l.fpsFrames++
	if now.Sub(l.fpsSince) >= time.Second {
		l.fps = l.fpsFrames
		logger.Debug("fps",
			zap.Int("count", l.fpsFrames),
			zap.Duration("dt", dt),
		)
		l.fpsFrames = 0
		l.fpsSince = now
	}
}

package sim

import (
	"context"
	"time"
)

// ManualFrames hands out a fixed number of frames without waiting for a
// display, advancing Clock by Period before each one.
type ManualFrames struct {
	Remaining int
	Clock     *ManualClock
	Period    time.Duration
}

// NextFrame returns ErrStopped once Remaining reaches zero.
func (m *ManualFrames) NextFrame(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.Remaining <= 0 {
		return ErrStopped
	}
	m.Remaining--
	if m.Clock != nil {
		m.Clock.Advance(m.Period)
	}
	return nil
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(c *Context) error

// Submit calls f(c).
func (f SinkFunc) Submit(c *Context) error {
	return f(c)
}

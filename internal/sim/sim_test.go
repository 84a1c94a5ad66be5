package sim

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/Faultbox/seascape/internal/anim"
	"github.com/Faultbox/seascape/internal/world"
)

func newTestContext(t *testing.T) *Context {
	t.Helper()
	opts := world.DefaultSeaOptions()
	opts.RadialSegments = 8
	opts.HeightSegments = 4
	w := world.Build(rand.New(rand.NewSource(1)), opts)

	p := anim.NewPointer(false)
	p.SetViewport(800, 600)
	return NewContext(w, p, anim.NewFollower(anim.DefaultFollowFactor))
}

func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestUpdateSpinsSeaAndSky(t *testing.T) {
	c := newTestContext(t)

	c.Update(0)

	if !near(float64(c.Sky.Rotation.Z), SpinRate, 1e-9) {
		t.Errorf("sky rotation = %v, want %v", c.Sky.Rotation.Z, SpinRate)
	}
	// The wave field adds its own spin on top of the loop's.
	want := SpinRate + anim.WaveSpin
	if !near(float64(c.Sea.Rotation.Z), want, 1e-9) {
		t.Errorf("sea rotation = %v, want %v", c.Sea.Rotation.Z, want)
	}
}

func TestUpdateKeepsSpinBounded(t *testing.T) {
	c := newTestContext(t)
	c.Sea.Rotation.Z = 1000
	c.Sky.Rotation.Z = math.Pi - SpinRate/2

	c.Update(0)

	for name, z := range map[string]float32{"sea": c.Sea.Rotation.Z, "sky": c.Sky.Rotation.Z} {
		if z < -math.Pi || z > math.Pi {
			t.Errorf("%s rotation = %v, want it wrapped into [-pi, pi]", name, z)
		}
	}
	// Wrapping keeps the same heading: sky crossed pi by half a step.
	if !near(float64(c.Sky.Rotation.Z), -math.Pi+SpinRate/2, 1e-6) {
		t.Errorf("sky rotation = %v, want %v", c.Sky.Rotation.Z, -math.Pi+SpinRate/2)
	}
}

func TestUpdateBobsBoat(t *testing.T) {
	c := newTestContext(t)
	startY := float64(c.Boat.Position.Y)

	c.Update(0)

	if !near(float64(c.Boat.Position.Y), startY+anim.BobDelta, 1e-4) {
		t.Errorf("boat y = %v, want %v", c.Boat.Position.Y, startY+anim.BobDelta)
	}
	if c.Boat.Rotation.Z == 0 {
		t.Error("boat should pitch while bobbing")
	}
}

func TestUpdateTargetsPointer(t *testing.T) {
	tests := []struct {
		name         string
		x, y         float64
		wantX, wantZ float64
	}{
		{"centre", 400, 300, 0, 0},
		{"top left", 0, 0, -TargetRange, -TargetRange},
		{"bottom right", 800, 600, TargetRange, TargetRange},
		{"right edge", 800, 300, TargetRange, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(t)
			c.Pointer.Move(tt.x, tt.y)
			c.Update(0)
			if !near(c.TargetX, tt.wantX, 1e-9) || !near(c.TargetZ, tt.wantZ, 1e-9) {
				t.Errorf("target = (%v, %v), want (%v, %v)", c.TargetX, c.TargetZ, tt.wantX, tt.wantZ)
			}
		})
	}
}

func TestUpdateEasesTowardTarget(t *testing.T) {
	c := newTestContext(t)
	c.Pointer.Move(800, 600)

	c.Update(0)

	// One percent of the way from 0 to 50.
	if !near(float64(c.Boat.Position.X), 0.5, 1e-5) {
		t.Errorf("boat x = %v, want 0.5", c.Boat.Position.X)
	}
	if !near(float64(c.Boat.Position.Z), 0.5, 1e-5) {
		t.Errorf("boat z = %v, want 0.5", c.Boat.Position.Z)
	}
}

func TestLoopConvergesToCentre(t *testing.T) {
	c := newTestContext(t)
	c.Pointer.Move(400, 300)
	c.Boat.Position.X = 40
	c.Boat.Position.Z = -30

	clock := NewManualClock(time.Unix(0, 0))
	frames := &ManualFrames{Remaining: 100, Clock: clock, Period: anim.ReferenceFrame}
	var submitted int
	sink := SinkFunc(func(got *Context) error {
		submitted++
		if got.TargetX != 0 || got.TargetZ != 0 {
			t.Errorf("frame %d: target = (%v, %v), want the centre", submitted, got.TargetX, got.TargetZ)
		}
		return nil
	})

	loop := NewLoop(c, frames, sink, clock)
	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if submitted != 100 || loop.Frames() != 100 {
		t.Fatalf("submitted %d frames (loop says %d), want 100", submitted, loop.Frames())
	}

	decay := math.Pow(0.99, 100)
	if got, limit := math.Abs(float64(c.Boat.Position.X)), 40*decay+1e-3; got > limit {
		t.Errorf("|x| = %v, want <= %v", got, limit)
	}
	if got, limit := math.Abs(float64(c.Boat.Position.Z)), 30*decay+1e-3; got > limit {
		t.Errorf("|z| = %v, want <= %v", got, limit)
	}
}

func TestLoopSinkError(t *testing.T) {
	c := newTestContext(t)
	errBoom := errors.New("boom")
	frames := &ManualFrames{Remaining: 5}
	sink := SinkFunc(func(*Context) error { return errBoom })

	loop := NewLoop(c, frames, sink, NewManualClock(time.Unix(0, 0)))
	err := loop.Run(context.Background())
	if !errors.Is(err, errBoom) {
		t.Fatalf("Run error = %v, want %v", err, errBoom)
	}
	if loop.Frames() != 0 {
		t.Errorf("frames = %d, want 0", loop.Frames())
	}
}

func TestLoopCancelled(t *testing.T) {
	c := newTestContext(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	frames := &ManualFrames{Remaining: 5}
	loop := NewLoop(c, frames, SinkFunc(func(*Context) error { return nil }), nil)
	if err := loop.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run error = %v, want context.Canceled", err)
	}
}

func TestManualClock(t *testing.T) {
	start := time.Unix(100, 0)
	c := NewManualClock(start)
	c.Advance(time.Second)
	if got := c.Now(); !got.Equal(start.Add(time.Second)) {
		t.Errorf("Now = %v, want %v", got, start.Add(time.Second))
	}
}

func TestLoopFPS(t *testing.T) {
	c := newTestContext(t)
	clock := NewManualClock(time.Unix(0, 0))
	frames := &ManualFrames{Remaining: 121, Clock: clock, Period: anim.ReferenceFrame}
	loop := NewLoop(c, frames, SinkFunc(func(*Context) error { return nil }), clock)

	if loop.FPS() != 0 {
		t.Errorf("FPS before any frame = %d, want 0", loop.FPS())
	}
	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := loop.FPS(); got < 58 || got > 63 {
		t.Errorf("FPS = %d, want about 60", got)
	}
}

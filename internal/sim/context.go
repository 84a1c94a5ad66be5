// Package sim owns the per-frame update of the scene and the loop that drives it.
package sim

import (
	"time"

	"github.com/Faultbox/seascape/internal/anim"
	"github.com/Faultbox/seascape/internal/scene"
	"github.com/Faultbox/seascape/internal/world"
)

// Frame update constants.
const (
	// SpinRate is the Z rotation added to the sea and sky each frame.
	SpinRate = 0.0001

	// TargetRange is the world-space reach of the pointer on X and Z.
	TargetRange = 50.0
)

// Context is everything one frame update reads and writes. It is built once
// by the driver and passed explicitly; nothing here is global.
type Context struct {
	Boat    *scene.Node
	Sea     *scene.Node
	Sky     *scene.Node
	Waves   *anim.WaveField
	Bob     *anim.Oscillator
	Pointer *anim.Pointer
	Follow  anim.Follower

	// TargetX and TargetZ are the boat's most recent pointer-derived goal.
	TargetX, TargetZ float64
}

// NewContext wires the animated parts of w to a pointer tracker. The
// oscillator starts rising from the boat's current height.
func NewContext(w *world.World, pointer *anim.Pointer, follow anim.Follower) *Context {
	return &Context{
		Boat:    w.Boat,
		Sea:     w.Sea,
		Sky:     w.Sky,
		Waves:   w.Waves,
		Bob:     anim.NewOscillator(float64(w.Boat.Position.Y)),
		Pointer: pointer,
		Follow:  follow,
	}
}

// Update advances the scene by one frame lasting dt. dt only matters when
// the follower is frame-rate neutral; everything else moves a fixed amount
// per call.
func (c *Context) Update(dt time.Duration) {
	c.Sea.Rotation.Z = anim.Spin(c.Sea.Rotation.Z, SpinRate)
	c.Sky.Rotation.Z = anim.Spin(c.Sky.Rotation.Z, SpinRate)

	c.updateBoat(dt)

	c.Waves.Advance()
}

func (c *Context) updateBoat(dt time.Duration) {
	px, py := c.Pointer.Target()
	c.TargetX = anim.Normalize(px, -1, 1, -TargetRange, TargetRange)
	c.TargetZ = anim.Normalize(py, -1, 1, -TargetRange, TargetRange)

	pos := &c.Boat.Position
	pos.Z = float32(c.Follow.Step(float64(pos.Z), c.TargetZ, dt))
	pos.X = float32(c.Follow.Step(float64(pos.X), c.TargetX, dt))

	c.Bob.Step()
	pos.Y = float32(c.Bob.Offset)
	c.Boat.Rotation.Z = float32(c.Bob.Rotation)
}

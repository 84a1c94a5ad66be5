// Package camera provides the scene's viewing camera.
package camera

import (
	gomath "math"

	"github.com/Faultbox/seascape/pkg/math"
)

// Scene camera defaults.
const (
	DefaultFOV  = 60.0
	DefaultNear = 1.0
	DefaultFar  = 10000.0
)

// DefaultPosition places the camera above and behind the boat.
var DefaultPosition = math.Vec3{X: 0, Y: 100, Z: 200}

// PerspectiveCamera is a fixed camera looking along Forward from Position.
type PerspectiveCamera struct {
	Position math.Vec3
	Forward  math.Vec3
	Up       math.Vec3

	FOV    float32 // vertical, degrees
	Aspect float32
	Near   float32
	Far    float32
}

// NewPerspectiveCamera creates the scene camera looking down -Z for a
// viewport of the given size.
func NewPerspectiveCamera(width, height int) *PerspectiveCamera {
	c := &PerspectiveCamera{
		Position: DefaultPosition,
		Forward:  math.Vec3{X: 0, Y: 0, Z: -1},
		Up:       math.Vec3{X: 0, Y: 1, Z: 0},
		FOV:      DefaultFOV,
		Near:     DefaultNear,
		Far:      DefaultFar,
		Aspect:   1,
	}
	c.Resize(width, height)
	return c
}

// Resize updates the aspect ratio. Empty sizes keep the previous aspect.
func (c *PerspectiveCamera) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// ViewMatrix returns the world-to-camera transform.
func (c *PerspectiveCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.Forward), c.Up)
}

// ProjectionMatrix returns the perspective projection.
func (c *PerspectiveCamera) ProjectionMatrix() math.Mat4 {
	fovY := float32(float64(c.FOV) * gomath.Pi / 180)
	return math.Perspective(fovY, c.Aspect, c.Near, c.Far)
}

// ViewProj returns projection * view.
func (c *PerspectiveCamera) ViewProj() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/seascape/pkg/math"
)

func TestNewPerspectiveCamera(t *testing.T) {
	c := NewPerspectiveCamera(800, 600)

	if c.Position != DefaultPosition {
		t.Errorf("Position = %v, want %v", c.Position, DefaultPosition)
	}
	if c.FOV != DefaultFOV || c.Near != DefaultNear || c.Far != DefaultFar {
		t.Errorf("frustum = %v/%v/%v, want %v/%v/%v", c.FOV, c.Near, c.Far, DefaultFOV, DefaultNear, DefaultFar)
	}
	if gomath.Abs(float64(c.Aspect)-800.0/600.0) > 1e-6 {
		t.Errorf("Aspect = %v, want %v", c.Aspect, 800.0/600.0)
	}
}

func TestResizeIgnoresEmpty(t *testing.T) {
	c := NewPerspectiveCamera(800, 600)
	c.Resize(0, 600)
	if gomath.Abs(float64(c.Aspect)-800.0/600.0) > 1e-6 {
		t.Errorf("Aspect changed to %v on empty resize", c.Aspect)
	}
	c.Resize(1000, 500)
	if c.Aspect != 2 {
		t.Errorf("Aspect = %v, want 2", c.Aspect)
	}
}

func project(m math.Mat4, v math.Vec3) (x, y, z float32) {
	cx := m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]
	cy := m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]
	cz := m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]
	cw := m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]
	return cx / cw, cy / cw, cz / cw
}

func TestViewProj(t *testing.T) {
	c := NewPerspectiveCamera(800, 600)
	vp := c.ViewProj()

	// A point straight ahead lands in the centre of the screen.
	x, y, z := project(vp, math.Vec3{X: 0, Y: 100, Z: 0})
	if gomath.Abs(float64(x)) > 1e-5 || gomath.Abs(float64(y)) > 1e-5 {
		t.Errorf("ahead projects to (%v, %v), want centre", x, y)
	}
	if z < -1 || z > 1 {
		t.Errorf("ahead depth %v outside clip range", z)
	}

	// The boat at rest sits below the horizon line.
	_, y, _ = project(vp, math.Vec3{X: 0, Y: 75, Z: 0})
	if y >= 0 {
		t.Errorf("boat projects to y = %v, want below centre", y)
	}

	// Anything behind the camera is outside the depth range.
	_, _, z = project(vp, math.Vec3{X: 0, Y: 100, Z: 400})
	if z >= -1 && z <= 1 {
		t.Errorf("point behind camera has depth %v inside clip range", z)
	}
}

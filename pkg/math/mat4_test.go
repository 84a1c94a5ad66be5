package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	got := Translate(10, 20, 30).TransformVec3(Vec3{1, 2, 3})
	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("Translate: got %v, want %v", got, want)
	}
}

func TestScale(t *testing.T) {
	got := Scale(2, 2, 2).TransformVec3(Vec3{1, 2, 3})
	want := Vec3{2, 4, 6}
	if got != want {
		t.Errorf("Scale: got %v, want %v", got, want)
	}
}

func TestRotateY90(t *testing.T) {
	result := RotateY(float32(math.Pi / 2)).TransformVec3(Vec3{1, 0, 0})

	// (1,0,0) turns into (0,0,-1)
	if !near(result, Vec3{0, 0, -1}) {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", result)
	}
}

func TestRotateZ90(t *testing.T) {
	result := RotateZ(float32(math.Pi / 2)).TransformVec3(Vec3{1, 0, 0})
	if !near(result, Vec3{0, 1, 0}) {
		t.Errorf("RotateZ 90: got %v, want (0, 1, 0)", result)
	}
}

func TestRotateX90(t *testing.T) {
	// The sea cylinder is laid on its side with a -90 degree X rotation.
	result := RotateX(float32(-math.Pi / 2)).TransformVec3(Vec3{0, 1, 0})
	if !near(result, Vec3{0, 0, -1}) {
		t.Errorf("RotateX -90: got %v, want (0, 0, -1)", result)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/4), 1, 0.1, 100)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestLookAt(t *testing.T) {
	eye := Vec3{0, 100, 200}
	m := LookAt(eye, Vec3{0, 100, 0}, Vec3{0, 1, 0})

	// The eye maps to the view-space origin.
	if got := m.TransformVec3(eye); !near(got, Vec3{}) {
		t.Errorf("LookAt(eye) = %v, want origin", got)
	}
	// A point straight ahead lands on -Z.
	if got := m.TransformVec3(Vec3{0, 100, 150}); !near(got, Vec3{0, 0, -50}) {
		t.Errorf("LookAt(ahead) = %v, want (0, 0, -50)", got)
	}
}

func TestCompose(t *testing.T) {
	m := Compose(Vec3{5, 0, 0}, Vec3{0, 0, float32(math.Pi / 2)}, Uniform(2))

	// scale to (2,0,0), rotate to (0,2,0), translate to (5,2,0)
	got := m.TransformVec3(Vec3{1, 0, 0})
	if !near(got, Vec3{5, 2, 0}) {
		t.Errorf("Compose: got %v, want (5, 2, 0)", got)
	}
}

func TestComposeIdentity(t *testing.T) {
	m := Compose(Vec3{}, Vec3{}, Uniform(1))
	if m != Identity() {
		t.Errorf("Compose with no transform should be identity, got %v", m)
	}
}

func near(a, b Vec3) bool {
	return abs(a.X-b.X) < 0.001 && abs(a.Y-b.Y) < 0.001 && abs(a.Z-b.Z) < 0.001
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

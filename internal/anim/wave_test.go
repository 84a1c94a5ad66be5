package anim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Faultbox/seascape/internal/scene"
)

func newTestSea(t *testing.T, opts WaveOptions) (*scene.Node, *WaveField) {
	t.Helper()
	node := scene.NewMeshNode("sea", &scene.Mesh{Geometry: scene.Cylinder(100, 95, 75, 12, 6)})
	return node, NewWaveField(node, rand.New(rand.NewSource(1)), opts)
}

func TestWaveFieldAdvanceUsesAngleBeforeIncrement(t *testing.T) {
	node, field := newTestSea(t, DefaultWaveOptions())
	geom := node.Mesh.Geometry

	before := append([]VertexWave(nil), field.Waves()...)
	field.Advance()

	for i, wv := range field.Waves() {
		b := before[i]
		if wv.Angle != b.Angle+b.Speed {
			t.Fatalf("vertex %d: angle %v, want %v", i, wv.Angle, b.Angle+b.Speed)
		}

		wantX := float64(b.Base.X) + math.Cos(b.Angle)*b.Amplitude
		wantY := float64(b.Base.Y) + math.Sin(b.Angle)*b.Amplitude
		p := geom.Positions[i]
		if math.Abs(float64(p.X)-wantX) > 1e-3 || math.Abs(float64(p.Y)-wantY) > 1e-3 {
			t.Fatalf("vertex %d: position (%v, %v), want (%v, %v)", i, p.X, p.Y, wantX, wantY)
		}
		if p.Z != b.Base.Z {
			t.Fatalf("vertex %d: z moved from %v to %v", i, b.Base.Z, p.Z)
		}
	}
}

func TestWaveFieldMarksDirtyAndSpins(t *testing.T) {
	node, field := newTestSea(t, DefaultWaveOptions())
	node.Mesh.Geometry.ClearDirty()

	field.Advance()
	field.Advance()

	if !node.Mesh.Geometry.Dirty() {
		t.Error("Advance should mark the geometry dirty")
	}
	if math.Abs(float64(node.Rotation.Z)-2*WaveSpin) > 1e-9 {
		t.Errorf("rotation.z = %v, want %v", node.Rotation.Z, 2*WaveSpin)
	}
}

func TestWaveFieldSpinWraps(t *testing.T) {
	node, field := newTestSea(t, DefaultWaveOptions())
	node.Rotation.Z = 500

	field.Advance()

	if z := node.Rotation.Z; z < -math.Pi || z > math.Pi {
		t.Errorf("rotation.z = %v, want it wrapped into [-pi, pi]", z)
	}
}

func TestWaveFieldFixedSpeed(t *testing.T) {
	_, field := newTestSea(t, DefaultWaveOptions())

	for i, wv := range field.Waves() {
		if wv.Speed != DefaultWaveSpeed {
			t.Fatalf("vertex %d: speed %v, want %v", i, wv.Speed, DefaultWaveSpeed)
		}
		if wv.Amplitude < 0 || wv.Amplitude >= DefaultMaxAmplitude {
			t.Fatalf("vertex %d: amplitude %v out of [0, %v)", i, wv.Amplitude, DefaultMaxAmplitude)
		}
		if wv.Angle < 0 || wv.Angle >= 2*math.Pi {
			t.Fatalf("vertex %d: angle %v out of [0, 2pi)", i, wv.Angle)
		}
	}
}

func TestWaveFieldRandomSpeed(t *testing.T) {
	opts := DefaultWaveOptions()
	opts.RandomSpeed = true
	_, field := newTestSea(t, opts)

	distinct := make(map[float64]bool)
	for i, wv := range field.Waves() {
		if wv.Speed < DefaultMinSpeed || wv.Speed >= DefaultMaxSpeed {
			t.Fatalf("vertex %d: speed %v out of [%v, %v)", i, wv.Speed, DefaultMinSpeed, DefaultMaxSpeed)
		}
		distinct[wv.Speed] = true
	}
	if len(distinct) < 2 {
		t.Error("random speeds should differ between vertices")
	}
}

func TestWaveFieldIsPeriodic(t *testing.T) {
	opts := DefaultWaveOptions()
	opts.Speed = math.Pi / 2
	node, field := newTestSea(t, opts)
	geom := node.Mesh.Geometry

	field.Advance()
	first := append(geom.Positions[:0:0], geom.Positions...)
	for i := 0; i < 4; i++ {
		field.Advance()
	}

	// Four quarter turns bring every vertex back to where it was.
	for i := range first {
		d := first[i].Sub(geom.Positions[i]).Length()
		if d > 1e-3 {
			t.Fatalf("vertex %d drifted by %v after a full period", i, d)
		}
	}
}

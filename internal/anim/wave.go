package anim

import (
	"math"
	"math/rand"

	"github.com/Faultbox/seascape/internal/scene"
	vmath "github.com/Faultbox/seascape/pkg/math"
)

// Wave field defaults.
const (
	DefaultWaveSpeed    = 0.001 // radians per frame, shared by every vertex
	DefaultMaxAmplitude = 3.0
	DefaultMinSpeed     = 0.016
	DefaultMaxSpeed     = 0.048

	// WaveSpin is the extra Z rotation the sea node gets per Advance.
	WaveSpin = 0.0001
)

// VertexWave is the animation state of one vertex.
type VertexWave struct {
	Base      vmath.Vec3
	Angle     float64
	Amplitude float64
	Speed     float64
}

// WaveOptions controls how per-vertex state is generated.
type WaveOptions struct {
	MaxAmplitude float64
	Speed        float64

	// RandomSpeed draws each vertex speed from [MinSpeed, MaxSpeed)
	// instead of using Speed for all of them.
	RandomSpeed bool
	MinSpeed    float64
	MaxSpeed    float64
}

// DefaultWaveOptions returns the fixed-speed reference settings.
func DefaultWaveOptions() WaveOptions {
	return WaveOptions{
		MaxAmplitude: DefaultMaxAmplitude,
		Speed:        DefaultWaveSpeed,
		MinSpeed:     DefaultMinSpeed,
		MaxSpeed:     DefaultMaxSpeed,
	}
}

// WaveField ripples every vertex of a mesh around its rest position.
type WaveField struct {
	geom  *scene.Geometry
	node  *scene.Node
	waves []VertexWave
}

// NewWaveField captures the current positions of node's geometry as rest
// positions and assigns each vertex a random phase and amplitude.
func NewWaveField(node *scene.Node, rng *rand.Rand, opts WaveOptions) *WaveField {
	geom := node.Mesh.Geometry
	waves := make([]VertexWave, len(geom.Positions))
	for i, p := range geom.Positions {
		speed := opts.Speed
		if opts.RandomSpeed {
			speed = opts.MinSpeed + rng.Float64()*(opts.MaxSpeed-opts.MinSpeed)
		}
		waves[i] = VertexWave{
			Base:      p,
			Angle:     rng.Float64() * math.Pi * 2,
			Amplitude: rng.Float64() * opts.MaxAmplitude,
			Speed:     speed,
		}
	}
	return &WaveField{geom: geom, node: node, waves: waves}
}

// Waves exposes the per-vertex state.
func (w *WaveField) Waves() []VertexWave {
	return w.waves
}

// Advance displaces every vertex by its current angle, then moves each
// angle on by its speed. Positions are therefore one step behind the
// stored angles.
func (w *WaveField) Advance() {
	positions := w.geom.Positions
	for i := range w.waves {
		wv := &w.waves[i]
		s, c := math.Sincos(wv.Angle)
		positions[i] = vmath.Vec3{
			X: wv.Base.X + float32(c*wv.Amplitude),
			Y: wv.Base.Y + float32(s*wv.Amplitude),
			Z: wv.Base.Z,
		}
		wv.Angle += wv.Speed
	}
	w.geom.MarkDirty()
	w.node.Rotation.Z = Spin(w.node.Rotation.Z, WaveSpin)
}

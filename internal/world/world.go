// Package world builds the static scene assets: the boat, the sea and the
// cloud-ring sky. Everything here runs once at startup; the animation
// core only moves what these builders return.
package world

import (
	gomath "math"
	"math/rand"

	"github.com/Faultbox/seascape/internal/anim"
	"github.com/Faultbox/seascape/internal/scene"
	"github.com/Faultbox/seascape/pkg/math"
)

// Node names used in the scene tree.
const (
	RootName = "scene"
	BoatName = "boat"
	SeaName  = "sea"
	SkyName  = "sky"
)

// Placement of the scene assets.
const (
	BoatScale   = 0.25
	BoatRestY   = 75
	SeaY        = -900
	SkyY        = -450
	CloudCount  = 10
	CloudRadius = 750 // clouds sit CloudRadius..CloudRadius+200 from the sky axis
)

// SeaOptions sizes the sea cylinder and its wave field.
type SeaOptions struct {
	RadialSegments int
	HeightSegments int
	Waves          anim.WaveOptions
}

// DefaultSeaOptions returns the full-resolution sea.
func DefaultSeaOptions() SeaOptions {
	return SeaOptions{
		RadialSegments: 300,
		HeightSegments: 300,
		Waves:          anim.DefaultWaveOptions(),
	}
}

// World is the assembled scene with handles to the animated nodes.
type World struct {
	Root  *scene.Node
	Boat  *scene.Node
	Sea   *scene.Node
	Sky   *scene.Node
	Waves *anim.WaveField
}

// Build assembles the full scene. rng drives every random choice, so a
// fixed seed reproduces the same sea and sky.
func Build(rng *rand.Rand, sea SeaOptions) *World {
	w := &World{
		Root: scene.NewNode(RootName),
		Boat: NewBoat(),
		Sky:  NewSky(rng),
	}
	w.Sea, w.Waves = NewSea(rng, sea)
	w.Root.Add(w.Boat, w.Sea, w.Sky)
	return w
}

// NewBoat builds the boat: hull, raised stern and bow, and a mast.
func NewBoat() *scene.Node {
	hullMat := scene.Material{Color: scene.Red, Opacity: 1}
	mastMat := scene.Material{Color: scene.BrownDark, Opacity: 1}

	hull := scene.NewMeshNode("hull", &scene.Mesh{Geometry: scene.Box(80, 40, 50), Material: hullMat})

	stern := scene.NewMeshNode("stern", &scene.Mesh{Geometry: scene.Box(80, 40, 50), Material: hullMat})
	stern.Position = math.Vec3{X: -30, Y: 30, Z: 0}

	bow := scene.NewMeshNode("bow", &scene.Mesh{Geometry: scene.Box(80, 40, 50), Material: hullMat})
	bow.Position = math.Vec3{X: 30, Y: 40, Z: 0}

	mast := scene.NewMeshNode("mast", &scene.Mesh{Geometry: scene.Box(10, 100, 10), Material: mastMat})
	mast.Position = math.Vec3{X: 5, Y: 100, Z: 0}

	boat := scene.NewNode(BoatName)
	boat.Add(hull, stern, bow, mast)
	boat.Scale = math.Uniform(BoatScale)
	boat.Position.Y = BoatRestY
	return boat
}

// NewSea builds the sea: a wide cylinder laid along the Z axis so its side
// forms the horizon, with a wave field over every vertex.
func NewSea(rng *rand.Rand, opts SeaOptions) (*scene.Node, *anim.WaveField) {
	geom := scene.Cylinder(1000, 950, 750, opts.RadialSegments, opts.HeightSegments)
	geom.ApplyMatrix(math.RotateX(-gomath.Pi / 2))

	sea := scene.NewMeshNode(SeaName, &scene.Mesh{
		Geometry: geom,
		Material: scene.Material{Color: scene.Blue, Opacity: 0.9, Transparent: true},
	})
	sea.Position.Y = SeaY

	return sea, anim.NewWaveField(sea, rng, opts.Waves)
}

// NewCloud builds one cloud from three to five randomly turned cubes.
func NewCloud(rng *rand.Rand) *scene.Node {
	cloud := scene.NewNode("cloud")
	cube := scene.Box(20, 20, 20)
	mat := scene.Material{Color: scene.White, Opacity: 1}

	blocks := 3 + rng.Intn(3)
	for i := 0; i < blocks; i++ {
		m := scene.NewMeshNode("block", &scene.Mesh{Geometry: cube, Material: mat})
		m.Position = math.Vec3{
			X: float32(i) * 15,
			Y: rng.Float32() * 10,
			Z: rng.Float32() * 10,
		}
		m.Rotation.Z = rng.Float32() * gomath.Pi * 2
		m.Rotation.Y = rng.Float32() * gomath.Pi * 2
		m.Scale = math.Uniform(0.1 + rng.Float32()*0.9)
		cloud.Add(m)
	}
	return cloud
}

// NewSky spreads CloudCount clouds evenly around the Z axis at random
// heights and depths.
func NewSky(rng *rand.Rand) *scene.Node {
	sky := scene.NewNode(SkyName)
	step := gomath.Pi * 2 / CloudCount

	for i := 0; i < CloudCount; i++ {
		c := NewCloud(rng)
		a := step * float64(i)
		h := CloudRadius + rng.Float64()*200

		c.Position = math.Vec3{
			X: float32(gomath.Cos(a) * h),
			Y: float32(gomath.Sin(a) * h),
			Z: -400 - rng.Float32()*400,
		}
		c.Rotation.Z = float32(a + gomath.Pi/2)
		c.Scale = math.Uniform(5 + rng.Float32()*2)
		sky.Add(c)
	}

	sky.Position.Y = SkyY
	return sky
}

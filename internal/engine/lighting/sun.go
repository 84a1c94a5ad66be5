// Package lighting describes the scene's light rig.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/seascape/internal/scene"
	"github.com/Faultbox/seascape/pkg/math"
)

// Hemisphere is a gradient ambient light: surfaces facing up take Sky,
// surfaces facing down take Ground.
type Hemisphere struct {
	Sky       scene.Color
	Ground    scene.Color
	Intensity float32
}

// Directional is a light infinitely far away shining from Position toward
// the origin.
type Directional struct {
	Color     scene.Color
	Intensity float32
	Position  math.Vec3
}

// Direction returns the unit vector pointing from the origin toward the light.
func (d Directional) Direction() math.Vec3 {
	return d.Position.Normalize()
}

// Rig is every light in the scene.
type Rig struct {
	Hemisphere Hemisphere
	Sun        Directional
}

// Default returns the soft ambient plus high sun the scene is lit with.
func Default() Rig {
	return Rig{
		Hemisphere: Hemisphere{
			Sky:       scene.Hex(0xaaaaaa),
			Ground:    scene.Hex(0x000000),
			Intensity: 0.9,
		},
		Sun: Directional{
			Color:     scene.Hex(0xffffff),
			Intensity: 0.9,
			Position:  math.Vec3{X: 150, Y: 350, Z: 350},
		},
	}
}

// SunPosition places a light at distance from the origin given a compass
// longitude (around Y) and an elevation above the horizon, both in degrees.
func SunPosition(longitude, latitude, distance float64) math.Vec3 {
	lonRad := longitude * gomath.Pi / 180.0
	latRad := latitude * gomath.Pi / 180.0

	return math.Vec3{
		X: float32(distance * gomath.Cos(latRad) * gomath.Sin(lonRad)),
		Y: float32(distance * gomath.Sin(latRad)),
		Z: float32(distance * gomath.Cos(latRad) * gomath.Cos(lonRad)),
	}
}

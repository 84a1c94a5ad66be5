package scene

import (
	gomath "math"

	"github.com/Faultbox/seascape/pkg/math"
)

// Box builds an axis-aligned box centred on the origin.
func Box(width, height, depth float32) *Geometry {
	x, y, z := width/2, height/2, depth/2

	positions := []math.Vec3{
		{X: -x, Y: -y, Z: z},  // 0 front
		{X: x, Y: -y, Z: z},   // 1
		{X: x, Y: y, Z: z},    // 2
		{X: -x, Y: y, Z: z},   // 3
		{X: -x, Y: -y, Z: -z}, // 4 back
		{X: x, Y: -y, Z: -z},  // 5
		{X: x, Y: y, Z: -z},   // 6
		{X: -x, Y: y, Z: -z},  // 7
	}

	indices := []uint32{
		0, 1, 2, 0, 2, 3, // front
		5, 4, 7, 5, 7, 6, // back
		4, 0, 3, 4, 3, 7, // left
		1, 5, 6, 1, 6, 2, // right
		3, 2, 6, 3, 6, 7, // top
		4, 5, 1, 4, 1, 0, // bottom
	}

	return &Geometry{Positions: positions, Indices: indices}
}

// Cylinder builds a capped cylinder along the Y axis, centred on the origin.
// The seam column is shared rather than duplicated, so per-vertex
// displacement stays continuous all the way round.
func Cylinder(radiusTop, radiusBottom, height float32, radialSegments, heightSegments int) *Geometry {
	if radialSegments < 3 {
		radialSegments = 3
	}
	if heightSegments < 1 {
		heightSegments = 1
	}

	half := height / 2
	ring := radialSegments
	positions := make([]math.Vec3, 0, (heightSegments+1)*ring+2)

	for y := 0; y <= heightSegments; y++ {
		v := float32(y) / float32(heightSegments)
		radius := v*(radiusBottom-radiusTop) + radiusTop
		for x := 0; x < ring; x++ {
			theta := float64(x) / float64(ring) * 2 * gomath.Pi
			positions = append(positions, math.Vec3{
				X: radius * float32(gomath.Sin(theta)),
				Y: -v*height + half,
				Z: radius * float32(gomath.Cos(theta)),
			})
		}
	}

	index := func(x, y int) uint32 {
		return uint32(y*ring + x%ring)
	}

	indices := make([]uint32, 0, heightSegments*ring*6+ring*6)
	for y := 0; y < heightSegments; y++ {
		for x := 0; x < ring; x++ {
			a := index(x, y)
			b := index(x, y+1)
			c := index(x+1, y+1)
			d := index(x+1, y)
			indices = append(indices, a, b, d, b, c, d)
		}
	}

	// Caps reuse the outermost rings.
	top := uint32(len(positions))
	positions = append(positions, math.Vec3{Y: half})
	bottom := uint32(len(positions))
	positions = append(positions, math.Vec3{Y: -half})
	for x := 0; x < ring; x++ {
		indices = append(indices, index(x, 0), index(x+1, 0), top)
		indices = append(indices, index(x+1, heightSegments), index(x, heightSegments), bottom)
	}

	return &Geometry{Positions: positions, Indices: indices}
}

package debug

import (
	"github.com/Faultbox/seascape/internal/scene"
	"github.com/Faultbox/seascape/pkg/math"
)

// BBoxWireframeVertexCount is the number of vertices for a bbox wireframe (12 edges × 2).
const BBoxWireframeVertexCount = 24

// DefaultBBoxPadding is the default padding around overlay boxes.
const DefaultBBoxPadding = 1.0

// GenerateBBoxWireframeVertices creates line vertices for a wireframe box.
// Returns 24 vertices (12 edges × 2 endpoints), format: [x, y, z] per vertex.
func GenerateBBoxWireframeVertices(minX, minY, minZ, maxX, maxY, maxZ float32) []float32 {
	return []float32{
		// Bottom face
		minX, minY, minZ, maxX, minY, minZ,
		maxX, minY, minZ, maxX, minY, maxZ,
		maxX, minY, maxZ, minX, minY, maxZ,
		minX, minY, maxZ, minX, minY, minZ,
		// Top face
		minX, maxY, minZ, maxX, maxY, minZ,
		maxX, maxY, minZ, maxX, maxY, maxZ,
		maxX, maxY, maxZ, minX, maxY, maxZ,
		minX, maxY, maxZ, minX, maxY, minZ,
		// Verticals
		minX, minY, minZ, minX, maxY, minZ,
		maxX, minY, minZ, maxX, maxY, minZ,
		maxX, minY, maxZ, maxX, maxY, maxZ,
		minX, minY, maxZ, minX, maxY, maxZ,
	}
}

// NodeBounds returns the world-space box around every mesh under root.
// ok is false when root holds no vertices.
func NodeBounds(root *scene.Node) (b scene.Bounds, ok bool) {
	root.Walk(func(n *scene.Node, world math.Mat4) {
		if n.Mesh == nil || n.Mesh.Geometry == nil {
			return
		}
		for _, p := range n.Mesh.Geometry.Positions {
			w := world.TransformVec3(p)
			if !ok {
				b = scene.Bounds{Min: w, Max: w}
				ok = true
				continue
			}
			b = b.Extend(w)
		}
	})
	return b, ok
}

// BoundsWireframe returns the wireframe of b grown by padding on all sides.
func BoundsWireframe(b scene.Bounds, padding float32) []float32 {
	return GenerateBBoxWireframeVertices(
		b.Min.X-padding, b.Min.Y-padding, b.Min.Z-padding,
		b.Max.X+padding, b.Max.Y+padding, b.Max.Z+padding,
	)
}

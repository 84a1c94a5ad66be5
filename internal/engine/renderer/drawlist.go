package renderer

import (
	"cmp"
	"slices"

	"github.com/Faultbox/seascape/internal/scene"
	"github.com/Faultbox/seascape/pkg/math"
)

// drawItem is one mesh instance ready to draw.
type drawItem struct {
	mesh  *scene.Mesh
	model math.Mat4
	depth float32 // distance along the view direction
}

// collectDrawItems walks root and splits its meshes into opaque and
// transparent lists, reusing the given slices. Transparent items come back
// sorted far to near so blending composites correctly.
func collectDrawItems(root *scene.Node, view math.Mat4, opaque, transparent []drawItem) ([]drawItem, []drawItem) {
	opaque = opaque[:0]
	transparent = transparent[:0]

	root.Walk(func(n *scene.Node, world math.Mat4) {
		if n.Mesh == nil || n.Mesh.Geometry == nil || len(n.Mesh.Geometry.Indices) == 0 {
			return
		}
		item := drawItem{mesh: n.Mesh, model: world}
		if n.Mesh.Material.Transparent {
			origin := view.Mul(world).TransformVec3(math.Vec3{})
			item.depth = -origin.Z
			transparent = append(transparent, item)
			return
		}
		opaque = append(opaque, item)
	})

	slices.SortStableFunc(transparent, func(a, b drawItem) int {
		return cmp.Compare(b.depth, a.depth)
	})
	return opaque, transparent
}

package renderer

import (
	"testing"

	"github.com/Faultbox/seascape/internal/scene"
	"github.com/Faultbox/seascape/pkg/math"
)

func TestCollectDrawItems(t *testing.T) {
	solid := scene.Material{Color: scene.Red, Opacity: 1}
	glass := scene.Material{Color: scene.Blue, Opacity: 0.5, Transparent: true}
	cube := scene.Box(1, 1, 1)

	root := scene.NewNode("root")
	near := scene.NewMeshNode("near", &scene.Mesh{Geometry: cube, Material: glass})
	near.Position = math.Vec3{Z: -10}
	far := scene.NewMeshNode("far", &scene.Mesh{Geometry: cube, Material: glass})
	far.Position = math.Vec3{Z: -100}
	a := scene.NewMeshNode("a", &scene.Mesh{Geometry: cube, Material: solid})
	b := scene.NewMeshNode("b", &scene.Mesh{Geometry: cube, Material: solid})
	empty := scene.NewMeshNode("empty", &scene.Mesh{Geometry: &scene.Geometry{}, Material: solid})
	root.Add(near, a, far, b, empty, scene.NewNode("group"))

	// Camera at origin looking down -Z.
	view := math.LookAt(math.Vec3{}, math.Vec3{Z: -1}, math.Vec3{Y: 1})
	opaque, transparent := collectDrawItems(root, view, nil, nil)

	if len(opaque) != 2 {
		t.Fatalf("opaque = %d items, want 2", len(opaque))
	}
	if opaque[0].mesh != a.Mesh || opaque[1].mesh != b.Mesh {
		t.Error("opaque items should keep tree order")
	}

	if len(transparent) != 2 {
		t.Fatalf("transparent = %d items, want 2", len(transparent))
	}
	if transparent[0].mesh != far.Mesh || transparent[1].mesh != near.Mesh {
		t.Error("transparent items should be sorted far to near")
	}
	if transparent[0].depth <= transparent[1].depth {
		t.Errorf("depths %v, %v not descending", transparent[0].depth, transparent[1].depth)
	}
}

func TestCollectDrawItemsReusesSlices(t *testing.T) {
	root := scene.NewMeshNode("box", &scene.Mesh{Geometry: scene.Box(1, 1, 1), Material: scene.Material{Opacity: 1}})
	view := math.Identity()

	opaque := make([]drawItem, 0, 8)
	opaque, _ = collectDrawItems(root, view, opaque, nil)
	again, _ := collectDrawItems(root, view, opaque, nil)
	if len(again) != 1 {
		t.Fatalf("second collect = %d items, want 1", len(again))
	}
	if &again[0] != &opaque[0] {
		t.Error("collect should reuse the provided backing array")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig(800, 600)
	if !cfg.Fog.Enabled || cfg.Fog.Near != 100 || cfg.Fog.Far != 950 {
		t.Errorf("fog = %+v, want enabled 100..950", cfg.Fog)
	}
	if cfg.Fog.Color != scene.White {
		t.Errorf("fog color = %v, want the palette white %v", cfg.Fog.Color, scene.White)
	}
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("size = %dx%d, want 800x600", cfg.Width, cfg.Height)
	}
}

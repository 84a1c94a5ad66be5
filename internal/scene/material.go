package scene

// Color is a linear RGB triple in the 0..1 range.
type Color [3]float32

// Hex converts a 0xRRGGBB value to a Color.
func Hex(rgb uint32) Color {
	return Color{
		float32(rgb>>16&0xff) / 255,
		float32(rgb>>8&0xff) / 255,
		float32(rgb&0xff) / 255,
	}
}

// Palette colors of the scene.
var (
	Red       = Hex(0xf25346)
	White     = Hex(0xd8d0d1)
	BrownDark = Hex(0x23190f)
	Blue      = Hex(0x68c3c0)
)

// Material describes how a mesh is shaded.
type Material struct {
	Color       Color
	Opacity     float32
	Transparent bool
}

// Mesh pairs geometry with a material. Several meshes may share one geometry.
type Mesh struct {
	Geometry *Geometry
	Material Material
}

package scene

import (
	"github.com/Faultbox/seascape/pkg/math"
)

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Extend grows b to contain p.
func (b Bounds) Extend(p math.Vec3) Bounds {
	b.Min.X = min(b.Min.X, p.X)
	b.Min.Y = min(b.Min.Y, p.Y)
	b.Min.Z = min(b.Min.Z, p.Z)
	b.Max.X = max(b.Max.X, p.X)
	b.Max.Y = max(b.Max.Y, p.Y)
	b.Max.Z = max(b.Max.Z, p.Z)
	return b
}

// Geometry is an indexed triangle list. Positions may be rewritten every
// frame; whoever does so must call MarkDirty so the renderer re-uploads
// them, since GPU copies are cached.
type Geometry struct {
	Positions []math.Vec3
	Indices   []uint32

	dirty bool
}

// MarkDirty flags the positions as changed since the last upload.
func (g *Geometry) MarkDirty() {
	g.dirty = true
}

// Dirty reports whether positions changed since the last upload.
func (g *Geometry) Dirty() bool {
	return g.dirty
}

// ClearDirty is called by the renderer after uploading positions.
func (g *Geometry) ClearDirty() {
	g.dirty = false
}

// VertexCount returns the number of vertices.
func (g *Geometry) VertexCount() int {
	return len(g.Positions)
}

// ApplyMatrix transforms every position in place.
func (g *Geometry) ApplyMatrix(m math.Mat4) {
	for i, p := range g.Positions {
		g.Positions[i] = m.TransformVec3(p)
	}
	g.dirty = true
}

// Flatten copies positions into an interleaved x,y,z slice for GPU upload.
// dst is reused when it has enough capacity.
func (g *Geometry) Flatten(dst []float32) []float32 {
	dst = dst[:0]
	for _, p := range g.Positions {
		dst = append(dst, p.X, p.Y, p.Z)
	}
	return dst
}

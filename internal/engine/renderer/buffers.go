package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/seascape/internal/scene"
)

// gpuGeometry holds the GL objects for one scene.Geometry.
type gpuGeometry struct {
	vao, vbo, ebo uint32
	indexCount    int32
	vertexCount   int
}

// newGPUGeometry uploads g. scratch is reused for flattening and returned.
func newGPUGeometry(g *scene.Geometry, scratch []float32) (*gpuGeometry, []float32) {
	b := &gpuGeometry{
		indexCount:  int32(len(g.Indices)),
		vertexCount: g.VertexCount(),
	}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	scratch = g.Flatten(scratch)
	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(scratch)*4, gl.Ptr(scratch), gl.DYNAMIC_DRAW)

	gl.GenBuffers(1, &b.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Indices)*4, gl.Ptr(g.Indices), gl.STATIC_DRAW)

	// Position (location = 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
	g.ClearDirty()
	return b, scratch
}

// updatePositions re-uploads the vertex positions of g.
func (b *gpuGeometry) updatePositions(g *scene.Geometry, scratch []float32) []float32 {
	scratch = g.Flatten(scratch)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	if g.VertexCount() == b.vertexCount {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(scratch)*4, gl.Ptr(scratch))
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, len(scratch)*4, gl.Ptr(scratch), gl.DYNAMIC_DRAW)
		b.vertexCount = g.VertexCount()
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	g.ClearDirty()
	return scratch
}

func (b *gpuGeometry) draw() {
	gl.BindVertexArray(b.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, b.indexCount, gl.UNSIGNED_INT, 0)
}

func (b *gpuGeometry) delete() {
	gl.DeleteVertexArrays(1, &b.vao)
	gl.DeleteBuffers(1, &b.vbo)
	gl.DeleteBuffers(1, &b.ebo)
}

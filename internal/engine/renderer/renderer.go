// Package renderer draws the scene graph with OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/seascape/internal/engine/camera"
	"github.com/Faultbox/seascape/internal/engine/lighting"
	"github.com/Faultbox/seascape/internal/engine/shader"
	"github.com/Faultbox/seascape/internal/logger"
	"github.com/Faultbox/seascape/internal/scene"
	"github.com/Faultbox/seascape/pkg/math"
)

// Fog is linear distance fog blended toward Color between Near and Far.
type Fog struct {
	Enabled bool
	Color   scene.Color
	Near    float32
	Far     float32
}

// Config holds renderer configuration.
type Config struct {
	Width    int
	Height   int
	Fog      Fog
	Lighting lighting.Rig

	// Vertical background gradient.
	BackgroundTop    scene.Color
	BackgroundBottom scene.Color
}

// DefaultFog returns white fog from 100 to 950 units.
func DefaultFog() Fog {
	return Fog{Enabled: true, Color: scene.White, Near: 100, Far: 950}
}

// DefaultConfig returns the renderer setup for a viewport of the given size.
func DefaultConfig(width, height int) Config {
	return Config{
		Width:            width,
		Height:           height,
		Fog:              DefaultFog(),
		Lighting:         lighting.Default(),
		BackgroundTop:    scene.Hex(0xe4e0ba),
		BackgroundBottom: scene.Hex(0xf7d9aa),
	}
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	scene      *shader.Program
	background *shader.Program
	lines      *shader.Program

	backgroundVAO uint32
	lineVAO       uint32
	lineVBO       uint32

	// GPU copies keyed by geometry, so shared geometry uploads once.
	geometries map[*scene.Geometry]*gpuGeometry

	opaque      []drawItem
	transparent []drawItem
	scratch     []float32
}

// New creates a renderer. It must be called after the OpenGL context exists.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:     cfg,
		geometries: make(map[*scene.Geometry]*gpuGeometry),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	var err error
	if r.scene, err = shader.New(sceneVertexShader, sceneFragmentShader); err != nil {
		return nil, fmt.Errorf("scene program: %w", err)
	}
	if r.background, err = shader.New(backgroundVertexShader, backgroundFragmentShader); err != nil {
		r.Close()
		return nil, fmt.Errorf("background program: %w", err)
	}
	if r.lines, err = shader.New(lineVertexShader, lineFragmentShader); err != nil {
		r.Close()
		return nil, fmt.Errorf("line program: %w", err)
	}

	// Core profile needs a bound VAO even for attribute-less draws.
	gl.GenVertexArrays(1, &r.backgroundVAO)

	gl.GenVertexArrays(1, &r.lineVAO)
	gl.BindVertexArray(r.lineVAO)
	gl.GenBuffers(1, &r.lineVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.MULTISAMPLE)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Close releases all GPU resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer", zap.Int("geometries", len(r.geometries)))
	for g, b := range r.geometries {
		b.delete()
		delete(r.geometries, g)
	}
	if r.backgroundVAO != 0 {
		gl.DeleteVertexArrays(1, &r.backgroundVAO)
	}
	if r.lineVAO != 0 {
		gl.DeleteVertexArrays(1, &r.lineVAO)
		gl.DeleteBuffers(1, &r.lineVBO)
	}
	for _, p := range []*shader.Program{r.scene, r.background, r.lines} {
		if p != nil {
			p.Delete()
		}
	}
}

// Resize handles a framebuffer size change.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// SetFog replaces the fog settings.
func (r *Renderer) SetFog(f Fog) {
	r.config.Fog = f
}

// Render draws the tree under root as seen by cam. Geometry marked dirty
// since the last frame is re-uploaded first.
func (r *Renderer) Render(root *scene.Node, cam *camera.PerspectiveCamera) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.drawBackground()

	view := cam.ViewMatrix()
	viewProj := cam.ProjectionMatrix().Mul(view)
	r.opaque, r.transparent = collectDrawItems(root, view, r.opaque, r.transparent)

	r.scene.Use()
	r.setFrameUniforms(view, viewProj)

	gl.Disable(gl.BLEND)
	gl.DepthMask(true)
	for i := range r.opaque {
		r.drawItem(&r.opaque[i])
	}

	if len(r.transparent) > 0 {
		gl.Enable(gl.BLEND)
		gl.DepthMask(false)
		for i := range r.transparent {
			r.drawItem(&r.transparent[i])
		}
		gl.DepthMask(true)
		gl.Disable(gl.BLEND)
	}

	gl.BindVertexArray(0)
}

// DrawLines draws debug line segments (pairs of xyz vertices) on top of
// the last rendered frame.
func (r *Renderer) DrawLines(vertices []float32, color scene.Color, cam *camera.PerspectiveCamera) {
	if len(vertices) < 6 {
		return
	}
	viewProj := cam.ViewProj()

	r.lines.Use()
	gl.UniformMatrix4fv(r.lines.Uniform("uViewProj"), 1, false, viewProj.Ptr())
	gl.Uniform3f(r.lines.Uniform("uColor"), color[0], color[1], color[2])

	gl.BindVertexArray(r.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STREAM_DRAW)
	gl.DrawArrays(gl.LINES, 0, int32(len(vertices)/3))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// ReadPixels returns the current framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

func (r *Renderer) drawBackground() {
	gl.Disable(gl.DEPTH_TEST)
	gl.DepthMask(false)

	r.background.Use()
	top, bottom := r.config.BackgroundTop, r.config.BackgroundBottom
	gl.Uniform3f(r.background.Uniform("uTop"), top[0], top[1], top[2])
	gl.Uniform3f(r.background.Uniform("uBottom"), bottom[0], bottom[1], bottom[2])
	gl.BindVertexArray(r.backgroundVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)

	gl.DepthMask(true)
	gl.Enable(gl.DEPTH_TEST)
}

func (r *Renderer) setFrameUniforms(view, viewProj math.Mat4) {
	p := r.scene
	gl.UniformMatrix4fv(p.Uniform("uView"), 1, false, view.Ptr())
	gl.UniformMatrix4fv(p.Uniform("uViewProj"), 1, false, viewProj.Ptr())

	hemi, sun := r.config.Lighting.Hemisphere, r.config.Lighting.Sun
	dir := sun.Direction()
	gl.Uniform3f(p.Uniform("uSkyColor"), hemi.Sky[0], hemi.Sky[1], hemi.Sky[2])
	gl.Uniform3f(p.Uniform("uGroundColor"), hemi.Ground[0], hemi.Ground[1], hemi.Ground[2])
	gl.Uniform1f(p.Uniform("uHemiIntensity"), hemi.Intensity)
	gl.Uniform3f(p.Uniform("uLightDir"), dir.X, dir.Y, dir.Z)
	gl.Uniform3f(p.Uniform("uLightColor"), sun.Color[0], sun.Color[1], sun.Color[2])
	gl.Uniform1f(p.Uniform("uLightIntensity"), sun.Intensity)

	f := r.config.Fog
	var enabled int32
	if f.Enabled {
		enabled = 1
	}
	gl.Uniform1i(p.Uniform("uFogEnabled"), enabled)
	gl.Uniform3f(p.Uniform("uFogColor"), f.Color[0], f.Color[1], f.Color[2])
	gl.Uniform1f(p.Uniform("uFogNear"), f.Near)
	gl.Uniform1f(p.Uniform("uFogFar"), f.Far)
}

func (r *Renderer) drawItem(item *drawItem) {
	g := item.mesh.Geometry
	b, ok := r.geometries[g]
	if !ok {
		b, r.scratch = newGPUGeometry(g, r.scratch)
		r.geometries[g] = b
	} else if g.Dirty() {
		r.scratch = b.updatePositions(g, r.scratch)
	}

	m := item.mesh.Material
	gl.UniformMatrix4fv(r.scene.Uniform("uModel"), 1, false, item.model.Ptr())
	gl.Uniform3f(r.scene.Uniform("uColor"), m.Color[0], m.Color[1], m.Color[2])
	gl.Uniform1f(r.scene.Uniform("uOpacity"), m.Opacity)
	b.draw()
}

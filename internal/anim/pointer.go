package anim

// Pointer tracks the most recent pointer position, normalized to [-1, 1]
// on both axes against the current viewport. Each Move replaces the
// previous value outright.
//
// A Pointer is owned by the loop goroutine and is not safe for concurrent use.
type Pointer struct {
	x, y          float64
	width, height float64
	invertY       bool
}

// NewPointer returns a tracker centred at (0, 0). With invertY set,
// screen-down maps to -1 instead of +1.
func NewPointer(invertY bool) *Pointer {
	return &Pointer{invertY: invertY}
}

// SetViewport records the viewport extent in pixels.
func (p *Pointer) SetViewport(width, height int) {
	p.width = float64(width)
	p.height = float64(height)
}

// Viewport returns the stored viewport extent.
func (p *Pointer) Viewport() (width, height int) {
	return int(p.width), int(p.height)
}

// Move records a pointer position in screen pixels. It is ignored until a
// non-empty viewport is known, leaving the previous target in place.
func (p *Pointer) Move(screenX, screenY float64) {
	if p.width <= 0 || p.height <= 0 {
		return
	}
	p.x = -1 + screenX/p.width*2
	p.y = -1 + screenY/p.height*2
	if p.invertY {
		p.y = -p.y
	}
}

// Set overwrites the normalized target directly.
func (p *Pointer) Set(x, y float64) {
	p.x, p.y = x, y
}

// Target returns the normalized pointer position.
func (p *Pointer) Target() (x, y float64) {
	return p.x, p.y
}

// SetInvertY changes the Y mapping for subsequent moves.
func (p *Pointer) SetInvertY(invert bool) {
	p.invertY = invert
}

package anim

import "testing"

func TestPointerCorners(t *testing.T) {
	tests := []struct {
		name         string
		invertY      bool
		sx, sy       float64
		wantX, wantY float64
	}{
		{"top-left", false, 0, 0, -1, -1},
		{"bottom-right", false, 800, 600, 1, 1},
		{"centre", false, 400, 300, 0, 0},
		{"top-left inverted", true, 0, 0, -1, 1},
		{"bottom-right inverted", true, 800, 600, 1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPointer(tt.invertY)
			p.SetViewport(800, 600)
			p.Move(tt.sx, tt.sy)

			x, y := p.Target()
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Move(%v, %v) -> (%v, %v), want (%v, %v)", tt.sx, tt.sy, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestPointerLastWriteWins(t *testing.T) {
	p := NewPointer(false)
	p.SetViewport(100, 100)
	p.Move(0, 0)
	p.Move(75, 25)

	x, y := p.Target()
	if x != 0.5 || y != -0.5 {
		t.Errorf("Target() = (%v, %v), want (0.5, -0.5)", x, y)
	}
}

func TestPointerIgnoresMovesWithoutViewport(t *testing.T) {
	p := NewPointer(false)
	p.Set(0.25, -0.25)
	p.Move(10, 10)

	x, y := p.Target()
	if x != 0.25 || y != -0.25 {
		t.Errorf("Target() = (%v, %v), want stale (0.25, -0.25)", x, y)
	}
}

func TestPointerUsesLatestViewport(t *testing.T) {
	p := NewPointer(false)
	p.SetViewport(800, 600)
	p.SetViewport(400, 300)
	p.Move(400, 300)

	if w, h := p.Viewport(); w != 400 || h != 300 {
		t.Errorf("Viewport() = %dx%d, want 400x300", w, h)
	}
	if x, y := p.Target(); x != 1 || y != 1 {
		t.Errorf("Target() = (%v, %v), want (1, 1)", x, y)
	}
}

package render

import (
	"testing"

	"github.com/taigrr/swell/pkg/math3d"
	"github.com/taigrr/swell/pkg/scene"
)

func TestViewportMapping(t *testing.T) {
	tests := []struct {
		name  string
		vp    Viewport
		in    math3d.Vec2
		wantX float64
		wantY float64
	}{
		{"origin to center", NewViewport(100, 100), math3d.V2(0, 0), 50, 50},
		{"top-left extent", NewViewport(100, 100), math3d.V2(-ViewExtent, -ViewExtent), 0, 0},
		{"bottom-right extent", NewViewport(100, 100), math3d.V2(ViewExtent, ViewExtent), 100, 100},
		// Wide screen scales by the short edge (100/800), stays centered
		{"wide screen short edge", Viewport{Width: 200, Height: 100, Zoom: 1}, math3d.V2(ViewExtent, 0), 150, 50},
		// Doubled zoom doubles the offset from center
		{"zoom", Viewport{Width: 100, Height: 100, Zoom: 2}, math3d.V2(100, 0), 75, 50},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.vp.ToPixel(tc.in)
			if got.X != tc.wantX || got.Y != tc.wantY {
				t.Errorf("ToPixel(%v) = (%v, %v), want (%v, %v)",
					tc.in, got.X, got.Y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestDrawPolygonsFillsMappedQuad(t *testing.T) {
	fb := NewFramebuffer(40, 40)
	fb.Clear(ColorBlack)
	vp := NewViewport(40, 40)

	polys := []scene.Polygon{{
		Points: [4]math3d.Vec2{
			math3d.V2(-200, -200),
			math3d.V2(200, -200),
			math3d.V2(200, 200),
			math3d.V2(-200, 200),
		},
		Color: fillRed,
	}}
	fb.DrawPolygons(vp, polys, StrokeStyle{})

	// Logical +-200 maps to +-10 pixels around center (20,20)
	if got := fb.GetPixel(20, 20); got != fillRed {
		t.Errorf("center pixel = %v, want fill", got)
	}
	if got := fb.GetPixel(5, 5); got != ColorBlack {
		t.Errorf("pixel outside the quad = %v, want background", got)
	}
}

func TestDrawPolygonsOverdrawOrder(t *testing.T) {
	fb := NewFramebuffer(40, 40)
	vp := NewViewport(40, 40)

	full := [4]math3d.Vec2{
		math3d.V2(-300, -300),
		math3d.V2(300, -300),
		math3d.V2(300, 300),
		math3d.V2(-300, 300),
	}
	polys := []scene.Polygon{
		{Points: full, Color: fillRed},
		{Points: full, Color: fillBlue},
	}
	fb.DrawPolygons(vp, polys, StrokeStyle{})

	if got := fb.GetPixel(20, 20); got != fillBlue {
		t.Errorf("center = %v, want the later polygon on top", got)
	}
}

func TestDrawWireframeLeavesInteriorEmpty(t *testing.T) {
	fb := NewFramebuffer(40, 40)
	vp := NewViewport(40, 40)

	polys := []scene.Polygon{{
		Points: [4]math3d.Vec2{
			math3d.V2(-300, -300),
			math3d.V2(300, -300),
			math3d.V2(300, 300),
			math3d.V2(-300, 300),
		},
		Color: fillRed,
	}}
	fb.DrawWireframe(vp, polys, StrokeStyle{Color: ColorWhite, Width: 1, Opacity: 1})

	if got := fb.GetPixel(20, 20); got != (Color{}) {
		t.Errorf("interior pixel = %v, want untouched", got)
	}
	if got := countPixels(fb, ColorWhite); got == 0 {
		t.Error("no outline pixels drawn")
	}
	if got := countPixels(fb, fillRed); got != 0 {
		t.Error("wireframe mode filled the polygon")
	}
}

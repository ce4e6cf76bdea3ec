package render

import (
	"math"

	"github.com/taigrr/swell/pkg/math3d"
	"github.com/taigrr/swell/pkg/scene"
)

// ViewExtent is the half-width of the logical projected viewport; draw-list
// coordinates live in [-ViewExtent, ViewExtent] on both axes.
const ViewExtent = 400.0

// Viewport maps logical draw-list coordinates onto framebuffer pixels: a
// uniform scale fitting the logical square to the short edge, centered, then
// multiplied by the view zoom.
type Viewport struct {
	Width  int
	Height int
	Zoom   float64
}

// NewViewport creates a viewport for a framebuffer of the given size at
// zoom 1.
func NewViewport(width, height int) Viewport {
	return Viewport{Width: width, Height: height, Zoom: 1}
}

// ToPixel maps one logical point to pixel coordinates.
func (vp Viewport) ToPixel(p math3d.Vec2) math3d.Vec2 {
	short := math.Min(float64(vp.Width), float64(vp.Height))
	s := short / (2 * ViewExtent) * vp.Zoom
	return math3d.V2(
		float64(vp.Width)/2+p.X*s,
		float64(vp.Height)/2+p.Y*s,
	)
}

// DrawPolygons fills then strokes every polygon in draw-list order. The
// list is already depth-ordered, so plain overdraw yields the occlusion.
func (fb *Framebuffer) DrawPolygons(vp Viewport, polys []scene.Polygon, stroke StrokeStyle) {
	pts := make([]math3d.Vec2, 4)
	for _, poly := range polys {
		for k, p := range poly.Points {
			pts[k] = vp.ToPixel(p)
		}
		fb.FillPolygon(pts, poly.Color)
		fb.StrokePolygon(pts, stroke)
	}
}

// DrawWireframe strokes polygon outlines only, skipping the fill.
func (fb *Framebuffer) DrawWireframe(vp Viewport, polys []scene.Polygon, stroke StrokeStyle) {
	pts := make([]math3d.Vec2, 4)
	for _, poly := range polys {
		for k, p := range poly.Points {
			pts[k] = vp.ToPixel(p)
		}
		fb.StrokePolygon(pts, stroke)
	}
}

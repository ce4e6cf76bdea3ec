package render

import (
	"image/color"
	"math"

	"github.com/taigrr/swell/pkg/math3d"
)

// StrokeStyle is the global outline style applied uniformly to every
// polygon. Opacity is in [0,1]; stroke pixels blend over the fill.
type StrokeStyle struct {
	Color   color.RGBA
	Width   int
	Opacity float64
}

// FillPolygon rasterizes a filled convex polygon given in pixel
// coordinates. Polygons with more than three points fan into triangles.
// Winding does not matter: both orientations fill. There is no depth
// buffer; occlusion comes entirely from back-to-front draw order.
func (fb *Framebuffer) FillPolygon(pts []math3d.Vec2, c color.RGBA) {
	if len(pts) < 3 {
		return
	}
	for i := 1; i+1 < len(pts); i++ {
		fb.fillTriangle(pts[0], pts[i], pts[i+1], c)
	}
}

// edgeCoeffs returns A, B, C for the edge function A*x + B*y + C, the
// signed area of the parallelogram spanned by the edge and the query point.
// Positive = left of the edge, negative = right, zero = on it.
func edgeCoeffs(x0, y0, x1, y1 float64) (A, B, C float64) {
	A = y0 - y1 // dy
	B = x1 - x0 // -dx
	C = x0*y1 - x1*y0
	return
}

func (fb *Framebuffer) fillTriangle(v0, v1, v2 math3d.Vec2, c color.RGBA) {
	// Orient so the edge functions are >= 0 inside, whatever winding the
	// caller used. Degenerate (collinear) triangles cover nothing.
	area2 := v1.Sub(v0).Cross(v2.Sub(v0))
	if area2 == 0 {
		return
	}
	if area2 < 0 {
		v1, v2 = v2, v1
	}

	// Bounding box clamped to the framebuffer
	minX := int(math.Max(0, math.Floor(min3(v0.X, v1.X, v2.X))))
	maxX := int(math.Min(float64(fb.Width-1), math.Ceil(max3(v0.X, v1.X, v2.X))))
	minY := int(math.Max(0, math.Floor(min3(v0.Y, v1.Y, v2.Y))))
	maxY := int(math.Min(float64(fb.Height-1), math.Ceil(max3(v0.Y, v1.Y, v2.Y))))
	if minX > maxX || minY > maxY {
		return
	}

	// Edge 0: v1 -> v2, Edge 1: v2 -> v0, Edge 2: v0 -> v1
	A0, B0, C0 := edgeCoeffs(v1.X, v1.Y, v2.X, v2.Y)
	A1, B1, C1 := edgeCoeffs(v2.X, v2.Y, v0.X, v0.Y)
	A2, B2, C2 := edgeCoeffs(v0.X, v0.Y, v1.X, v1.Y)

	// Evaluate at the top-left pixel center, then step incrementally.
	px := float64(minX) + 0.5
	py := float64(minY) + 0.5
	w0Row := A0*px + B0*py + C0
	w1Row := A1*px + B1*py + C1
	w2Row := A2*px + B2*py + C2

	for y := minY; y <= maxY; y++ {
		w0, w1, w2 := w0Row, w1Row, w2Row
		rowOffset := y * fb.Width

		for x := minX; x <= maxX; x++ {
			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				fb.Pixels[rowOffset+x] = c
			}
			w0 += A0
			w1 += A1
			w2 += A2
		}

		w0Row += B0
		w1Row += B1
		w2Row += B2
	}
}

// StrokePolygon outlines a closed polygon with the stroke style. Stroke
// pixels alpha-blend over whatever is already drawn.
func (fb *Framebuffer) StrokePolygon(pts []math3d.Vec2, style StrokeStyle) {
	if len(pts) < 2 || style.Opacity <= 0 || style.Width <= 0 {
		return
	}
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		fb.strokeLine(
			int(math.Round(a.X)), int(math.Round(a.Y)),
			int(math.Round(b.X)), int(math.Round(b.Y)),
			style,
		)
	}
}

func (fb *Framebuffer) strokeLine(x0, y0, x1, y1 int, style StrokeStyle) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.strokePoint(x0, y0, style)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (fb *Framebuffer) strokePoint(x, y int, style StrokeStyle) {
	if style.Width <= 1 {
		fb.BlendPixel(x, y, style.Color, style.Opacity)
		return
	}
	half := style.Width / 2
	for oy := -half; oy <= half; oy++ {
		for ox := -half; ox <= half; ox++ {
			fb.BlendPixel(x+ox, y+oy, style.Color, style.Opacity)
		}
	}
}

// BlendPixel blends c over the existing pixel at the given opacity in [0,1].
func (fb *Framebuffer) BlendPixel(x, y int, c color.RGBA, opacity float64) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	if opacity <= 0 {
		return
	}
	idx := y*fb.Width + x
	if opacity >= 1 {
		fb.Pixels[idx] = c
		return
	}
	fb.Pixels[idx] = lerpColor(fb.Pixels[idx], c, opacity)
}

// lerpColor linearly interpolates between two colors.
func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: uint8(float64(a.A) + (float64(b.A)-float64(a.A))*t),
	}
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}

package wave

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// WrapHue wraps h into [0,1) by floor subtraction.
func WrapHue(h float64) float64 {
	return h - math.Floor(h)
}

// ClampLight clamps l into [0,1].
func ClampLight(l float64) float64 {
	if l < 0 {
		return 0
	}
	if l > 1 {
		return 1
	}
	return l
}

// Color maps a sampled height to the face fill color for the variant. Hue
// slides with height and cycles slowly with time; lightness follows height
// alone. Both are forced into range before conversion, so any finite height
// yields a valid opaque color.
func (v Variant) Color(height, t float64) color.RGBA {
	p := params[v]
	hue := WrapHue(p.HueBase + height*p.HueScale + t/p.HuePeriod)
	light := ClampLight(p.LightBase + height*p.LightScale)
	r, g, b := colorful.Hsl(hue*360, p.Saturation, light).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

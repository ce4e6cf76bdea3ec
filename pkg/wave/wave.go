// Package wave defines the closed-form wave field: a fixed set of variants,
// each a pure function from a planar coordinate and a time in milliseconds to
// a surface height, plus the mapping from height to a face color.
package wave

import (
	"fmt"
	"math"
)

// Variant selects one of the built-in wave formulas.
type Variant int

const (
	// Ripples is the classic demo: two radial wave trains with 1/(r+k)
	// amplitude decay running at opposite phase velocities.
	Ripples Variant = iota
	// Lattice crosses sinusoids in raw x and y at two spatial frequencies,
	// with mild radial damping.
	Lattice
	// Vortex is a spiral wave in polar angle and radius.
	Vortex
	// Swell layers a slow radial swell, two directional waves and a fine
	// ripple.
	Swell

	variantCount
)

// Variants returns every variant in cycling order.
func Variants() []Variant {
	return []Variant{Ripples, Lattice, Vortex, Swell}
}

// String returns the variant's demo name.
func (v Variant) String() string {
	switch v {
	case Ripples:
		return "ripples"
	case Lattice:
		return "lattice"
	case Vortex:
		return "vortex"
	case Swell:
		return "swell"
	}
	return fmt.Sprintf("variant(%d)", int(v))
}

// ParseVariant resolves a variant by its demo name.
func ParseVariant(name string) (Variant, error) {
	for _, v := range Variants() {
		if v.String() == name {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown wave variant %q", name)
}

// Next cycles to the following variant, wrapping after the last one.
func (v Variant) Next() Variant {
	return (v + 1) % variantCount
}

// Params is the per-variant demo configuration: lattice geometry plus the
// affine height-to-color mapping.
type Params struct {
	GridN      int     // lattice runs -GridN..GridN on both axes
	Spacing    float64 // world units per lattice step
	Saturation float64
	HueBase    float64
	HueScale   float64 // hue shift per unit height
	HuePeriod  float64 // ms for one full time-driven hue cycle
	LightBase  float64
	LightScale float64 // lightness shift per unit height
}

var params = [variantCount]Params{
	Ripples: {GridN: 40, Spacing: 5, Saturation: 0.65, HueBase: 0.58, HueScale: 0.0035, HuePeriod: 45000, LightBase: 0.50, LightScale: 0.0050},
	Lattice: {GridN: 32, Spacing: 6, Saturation: 0.60, HueBase: 0.33, HueScale: 0.0060, HuePeriod: 60000, LightBase: 0.48, LightScale: 0.0070},
	Vortex:  {GridN: 36, Spacing: 5.5, Saturation: 0.70, HueBase: 0.83, HueScale: 0.0040, HuePeriod: 50000, LightBase: 0.50, LightScale: 0.0060},
	Swell:   {GridN: 34, Spacing: 6, Saturation: 0.55, HueBase: 0.08, HueScale: 0.0030, HuePeriod: 70000, LightBase: 0.52, LightScale: 0.0045},
}

// Params returns the demo configuration for the variant.
func (v Variant) Params() Params {
	return params[v]
}

// Height evaluates the variant's formula at (x, y) and time t (ms). The
// result is finite for every input: radial denominators carry a positive
// additive constant, so r=0 is safe.
func (v Variant) Height(x, y, t float64) float64 {
	return formulas[v](x, y, t)
}

type formula func(x, y, t float64) float64

var formulas = [variantCount]formula{
	Ripples: ripples,
	Lattice: lattice,
	Vortex:  vortex,
	Swell:   swell,
}

func ripples(x, y, t float64) float64 {
	r := math.Hypot(x, y)
	h := 2000 / (r + 40) * math.Sin(r*0.1-t*0.003)
	h += 1200 / (r + 60) * math.Sin(r*0.07+t*0.002)
	return h
}

func lattice(x, y, t float64) float64 {
	r := math.Hypot(x, y)
	h := 14 * math.Sin(x*0.05+t*0.0025) * math.Cos(y*0.05-t*0.002)
	h += 8 * math.Sin(x*0.11-t*0.004)
	h += 8 * math.Sin(y*0.09+t*0.0035)
	return h * 150 / (r + 100)
}

func vortex(x, y, t float64) float64 {
	r := math.Hypot(x, y)
	theta := math.Atan2(y, x)
	h := 2600 / (r + 65) * math.Sin(theta*3+r*0.06-t*0.0035)
	h += 900 / (r + 90) * math.Sin(r*0.12-t*0.005)
	return h
}

func swell(x, y, t float64) float64 {
	r := math.Hypot(x, y)
	h := 24 * math.Sin(r*0.016-t*0.0012)
	h += 10 * math.Sin(x*0.035+t*0.0021)
	h += 7 * math.Sin((x+y*0.5)*0.045-t*0.0017)
	h += 1400 / (r + 70) * math.Sin(r*0.13-t*0.006)
	return h
}

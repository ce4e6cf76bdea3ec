package scene

import (
	"image/color"
	"sort"

	"github.com/taigrr/swell/pkg/math3d"
	"github.com/taigrr/swell/pkg/surface"
	"github.com/taigrr/swell/pkg/wave"
)

// Polygon is one draw-list entry: a projected quad in logical screen
// coordinates plus its fill color. A frame's draw list is ordered back to
// front.
type Polygon struct {
	Points [4]math3d.Vec2
	Color  color.RGBA
}

// RenderFrame runs the full per-tick pipeline: build the surface at the
// state's time, project every corner through one shared camera pose, sort
// the faces back to front, and emit the draw list. Nothing carries over
// between frames.
func RenderFrame(s State, v wave.Variant, cam *Camera) []Polygon {
	faces := surface.Build(v, s.Time)
	cam.SetRotation(s.EffectiveRotation())
	return assemble(faces, cam)
}

type drawItem struct {
	poly  Polygon
	depth float64
}

// assemble projects faces with the camera's current pose and depth-sorts
// them. The key is the negated mean rotated z, so ascending order puts the
// farthest faces first; the sort is stable, so equal depths keep build
// order.
func assemble(faces []surface.Face, cam *Camera) []Polygon {
	items := make([]drawItem, len(faces))
	for i, f := range faces {
		items[i] = projectFace(f, cam)
	}
	sort.SliceStable(items, func(a, b int) bool {
		return items[a].depth < items[b].depth
	})
	out := make([]Polygon, len(items))
	for i := range items {
		out[i] = items[i].poly
	}
	return out
}

// projectFace projects all four corners and derives the face depth key from
// the pre-divide rotated z values.
func projectFace(f surface.Face, cam *Camera) drawItem {
	var it drawItem
	var sum float64
	for k, p := range f.Points {
		sp, z := cam.Project(p)
		it.poly.Points[k] = sp
		sum += z
	}
	it.poly.Color = f.Color
	it.depth = -sum / 4
	return it
}

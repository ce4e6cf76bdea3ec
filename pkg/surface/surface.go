// Package surface builds the deformable wave mesh: one quad face per lattice
// coordinate, corners sampled independently from the wave field.
package surface

import (
	"image/color"

	"github.com/taigrr/swell/pkg/math3d"
	"github.com/taigrr/swell/pkg/wave"
)

// Face is one quadrilateral cell of the deformed surface. Points holds the
// four corners in a fixed winding; Color fills the whole cell.
type Face struct {
	Points [4]math3d.Vec3
	Color  color.RGBA
}

// FaceCount returns the number of faces Build produces for the variant,
// (2N+1)^2 for its lattice extent N. The count never varies with time.
func FaceCount(v wave.Variant) int {
	side := 2*v.Params().GridN + 1
	return side * side
}

// Build samples the wave field for v at time t and returns the face list in
// lattice row order. The lattice runs -N..N in integer steps on both axes at
// the variant's spacing; each coordinate owns one quad whose corners sit at
// offsets (-s,-s), (0,-s), (0,0), (-s,0) from it. Corner heights are sampled
// per corner, not interpolated; the third corner is the lattice coordinate
// itself and its height drives the cell color.
func Build(v wave.Variant, t float64) []Face {
	p := v.Params()
	n := p.GridN
	s := p.Spacing
	faces := make([]Face, 0, FaceCount(v))
	for j := -n; j <= n; j++ {
		cy := float64(j) * s
		for i := -n; i <= n; i++ {
			cx := float64(i) * s
			pts := [4]math3d.Vec3{
				corner(v, cx-s, cy-s, t),
				corner(v, cx, cy-s, t),
				corner(v, cx, cy, t),
				corner(v, cx-s, cy, t),
			}
			faces = append(faces, Face{
				Points: pts,
				Color:  v.Color(pts[2].Z, t),
			})
		}
	}
	return faces
}

func corner(v wave.Variant, x, y, t float64) math3d.Vec3 {
	return math3d.V3(x, y, v.Height(x, y, t))
}

// Package export writes the current wave surface as a binary glTF document,
// so a frame of the animation can be pulled into any 3D tool.
package export

import (
	"fmt"
	"time"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/taigrr/swell/pkg/surface"
	"github.com/taigrr/swell/pkg/wave"
)

// WriteGLB saves faces as a .glb file at path. Each quad becomes two
// triangles; corners carry the face color as a vertex color and a flat
// face normal.
func WriteGLB(path string, faces []surface.Face) error {
	if len(faces) == 0 {
		return fmt.Errorf("export %s: no faces", path)
	}

	positions := make([][3]float32, 0, len(faces)*4)
	normals := make([][3]float32, 0, len(faces)*4)
	colors := make([][4]uint8, 0, len(faces)*4)
	indices := make([]uint32, 0, len(faces)*6)

	for _, f := range faces {
		base := uint32(len(positions))
		n := faceNormal(f)
		for _, p := range f.Points {
			positions = append(positions, [3]float32{float32(p.X), float32(p.Y), float32(p.Z)})
			normals = append(normals, n)
			colors = append(colors, [4]uint8{f.Color.R, f.Color.G, f.Color.B, f.Color.A})
		}
		indices = append(indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}

	doc := gltf.NewDocument()
	doc.Asset.Generator = "swell"
	doc.Meshes = []*gltf.Mesh{{
		Name: "surface",
		Primitives: []*gltf.Primitive{{
			Indices: gltf.Index(modeler.WriteIndices(doc, indices)),
			Attributes: gltf.PrimitiveAttributes{
				gltf.POSITION: modeler.WritePosition(doc, positions),
				gltf.NORMAL:   modeler.WriteNormal(doc, normals),
				gltf.COLOR_0:  modeler.WriteColor(doc, colors),
			},
		}},
	}}
	doc.Nodes = []*gltf.Node{{Name: "surface", Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = []int{0}

	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}

// DefaultPath returns a timestamped file name for a snapshot of the given
// variant, like swell-ripples-20260314-150926.glb.
func DefaultPath(v wave.Variant, now time.Time) string {
	return fmt.Sprintf("swell-%s-%s.glb", v, now.Format("20060102-150405"))
}

// faceNormal computes the flat normal of a quad from two of its edges. Quads
// come from a height field, so the normal always has a positive z part.
func faceNormal(f surface.Face) [3]float32 {
	e1 := f.Points[1].Sub(f.Points[0])
	e2 := f.Points[3].Sub(f.Points[0])
	n := e1.Cross(e2).Normalize()
	return [3]float32{float32(n.X), float32(n.Y), float32(n.Z)}
}

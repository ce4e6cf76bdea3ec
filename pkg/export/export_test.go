package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/qmuntal/gltf"

	"github.com/taigrr/swell/pkg/surface"
	"github.com/taigrr/swell/pkg/wave"
)

func TestWriteGLBRoundTrip(t *testing.T) {
	faces := surface.Build(wave.Lattice, 1234.0)
	path := filepath.Join(t.TempDir(), "surface.glb")

	if err := WriteGLB(path, faces); err != nil {
		t.Fatalf("WriteGLB: %v", err)
	}

	doc, err := gltf.Open(path)
	if err != nil {
		t.Fatalf("open exported file: %v", err)
	}

	if len(doc.Meshes) != 1 || len(doc.Meshes[0].Primitives) != 1 {
		t.Fatal("want a single mesh with one primitive")
	}
	prim := doc.Meshes[0].Primitives[0]

	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		t.Fatal("no POSITION attribute")
	}
	if got, want := doc.Accessors[posIdx].Count, len(faces)*4; got != want {
		t.Errorf("position count = %d, want %d", got, want)
	}
	if _, ok := prim.Attributes[gltf.NORMAL]; !ok {
		t.Error("no NORMAL attribute")
	}
	if _, ok := prim.Attributes[gltf.COLOR_0]; !ok {
		t.Error("no COLOR_0 attribute")
	}

	if prim.Indices == nil {
		t.Fatal("no index accessor")
	}
	if got, want := doc.Accessors[*prim.Indices].Count, len(faces)*6; got != want {
		t.Errorf("index count = %d, want %d", got, want)
	}

	if len(doc.Nodes) != 1 || doc.Nodes[0].Mesh == nil || *doc.Nodes[0].Mesh != 0 {
		t.Error("mesh not attached to a node")
	}
}

func TestWriteGLBEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.glb")
	if err := WriteGLB(path, nil); err == nil {
		t.Fatal("want error for an empty face list")
	}
}

func TestDefaultPath(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	got := DefaultPath(wave.Vortex, now)
	want := "swell-vortex-20260314-150926.glb"
	if got != want {
		t.Errorf("DefaultPath = %q, want %q", got, want)
	}
}

package scene

import (
	"math"
	"testing"

	"github.com/taigrr/swell/pkg/math3d"
)

const eps = 1e-9

func TestProjectOriginZeroRotation(t *testing.T) {
	cam := NewCamera()
	sp, depth := cam.Project(math3d.V3(0, 0, 0))
	if sp.X != 0 || sp.Y != 0 {
		t.Errorf("projected origin = (%v, %v), want (0, 0)", sp.X, sp.Y)
	}
	if depth != 0 {
		t.Errorf("origin depth = %v, want 0", depth)
	}
}

func TestProjectMatchesSequentialRotation(t *testing.T) {
	cases := []struct {
		name string
		rot  Rotation
		p    math3d.Vec3
	}{
		{"tilt only", Rotation{X: math.Pi / 2}, math3d.V3(0, 10, 0)},
		{"turn only", Rotation{Y: math.Pi / 2}, math3d.V3(10, 0, 0)},
		{"combined", Rotation{X: 0.3, Y: 0.5}, math3d.V3(1, 2, 3)},
		{"negative angles", Rotation{X: -0.7, Y: 1.2}, math3d.V3(-40, 25, 12.5)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cam := NewCamera()
			cam.SetRotation(tc.rot)
			sp, depth := cam.Project(tc.p)

			// Reference math, spelled out step by step: X rotation first,
			// then Y on the rotated z, screen y from the intermediate y.
			cx, sx := math.Cos(tc.rot.X), math.Sin(tc.rot.X)
			cy, sy := math.Cos(tc.rot.Y), math.Sin(tc.rot.Y)
			y1 := tc.p.Y*cx - tc.p.Z*sx
			z1 := tc.p.Y*sx + tc.p.Z*cx
			x2 := tc.p.X*cy + z1*sy
			z2 := -tc.p.X*sy + z1*cy
			scale := Focal / (Focal + z2)

			if math.Abs(sp.X-x2*scale) > eps || math.Abs(sp.Y-y1*scale) > eps {
				t.Errorf("projected (%v, %v), want (%v, %v)", sp.X, sp.Y, x2*scale, y1*scale)
			}
			if math.Abs(depth-z2) > eps {
				t.Errorf("depth = %v, want %v", depth, z2)
			}
		})
	}
}

func TestPerspectiveScaleShrinksWithDepth(t *testing.T) {
	cam := NewCamera()
	prev := math.Inf(1)
	for _, z := range []float64{-50, 0, 50, 150} {
		sp, _ := cam.Project(math3d.V3(100, 0, z))
		if sp.X >= prev {
			t.Fatalf("screen x %v at z=%v did not shrink (prev %v)", sp.X, z, prev)
		}
		prev = sp.X
	}
}

func TestCameraPoseRoundTrip(t *testing.T) {
	cam := NewCamera()
	r := Rotation{X: 0.25, Y: -0.75}
	cam.SetRotation(r)
	if got := cam.Rotation(); got != r {
		t.Errorf("Rotation() = %+v, want %+v", got, r)
	}
}

func TestProjectStableForRepeatedPose(t *testing.T) {
	cam := NewCamera()
	cam.SetRotation(Rotation{X: 0.3, Y: 0.5})
	p := math3d.V3(5, -3, 8)
	a1, d1 := cam.Project(p)
	cam.SetRotation(Rotation{X: 0.3, Y: 0.5})
	a2, d2 := cam.Project(p)
	if a1 != a2 || d1 != d2 {
		t.Errorf("same pose projected differently: (%v, %v) vs (%v, %v)", a1, d1, a2, d2)
	}
}

func BenchmarkProject(b *testing.B) {
	cam := NewCamera()
	cam.SetRotation(Rotation{X: 0.3, Y: 0.5})
	p := math3d.V3(37.5, -12.5, 18)

	for b.Loop() {
		_, _ = cam.Project(p)
	}
}

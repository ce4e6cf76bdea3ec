// Package scene drives the per-tick pipeline: the animation state machine,
// the two-axis camera, and the frame assembler that turns a deformed surface
// into an ordered 2D draw list.
package scene

import (
	"github.com/taigrr/swell/pkg/math3d"
)

// Focal is the fixed perspective focal distance, in the same world units as
// the surface lattice.
const Focal = 300.0

// Rotation holds the two camera angles in radians.
type Rotation struct {
	X, Y float64
}

// Camera projects surface points through a two-axis rotation. The combined
// rotation matrix is cached and rebuilt on demand, so one pose shared by a
// whole frame costs a single matrix build.
type Camera struct {
	rot   Rotation
	m     math3d.Mat4
	dirty bool
}

// NewCamera creates a camera at zero rotation.
func NewCamera() *Camera {
	return &Camera{dirty: true}
}

// SetRotation sets the pose applied by subsequent projections.
func (c *Camera) SetRotation(r Rotation) {
	if r == c.rot {
		return
	}
	c.rot = r
	c.dirty = true
}

// Rotation returns the current pose.
func (c *Camera) Rotation() Rotation {
	return c.rot
}

// Project maps a surface point to the logical screen square and reports the
// rotated depth used for face ordering. The point rotates about the X axis
// first, then about the Y axis on the already-rotated z. The Y rotation
// leaves y untouched, so the projected y is the y out of the X rotation, the
// simplified pinhole rule. Depth is the rotated z before the divide.
func (c *Camera) Project(p math3d.Vec3) (math3d.Vec2, float64) {
	if c.dirty {
		c.m = math3d.RotateY(c.rot.Y).Mul(math3d.RotateX(c.rot.X))
		c.dirty = false
	}
	q := c.m.MulVec3(p)
	d := Focal + q.Z
	if d == 0 {
		d = 1
	}
	s := Focal / d
	return math3d.V2(q.X*s, q.Y*s), q.Z
}

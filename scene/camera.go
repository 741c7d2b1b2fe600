// Package scene describes what the sandbox renders: a perspective camera
// and the lights of a Phong-style shading model. World space is Z-up.
package scene

import (
	"github.com/xlab/linmath"
)

// Up is the world up axis.
var Up = linmath.Vec3{0, 0, 1}

// FOV limits in degrees.
const (
	MinFOV = 1
	MaxFOV = 179
)

// Camera is a perspective camera looking from Pos at Target.
type Camera struct {
	Pos    linmath.Vec3
	Target linmath.Vec3
	Near   float32
	Far    float32
	// FOV is the vertical field of view in degrees.
	FOV    float32
	Aspect float32
}

// CCS is the local coordinate system of a camera. Z points at the target,
// Y to the right and X up.
type CCS struct {
	X, Y, Z linmath.Vec3
}

// ViewMatrix returns the world to camera transform.
func (c *Camera) ViewMatrix() linmath.Mat4x4 {
	var m linmath.Mat4x4
	up := Up
	m.LookAt(&c.Pos, &c.Target, &up)
	return m
}

// ProjMatrix returns the perspective projection of the camera.
func (c *Camera) ProjMatrix() linmath.Mat4x4 {
	var m linmath.Mat4x4
	m.Perspective(linmath.DegreesToRadians(c.FOV), c.Aspect, c.Near, c.Far)
	return m
}

// LocalCCS returns the camera's local axes in world space.
func (c *Camera) LocalCCS() CCS {
	var ccs CCS
	var fwd, right linmath.Vec3
	up := Up
	fwd.Sub(&c.Target, &c.Pos)
	ccs.Z = unit(fwd)
	right.MultCross(&ccs.Z, &up)
	ccs.Y = unit(right)
	ccs.X.MultCross(&ccs.Y, &ccs.Z)
	return ccs
}

// Dir returns the unit vector from the target towards the camera.
func (c *Camera) Dir() linmath.Vec3 {
	var d linmath.Vec3
	d.Sub(&c.Pos, &c.Target)
	return unit(d)
}

// Move translates the camera position along a local axis by step.
func (c *Camera) Move(axis linmath.Vec3, step float32) {
	var d linmath.Vec3
	d.Scale(&axis, step)
	c.Pos.Add(&c.Pos, &d)
}

// Zoom changes the field of view by delta degrees within [MinFOV, MaxFOV].
func (c *Camera) Zoom(delta float32) {
	c.FOV = min(max(c.FOV+delta, MinFOV), MaxFOV)
}

// SetViewport updates the aspect ratio from framebuffer dimensions. Empty
// framebuffers, e.g. of minimized windows, are ignored.
func (c *Camera) SetViewport(width, height int) {
	if width > 0 && height > 0 {
		c.Aspect = float32(width) / float32(height)
	}
}

// unit normalizes v. A camera sitting on its target, or looking along Up,
// yields zero vectors instead of NaNs.
func unit(v linmath.Vec3) linmath.Vec3 {
	if v.Len() == 0 {
		return v
	}
	var n linmath.Vec3
	n.Norm(&v)
	return n
}

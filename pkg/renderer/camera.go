package renderer

import "github.com/hydrogencg/go-raycaster/pkg/core"

// Camera is a pinhole camera mapping normalized screen coordinates to
// world-space rays. The virtual film sits at unit focal distance along
// the forward axis; u spans [-aspect, aspect] and v spans [-1, 1].
type Camera struct {
	origin  core.Vec3
	right   core.Vec3
	up      core.Vec3
	forward core.Vec3
}

// NewCamera creates a camera at the world origin looking down +Z
func NewCamera() *Camera {
	return NewCameraAt(core.NewVec3(0, 0, 0))
}

// NewCameraAt creates a camera at the given position looking down +Z
func NewCameraAt(origin core.Vec3) *Camera {
	return &Camera{
		origin:  origin,
		right:   core.NewVec3(1, 0, 0),
		up:      core.NewVec3(0, 1, 0),
		forward: core.NewVec3(0, 0, 1),
	}
}

// GetRay returns a unit-direction ray through the point (u, v) on the
// virtual film
func (c *Camera) GetRay(uv core.Vec2) core.Ray {
	direction := c.right.Multiply(uv.X).
		Add(c.up.Multiply(uv.Y)).
		Add(c.forward).
		Normalize()

	return core.NewRay(c.origin, direction)
}

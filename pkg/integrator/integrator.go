package integrator

import (
	"github.com/hydrogencg/go-raycaster/pkg/core"
	"github.com/hydrogencg/go-raycaster/pkg/scene"
)

// Integrator estimates the radiance arriving at a ray's origin from the
// direction of the ray. Implementations are stateless; the same
// instance is invoked once per pixel by the render loop.
type Integrator interface {
	Radiance(s *scene.Scene, ray core.Ray) core.Vec3
}

// facingNormal flips the surface normal, if necessary, to oppose the
// incoming ray direction. This gives correct two-sided shading even
// when the ray origin is inside a primitive.
func facingNormal(rayDirection, normal core.Vec3) core.Vec3 {
	if rayDirection.Dot(normal) < 0 {
		return normal
	}
	return normal.Negate()
}

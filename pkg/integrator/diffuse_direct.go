package integrator

import (
	"math"

	"github.com/hydrogencg/go-raycaster/pkg/core"
	"github.com/hydrogencg/go-raycaster/pkg/scene"
)

// DiffuseDirect computes direct Lambertian illumination with shadows:
// each light's contribution is gated by a shadow ray from the shading
// point to the light. Compared to DiffuseLocal, occlusion only ever
// removes energy.
type DiffuseDirect struct{}

// Radiance implements the Integrator interface
func (DiffuseDirect) Radiance(s *scene.Scene, ray core.Ray) core.Vec3 {
	hit := s.Intersect(ray, 0, math.Inf(1))
	if !hit.Valid() {
		return core.Vec3{}
	}

	albedo := hit.Color.Multiply(core.InvPi)
	normal := facingNormal(ray.Direction, hit.Normal)

	// Offset the shading point along the facing normal so round-off
	// error cannot land the shadow ray origin inside the surface.
	pos := hit.Point.Add(normal.Multiply(core.Epsilon))

	// The ambient term has no visibility and uses the un-offset point
	ambient := s.Ambient.Sample(hit.Point).Radiance
	color := albedo.MultiplyVec(ambient).Multiply(math.Pi)

	for _, sample := range s.SampleLights(pos) {
		cosLambert := max(0.0, normal.Dot(sample.Direction))

		// Anything between the shading point and the light occludes it
		shadowRay := core.NewRay(pos, sample.Direction)
		if s.IntersectAny(shadowRay, 0, sample.Distance) {
			continue
		}

		color = color.Add(albedo.MultiplyVec(sample.Radiance).Multiply(cosLambert))
	}

	return color
}

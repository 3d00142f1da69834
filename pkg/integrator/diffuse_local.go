package integrator

import (
	"math"

	"github.com/hydrogencg/go-raycaster/pkg/core"
	"github.com/hydrogencg/go-raycaster/pkg/scene"
)

// DiffuseLocal computes direct Lambertian illumination without
// visibility: every light contributes as if no other object existed,
// the way rasterization shades without shadow maps. The surface color
// is divided by π so colors in [0,1] stay energy conserving.
type DiffuseLocal struct{}

// Radiance implements the Integrator interface
func (DiffuseLocal) Radiance(s *scene.Scene, ray core.Ray) core.Vec3 {
	hit := s.Intersect(ray, 0, math.Inf(1))
	if !hit.Valid() {
		return core.Vec3{}
	}

	albedo := hit.Color.Multiply(core.InvPi)
	normal := facingNormal(ray.Direction, hit.Normal)

	// The ambient term integrates the constant ambient radiance over the
	// hemisphere, which contributes a factor of π.
	ambient := s.Ambient.Sample(hit.Point).Radiance
	color := albedo.MultiplyVec(ambient).Multiply(math.Pi)

	for _, sample := range s.SampleLights(hit.Point) {
		// Lambert's cosine law, clamped: light cannot arrive from below
		// the surface horizon.
		cosLambert := max(0.0, normal.Dot(sample.Direction))
		color = color.Add(albedo.MultiplyVec(sample.Radiance).Multiply(cosLambert))
	}

	return color
}

package integrator

import (
	"math"

	"github.com/hydrogencg/go-raycaster/pkg/core"
	"github.com/hydrogencg/go-raycaster/pkg/scene"
)

// maxTransparencyBounces bounds the ray chase. Eleven steps cover five
// spheres intersected twice each, plus a final step to reach the
// background.
const maxTransparencyBounces = 11

// Transparency treats every surface as transparent with its color as
// the transmission filter. The ray is chased through the scene,
// attenuating an accumulated color at each surface it crosses, until it
// escapes to the (white) background. Exhausting the bounce budget
// returns black. This is naive unconditional transmission, not
// physically based refraction.
type Transparency struct{}

// Radiance implements the Integrator interface
func (Transparency) Radiance(s *scene.Scene, r core.Ray) core.Vec3 {
	color := core.NewVec3(1, 1, 1)
	ray := r

	for i := 0; i < maxTransparencyBounces; i++ {
		hit := s.Intersect(ray, 0, math.Inf(1))
		if !hit.Valid() {
			return color
		}

		normal := facingNormal(ray.Direction, hit.Normal)
		color = color.MultiplyVec(hit.Color)

		// Continue from just past the surface, offset to the
		// transmission side to avoid re-hitting it.
		origin := hit.Point.Subtract(normal.Multiply(core.Epsilon))
		ray = core.NewRay(origin, ray.Direction)
	}

	return core.Vec3{}
}

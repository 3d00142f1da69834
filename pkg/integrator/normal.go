package integrator

import (
	"math"

	"github.com/hydrogencg/go-raycaster/pkg/core"
	"github.com/hydrogencg/go-raycaster/pkg/scene"
)

// Normal visualizes facing normals by mapping their components from
// [-1,1]³ to [0,1]³: right-facing surfaces render pink, up-facing light
// green, camera-facing light blue. Misses render black.
type Normal struct{}

// Radiance implements the Integrator interface
func (Normal) Radiance(s *scene.Scene, ray core.Ray) core.Vec3 {
	hit := s.Intersect(ray, 0, math.Inf(1))
	if !hit.Valid() {
		return core.Vec3{}
	}

	normal := facingNormal(ray.Direction, hit.Normal)
	return normal.Multiply(0.5).Add(core.NewVec3(0.5, 0.5, 0.5))
}

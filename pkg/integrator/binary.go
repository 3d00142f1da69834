package integrator

import (
	"math"

	"github.com/hydrogencg/go-raycaster/pkg/core"
	"github.com/hydrogencg/go-raycaster/pkg/scene"
)

// Binary returns white where the ray hits anything and black elsewhere
type Binary struct{}

// Radiance implements the Integrator interface
func (Binary) Radiance(s *scene.Scene, ray core.Ray) core.Vec3 {
	if s.Intersect(ray, 0, math.Inf(1)).Valid() {
		return core.NewVec3(1, 1, 1)
	}
	return core.Vec3{}
}

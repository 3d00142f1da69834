package integrator

import (
	"math"

	"github.com/hydrogencg/go-raycaster/pkg/core"
	"github.com/hydrogencg/go-raycaster/pkg/scene"
)

// InverseDistance returns a grayscale value of 1/distance to the
// closest hit. Background pixels divide by the +Inf sentinel; the
// result is accepted output and left for the film to clamp.
type InverseDistance struct{}

// Radiance implements the Integrator interface
func (InverseDistance) Radiance(s *scene.Scene, ray core.Ray) core.Vec3 {
	g := 1.0 / s.Intersect(ray, 0, math.Inf(1)).T
	return core.NewVec3(g, g, g)
}

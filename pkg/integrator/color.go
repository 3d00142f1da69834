package integrator

import (
	"math"

	"github.com/hydrogencg/go-raycaster/pkg/core"
	"github.com/hydrogencg/go-raycaster/pkg/scene"
)

// Color returns the surface color of the closest hit, or black for a
// miss. The miss sentinel carries a zero color, so no branch is needed.
type Color struct{}

// Radiance implements the Integrator interface
func (Color) Radiance(s *scene.Scene, ray core.Ray) core.Vec3 {
	return s.Intersect(ray, 0, math.Inf(1)).Color
}

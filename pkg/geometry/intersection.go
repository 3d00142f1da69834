package geometry

import (
	"math"

	"github.com/hydrogencg/go-raycaster/pkg/core"
)

// Intersection describes the closest surface point a ray hits.
// T is the distance from the ray origin; a value of +Inf marks the
// "no intersection" sentinel, so validity is simply T < +Inf.
type Intersection struct {
	T      float64   // Distance along the ray
	Point  core.Vec3 // Hit position in world space
	Normal core.Vec3 // Outward surface normal at the hit point
	Color  core.Vec3 // Surface color at the hit point
}

// NoIntersection returns the miss sentinel
func NoIntersection() Intersection {
	return Intersection{T: math.Inf(1)}
}

// Valid reports whether the intersection represents an actual hit
func (i Intersection) Valid() bool {
	return i.T < math.Inf(1)
}

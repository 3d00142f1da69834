package geometry

import (
	"math"

	"github.com/hydrogencg/go-raycaster/pkg/core"
)

// Sphere represents a sphere with a uniform diffuse color
type Sphere struct {
	Center core.Vec3
	Radius float64
	Color  core.Vec3
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, color core.Vec3) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
		Color:  color,
	}
}

// NormalAt returns the outward normal at point p on the sphere surface
func (s *Sphere) NormalAt(p core.Vec3) core.Vec3 {
	return p.Subtract(s.Center).Multiply(1.0 / s.Radius)
}

// Intersect tests the ray against the sphere and returns the closest
// intersection strictly inside (tMin, tMax), or the miss sentinel.
//
// With a unit-length ray direction the quadratic |ray(t) - center|² = r²
// reduces to t² - 2bt + c = 0 with b = d·(center-origin) and
// c = |center-origin|² - r², so the leading coefficient is 1.
func (s *Sphere) Intersect(ray core.Ray, tMin, tMax float64) Intersection {
	oc := s.Center.Subtract(ray.Origin)
	b := ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius
	discriminant := b*b - c

	// Grazing hits (discriminant == 0) are treated as misses; a tangent
	// intersection is below the precision of the arithmetic anyway.
	if discriminant <= 0 {
		return NoIntersection()
	}

	sqrtD := math.Sqrt(discriminant)

	// Closer root first
	if t := b - sqrtD; t > tMin && t < tMax {
		p := ray.At(t)
		return Intersection{T: t, Point: p, Normal: s.NormalAt(p), Color: s.Color}
	}

	// Farther root, relevant when the ray starts inside the sphere
	if t := b + sqrtD; t > tMin && t < tMax {
		p := ray.At(t)
		return Intersection{T: t, Point: p, Normal: s.NormalAt(p), Color: s.Color}
	}

	return NoIntersection()
}

// IntersectAny reports whether the ray hits the sphere anywhere strictly
// inside (tMin, tMax), without computing hit data. Used for shadow rays.
func (s *Sphere) IntersectAny(ray core.Ray, tMin, tMax float64) bool {
	oc := s.Center.Subtract(ray.Origin)
	b := ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius
	discriminant := b*b - c
	if discriminant <= 0 {
		return false
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := b - sqrtD
	t2 := b + sqrtD
	return (t1 > tMin && t1 < tMax) || (t2 > tMin && t2 < tMax)
}

package scene

import (
	"github.com/hydrogencg/go-raycaster/pkg/core"
	"github.com/hydrogencg/go-raycaster/pkg/geometry"
	"github.com/hydrogencg/go-raycaster/pkg/lights"
)

// Scene owns the geometry and light sources to render. Lights are kept
// in one slice per variant (plus a single ambient term) so integrators
// can iterate them without dynamic dispatch. A scene is built once and
// treated as read-only while rendering.
type Scene struct {
	Spheres []*geometry.Sphere

	Ambient lights.AmbientLight

	PointLights       []*lights.PointLight
	DirectionalLights []*lights.DirectionalLight
	ConeLights        []*lights.ConeLight
	CylinderLights    []*lights.CylinderLight
}

// NewScene creates an empty scene
func NewScene() *Scene {
	return &Scene{}
}

// AddSphere adds a sphere to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64, color core.Vec3) {
	s.Spheres = append(s.Spheres, geometry.NewSphere(center, radius, color))
}

// AddPointLight adds a point light to the scene
func (s *Scene) AddPointLight(intensity, origin core.Vec3) {
	s.PointLights = append(s.PointLights, lights.NewPointLight(intensity, origin))
}

// AddDirectionalLight adds a directional light to the scene
func (s *Scene) AddDirectionalLight(radiosity, direction core.Vec3) {
	s.DirectionalLights = append(s.DirectionalLights, lights.NewDirectionalLight(radiosity, direction))
}

// AddConeLight adds a cone light to the scene
func (s *Scene) AddConeLight(intensity, origin, direction core.Vec3, cosAngle float64) {
	s.ConeLights = append(s.ConeLights, lights.NewConeLight(intensity, origin, direction, cosAngle))
}

// AddCylinderLight adds a cylinder light to the scene
func (s *Scene) AddCylinderLight(radiosity, origin, direction core.Vec3, radius float64) {
	s.CylinderLights = append(s.CylinderLights, lights.NewCylinderLight(radiosity, origin, direction, radius))
}

// Intersect scans all primitives and returns the closest intersection
// strictly inside (tMin, tMax), or the miss sentinel. Each primitive
// test is bounded by the closest distance found so far, so a primitive
// farther than the current best cannot replace it; equal distances keep
// the earlier primitive.
func (s *Scene) Intersect(ray core.Ray, tMin, tMax float64) geometry.Intersection {
	closest := geometry.NoIntersection()
	closestT := tMax

	for _, sphere := range s.Spheres {
		if hit := sphere.Intersect(ray, tMin, closestT); hit.Valid() {
			closest = hit
			closestT = hit.T
		}
	}

	return closest
}

// IntersectAny reports whether the ray hits anything strictly inside
// (tMin, tMax), stopping at the first hit found. Used for shadow rays.
func (s *Scene) IntersectAny(ray core.Ray, tMin, tMax float64) bool {
	for _, sphere := range s.Spheres {
		if sphere.IntersectAny(ray, tMin, tMax) {
			return true
		}
	}
	return false
}

// SampleLights samples every non-ambient light in the scene as seen
// from the given point, in deterministic per-variant order.
func (s *Scene) SampleLights(point core.Vec3) []lights.LightSample {
	samples := make([]lights.LightSample, 0,
		len(s.PointLights)+len(s.DirectionalLights)+len(s.ConeLights)+len(s.CylinderLights))

	for _, l := range s.PointLights {
		samples = append(samples, l.Sample(point))
	}
	for _, l := range s.DirectionalLights {
		samples = append(samples, l.Sample(point))
	}
	for _, l := range s.ConeLights {
		samples = append(samples, l.Sample(point))
	}
	for _, l := range s.CylinderLights {
		samples = append(samples, l.Sample(point))
	}

	return samples
}

// LightCount returns the number of non-ambient lights in the scene
func (s *Scene) LightCount() int {
	return len(s.PointLights) + len(s.DirectionalLights) + len(s.ConeLights) + len(s.CylinderLights)
}

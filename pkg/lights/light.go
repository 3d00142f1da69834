package lights

import "github.com/hydrogencg/go-raycaster/pkg/core"

// LightSample holds the data an integrator needs to shade a point with
// respect to one light: the incident radiance, the direction from the
// shading point to the light, and the distance to the light for shadow
// ray tests.
type LightSample struct {
	Radiance  core.Vec3 // Radiance arriving at the shading point
	Direction core.Vec3 // Unit direction from the shading point to the light
	Distance  float64   // Distance to the light along Direction
}

// Light is the sampling capability shared by all light variants
type Light interface {
	// Sample evaluates the light as seen from the given shading point
	Sample(point core.Vec3) LightSample
}

package lights

import "github.com/hydrogencg/go-raycaster/pkg/core"

// AmbientLight emits constant radiance toward every point from every
// direction. It approximates the indirect illumination that a local
// shading model cannot capture, at the cost of brightening everything
// uniformly.
type AmbientLight struct {
	Radiance core.Vec3
}

// NewAmbientLight creates a new ambient light
func NewAmbientLight(radiance core.Vec3) AmbientLight {
	return AmbientLight{Radiance: radiance}
}

// Sample returns the constant radiance; direction and distance carry no
// meaning for an ambient term.
func (l AmbientLight) Sample(point core.Vec3) LightSample {
	return LightSample{Radiance: l.Radiance}
}

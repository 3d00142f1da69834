package lights

import (
	"math"

	"github.com/hydrogencg/go-raycaster/pkg/core"
)

// DirectionalLight models an infinitely distant emitter whose rays all
// travel in a single direction, like the sun. It has no falloff, and
// any occluder along the light direction casts a shadow since the
// source sits at infinite distance.
type DirectionalLight struct {
	Radiosity core.Vec3 // Color and strength of the light
	Direction core.Vec3 // Unit direction the light travels in
}

// NewDirectionalLight creates a new directional light
func NewDirectionalLight(radiosity, direction core.Vec3) *DirectionalLight {
	return &DirectionalLight{Radiosity: radiosity, Direction: direction}
}

// Sample returns the constant radiance; the direction to the light is
// the reverse of the emission direction and the distance is infinite.
func (l *DirectionalLight) Sample(point core.Vec3) LightSample {
	return LightSample{
		Radiance:  l.Radiosity,
		Direction: l.Direction.Negate(),
		Distance:  math.Inf(1),
	}
}

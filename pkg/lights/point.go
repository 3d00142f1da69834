package lights

import "github.com/hydrogencg/go-raycaster/pkg/core"

// PointLight is a zero-area isotropic emitter. It obeys the
// inverse-square law, so radiance falls off with the squared distance
// from the light.
type PointLight struct {
	Intensity core.Vec3 // Color and strength of the light
	Origin    core.Vec3 // Position of the light
}

// NewPointLight creates a new point light
func NewPointLight(intensity, origin core.Vec3) *PointLight {
	return &PointLight{Intensity: intensity, Origin: origin}
}

// Sample returns the radiance arriving from the light at the given point
func (l *PointLight) Sample(point core.Vec3) LightSample {
	toLight := l.Origin.Subtract(point)
	distance := toLight.Length()

	return LightSample{
		Radiance:  l.Intensity.Multiply(1.0 / (distance * distance)),
		Direction: toLight.Multiply(1.0 / distance),
		Distance:  distance,
	}
}

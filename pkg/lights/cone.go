package lights

import (
	"math"

	"github.com/hydrogencg/go-raycaster/pkg/core"
)

// coneRippleFrequency controls the concentric ripple pattern projected
// by cone lights, in ripples per unit of cosine.
const coneRippleFrequency = 200.0

// ConeLight restricts a point light's emission to a cone around its
// axis. Radiance fades smoothly from the axis out to the cone edge and
// is zero beyond it, modulated by a concentric ripple pattern.
type ConeLight struct {
	Intensity core.Vec3 // Color and strength of the light
	Origin    core.Vec3 // Position of the light
	Direction core.Vec3 // Unit axis of the cone
	CosAngle  float64   // Cosine of the cone half-angle; no emission beyond it
}

// NewConeLight creates a new cone light
func NewConeLight(intensity, origin, direction core.Vec3, cosAngle float64) *ConeLight {
	return &ConeLight{
		Intensity: intensity,
		Origin:    origin,
		Direction: direction,
		CosAngle:  cosAngle,
	}
}

// Sample evaluates the light like a point light, then attenuates by the
// angle between the cone axis and the direction toward the point.
func (l *ConeLight) Sample(point core.Vec3) LightSample {
	pointLight := PointLight{Intensity: l.Intensity, Origin: l.Origin}
	sample := pointLight.Sample(point)

	// Cosine of the angle between the cone axis and the light-to-point
	// direction; sample.Direction points from the point to the light.
	cosCone := sample.Direction.Negate().Dot(l.Direction)

	attenuation := core.Smoothstep(l.CosAngle, 1.0, cosCone)
	ripple := 0.5 + 0.5*math.Sin(coneRippleFrequency*cosCone)
	sample.Radiance = sample.Radiance.Multiply(attenuation * ripple)

	return sample
}

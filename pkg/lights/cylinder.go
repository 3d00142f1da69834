package lights

import (
	"math"

	"github.com/hydrogencg/go-raycaster/pkg/core"
)

// cylinderRippleFrequency controls the concentric ripple pattern of
// cylinder lights, in ripples per world-space unit of offset.
const cylinderRippleFrequency = 15.0

// CylinderLight restricts a directional light's emission to a cylinder
// of parallel rays around a central axis. Radiance fades smoothly with
// the perpendicular distance from the axis and is zero beyond Radius,
// modulated by a concentric ripple pattern.
type CylinderLight struct {
	Radiosity core.Vec3 // Color and strength of the light
	Origin    core.Vec3 // A point on the central axis of the beam
	Direction core.Vec3 // Unit direction the light travels in
	Radius    float64   // Radius of the beam cylinder
}

// NewCylinderLight creates a new cylinder light
func NewCylinderLight(radiosity, origin, direction core.Vec3, radius float64) *CylinderLight {
	return &CylinderLight{
		Radiosity: radiosity,
		Origin:    origin,
		Direction: direction,
		Radius:    radius,
	}
}

// Sample evaluates the light like a directional light, then attenuates
// by the shading point's perpendicular offset from the beam axis.
func (l *CylinderLight) Sample(point core.Vec3) LightSample {
	directional := DirectionalLight{Radiosity: l.Radiosity, Direction: l.Direction}
	sample := directional.Sample(point)

	// Perpendicular offset of the point from the beam axis
	toPoint := point.Subtract(l.Origin)
	alongAxis := l.Direction.Multiply(toPoint.Dot(l.Direction))
	offset := toPoint.Subtract(alongAxis).Length()

	attenuation := core.Smoothstep(0.0, 1.0, l.Radius-offset)
	ripple := 0.5 + 0.5*math.Sin(cylinderRippleFrequency*offset)
	sample.Radiance = sample.Radiance.Multiply(attenuation * ripple)

	return sample
}

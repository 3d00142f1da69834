package scene

import (
	"math"

	"github.com/hydrogencg/go-raycaster/pkg/core"
)

// newBaseScene creates the shared geometry for the default scenes: two
// unit spheres in front of the camera and a large sphere as the ground,
// under a dim ambient term.
func newBaseScene() *Scene {
	s := NewScene()
	s.Ambient.Radiance = core.NewVec3(0.01, 0.01, 0.01)

	s.AddSphere(core.NewVec3(0, 0, 4), 1.0, core.NewVec3(1, 0.5, 0.1))
	s.AddSphere(core.NewVec3(-1, 0, 2.5), 1.0, core.NewVec3(0.3, 1, 0.3))

	// A large sphere for the ground
	s.AddSphere(core.NewVec3(0, -1001, 0), 1000.0, core.NewVec3(0.1, 0.5, 1.0))

	return s
}

// NewPointLightScene creates the default geometry lit by a single point light
func NewPointLightScene() *Scene {
	s := newBaseScene()
	s.AddPointLight(core.NewVec3(30, 30, 30), core.NewVec3(2, 2, 2))
	return s
}

// NewDirectionalLightScene creates the default geometry lit by a single
// directional light aimed from above the spheres toward the scene
func NewDirectionalLightScene() *Scene {
	s := newBaseScene()
	direction := core.NewVec3(1, 0, 3).Subtract(core.NewVec3(2, 2, 2)).Normalize()
	s.AddDirectionalLight(core.NewVec3(3, 3, 3), direction)
	return s
}

// NewConeLightScene creates the default geometry lit by a cone light
// with a 45 degree half-angle
func NewConeLightScene() *Scene {
	s := newBaseScene()
	lightPos := core.NewVec3(2, 2, 2)
	direction := core.NewVec3(1, 0, 3).Subtract(lightPos).Normalize()
	s.AddConeLight(core.NewVec3(30, 30, 30), lightPos, direction, math.Cos(0.25*math.Pi))
	return s
}

// NewCylinderLightScene creates the default geometry lit by a cylinder
// light of radius 3
func NewCylinderLightScene() *Scene {
	s := newBaseScene()
	direction := core.NewVec3(1, 0, 3).Subtract(core.NewVec3(2, 2, 2)).Normalize()
	s.AddCylinderLight(core.NewVec3(3, 3, 3), core.NewVec3(2, 2, 2), direction, 3.0)
	return s
}

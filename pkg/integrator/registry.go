package integrator

import "fmt"

// Info describes a named integrator available to the composition root
type Info struct {
	Name        string
	Description string
	New         func() Integrator
}

// Registry returns the built-in integrators in display order
func Registry() []Info {
	return []Info{
		{"binary", "white where the ray hits anything, black elsewhere", func() Integrator { return Binary{} }},
		{"color", "surface color of the closest hit", func() Integrator { return Color{} }},
		{"inverse-distance", "grayscale 1/distance to the closest hit", func() Integrator { return InverseDistance{} }},
		{"normal", "facing normals mapped to RGB", func() Integrator { return Normal{} }},
		{"transparency", "surfaces as color filters, chased to the background", func() Integrator { return Transparency{} }},
		{"diffuse-local", "Lambertian direct lighting without shadows", func() Integrator { return DiffuseLocal{} }},
		{"diffuse-direct", "Lambertian direct lighting with shadow rays", func() Integrator { return DiffuseDirect{} }},
	}
}

// ByName builds the integrator registered under the given name
func ByName(name string) (Integrator, error) {
	for _, info := range Registry() {
		if info.Name == name {
			return info.New(), nil
		}
	}
	return nil, fmt.Errorf("unknown integrator %q", name)
}

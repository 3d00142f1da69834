package scene

import "fmt"

// Info describes a named scene available to the composition root
type Info struct {
	Name        string
	Description string
	New         func() *Scene
}

// Registry returns the built-in scenes in display order
func Registry() []Info {
	return []Info{
		{"point", "default geometry lit by a point light", NewPointLightScene},
		{"directional", "default geometry lit by a directional light", NewDirectionalLightScene},
		{"cone", "default geometry lit by a cone light", NewConeLightScene},
		{"cylinder", "default geometry lit by a cylinder light", NewCylinderLightScene},
	}
}

// ByName builds the scene registered under the given name
func ByName(name string) (*Scene, error) {
	for _, info := range Registry() {
		if info.Name == name {
			return info.New(), nil
		}
	}
	return nil, fmt.Errorf("unknown scene %q", name)
}

package shading

import (
	"fmt"
	"strings"

	"github.com/df07/go-pinhole-raytracer/pkg/core"
	"github.com/df07/go-pinhole-raytracer/pkg/geometry"
)

// Shader maps a camera ray to a linear RGB color
type Shader interface {
	Shade(ray core.Ray) (core.Vec3, error)
}

// World is the scene capability shaders need: the closest hit in front of the ray origin
type World interface {
	HitInFront(ray core.Ray) (*geometry.HitRecord, bool)
}

// Policy selects one of the built-in shaders
type Policy string

const (
	PolicySolid  Policy = "solid"  // Solid red where the ray hits, sky elsewhere
	PolicyNormal Policy = "normal" // Surface normal mapped to RGB, sky elsewhere
	PolicySky    Policy = "sky"    // Gradient sky only
)

// Policies lists the built-in policies in a stable order
func Policies() []Policy {
	return []Policy{PolicySolid, PolicyNormal, PolicySky}
}

// ParsePolicy converts a policy name into a Policy
func ParsePolicy(name string) (Policy, error) {
	for _, p := range Policies() {
		if strings.EqualFold(name, string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown shading policy %q", name)
}

// New creates the shader for a policy over the given world
func New(policy Policy, world World) (Shader, error) {
	switch policy {
	case PolicySolid:
		return NewSolidHit(world), nil
	case PolicyNormal:
		return NewNormalVisualization(world), nil
	case PolicySky:
		return NewGradientSky(), nil
	default:
		return nil, fmt.Errorf("unknown shading policy %q", policy)
	}
}

package shading

import (
	"fmt"

	"github.com/df07/go-pinhole-raytracer/pkg/core"
)

// NormalVisualization colors hits by their surface normal, mapped from [-1,1] to [0,1]
type NormalVisualization struct {
	World World
	Sky   Shader
}

// NewNormalVisualization creates a normal shader with the default sky behind it
func NewNormalVisualization(world World) *NormalVisualization {
	return &NormalVisualization{
		World: world,
		Sky:   NewGradientSky(),
	}
}

func (n *NormalVisualization) Shade(ray core.Ray) (core.Vec3, error) {
	hit, isHit := n.World.HitInFront(ray)
	if !isHit {
		return n.Sky.Shade(ray)
	}

	normal, err := hit.Shape.NormalAt(hit.Point)
	if err != nil {
		return core.Vec3{}, fmt.Errorf("normal visualization: %w", err)
	}
	return NormalToColor(normal), nil
}

// NormalToColor maps each component of a unit normal from [-1,1] to [0,1]
func NormalToColor(normal core.Vec3) core.Vec3 {
	return normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
}

package shading

import "github.com/df07/go-pinhole-raytracer/pkg/core"

// SolidRed is the color SolidHit paints hit pixels with
var SolidRed = core.NewColor(1.0, 0.0, 0.0)

// SolidHit paints every hit with a single color and falls back to the sky
type SolidHit struct {
	World World
	Color core.Vec3
	Sky   Shader
}

// NewSolidHit creates a red-on-sky shader
func NewSolidHit(world World) *SolidHit {
	return &SolidHit{
		World: world,
		Color: SolidRed,
		Sky:   NewGradientSky(),
	}
}

func (s *SolidHit) Shade(ray core.Ray) (core.Vec3, error) {
	if _, isHit := s.World.HitInFront(ray); isHit {
		return s.Color, nil
	}
	return s.Sky.Shade(ray)
}

package shading

import (
	"fmt"

	"github.com/df07/go-pinhole-raytracer/pkg/core"
)

// Default sky colors: white at the bottom of the gradient, light blue at the top
var (
	SkyWhite = core.NewColor(1.0, 1.0, 1.0)
	SkyBlue  = core.NewColor(0.5, 0.7, 1.0)
)

// GradientSky blends vertically between two colors based on ray direction
type GradientSky struct {
	Bottom core.Vec3 // Color for straight-down rays
	Top    core.Vec3 // Color for straight-up rays
}

// NewGradientSky creates the white to light-blue sky
func NewGradientSky() *GradientSky {
	return &GradientSky{Bottom: SkyWhite, Top: SkyBlue}
}

// Shade returns the sky color for the ray, ignoring the scene
func (g *GradientSky) Shade(ray core.Ray) (core.Vec3, error) {
	unitDirection, err := ray.Direction.Normalize()
	if err != nil {
		return core.Vec3{}, fmt.Errorf("gradient sky: %w", err)
	}

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return g.Bottom.Multiply(1.0 - t).Add(g.Top.Multiply(t)), nil
}

package scene

import (
	"github.com/df07/go-pinhole-raytracer/pkg/core"
	"github.com/df07/go-pinhole-raytracer/pkg/geometry"
)

// Default sphere placement: one focal length in front of the camera
var (
	DefaultSphereCenter = core.NewVec3(0, 0, -1)
	DefaultSphereRadius = 0.5
)

// NewDefaultScene creates the single-sphere scene
func NewDefaultScene() *Scene {
	return NewScene(geometry.NewSphere(DefaultSphereCenter, DefaultSphereRadius))
}

package scene

import (
	"math"

	"github.com/df07/go-pinhole-raytracer/pkg/core"
	"github.com/df07/go-pinhole-raytracer/pkg/geometry"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Shapes []geometry.Shape // Objects in the scene
}

// NewScene creates a scene from a list of shapes
func NewScene(shapes ...geometry.Shape) *Scene {
	return &Scene{Shapes: shapes}
}

// Hit returns the closest intersection with t in [tMin, tMax] across all shapes
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*geometry.HitRecord, bool) {
	var closestHit *geometry.HitRecord
	closestSoFar := tMax

	for _, shape := range s.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// HitInFront returns the closest intersection strictly in front of the ray origin
func (s *Scene) HitInFront(ray core.Ray) (*geometry.HitRecord, bool) {
	return s.Hit(ray, math.SmallestNonzeroFloat64, math.Inf(1))
}

// GetPrimitiveCount returns the number of shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}

package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-pinhole-raytracer/pkg/core"
)

// NoHit is the distance HitSphere reports when the ray misses
const NoHit = -1.0

// HitSphere solves |ray(t) - center|² = radius² and returns the nearest
// non-negative root, or NoHit when the ray misses the sphere or the sphere
// lies entirely behind the ray origin. The ray direction need not be unit length.
func HitSphere(center core.Vec3, radius float64, ray core.Ray) float64 {
	// Vector from ray origin to sphere center
	oc := center.Subtract(ray.Origin)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := -2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return NoHit
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-b - sqrtD) / (2.0 * a)
	if root >= 0 {
		return root
	}

	// Origin is inside or on the sphere
	root = (-b + sqrtD) / (2.0 * a)
	if root >= 0 {
		return root
	}
	return NoHit
}

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	t := HitSphere(s.Center, s.Radius, ray)
	if t == NoHit || !(t >= tMin && t <= tMax) {
		return nil, false
	}

	return &HitRecord{
		T:     t,
		Point: ray.At(t),
		Shape: s,
	}, true
}

// NormalAt returns the outward normal (point - center), normalized
func (s *Sphere) NormalAt(point core.Vec3) (core.Vec3, error) {
	normal, err := point.Subtract(s.Center).Normalize()
	if err != nil {
		return core.Vec3{}, fmt.Errorf("sphere normal at %v: %w", point, err)
	}
	return normal, nil
}

package geometry

import "github.com/df07/go-pinhole-raytracer/pkg/core"

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T     float64   // Parameter t along the ray
	Point core.Vec3 // Point of intersection
	Shape Shape     // Shape that was hit
}

// Shape interface for objects that can be hit by rays
type Shape interface {
	// Hit returns the nearest intersection with t in [tMin, tMax]
	Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool)
	// NormalAt returns the outward unit normal at a point on the surface
	NormalAt(point core.Vec3) (core.Vec3, error)
}

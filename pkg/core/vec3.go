package core

import (
	"errors"
	"fmt"
	"math"
)

// DegenerateEpsilon is the shortest length a vector may have and still be normalized
const DegenerateEpsilon = 1e-5

// ErrDegenerateVector is returned when normalizing a vector shorter than DegenerateEpsilon
var ErrDegenerateVector = errors.New("degenerate vector")

// Vec3 represents a 3D vector. It doubles as an RGB color, see R, G and B.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// NewColor creates a Vec3 holding linear RGB components
func NewColor(r, g, b float64) Vec3 {
	return Vec3{X: r, Y: g, Z: b}
}

// R returns the red channel of a color
func (v Vec3) R() float64 { return v.X }

// G returns the green channel of a color
func (v Vec3) G() float64 { return v.Y }

// B returns the blue channel of a color
func (v Vec3) B() float64 { return v.Z }

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Divide returns the vector divided by a scalar.
// The scalar must be non-zero; a zero divisor yields IEEE infinities or NaN.
func (v Vec3) Divide(scalar float64) Vec3 {
	return Vec3{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

// AddAssign adds other to v in place
func (v *Vec3) AddAssign(other Vec3) {
	*v = v.Add(other)
}

// SubtractAssign subtracts other from v in place
func (v *Vec3) SubtractAssign(other Vec3) {
	*v = v.Subtract(other)
}

// MultiplyAssign scales v in place
func (v *Vec3) MultiplyAssign(scalar float64) {
	*v = v.Multiply(scalar)
}

// DivideAssign divides v in place. Same precondition as Divide.
func (v *Vec3) DivideAssign(scalar float64) {
	*v = v.Divide(scalar)
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors (right-handed)
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.Dot(v)
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Normalize returns a unit vector in the same direction.
// Vectors shorter than DegenerateEpsilon cannot be normalized and yield ErrDegenerateVector.
func (v Vec3) Normalize() (Vec3, error) {
	length := v.Length()
	if length < DegenerateEpsilon {
		return Vec3{}, fmt.Errorf("normalize %v: %w", v, ErrDegenerateVector)
	}
	return v.Divide(length), nil
}

// String formats the vector for logs and test output
func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

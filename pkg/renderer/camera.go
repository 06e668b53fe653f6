package renderer

import (
	"errors"
	"fmt"

	"github.com/df07/go-pinhole-raytracer/pkg/core"
)

// Fixed pinhole geometry: the camera sits at the origin looking down -Z
const (
	DefaultViewportHeight = 2.0
	DefaultFocalLength    = 1.0
)

// ErrInvalidCamera is returned when a camera configuration cannot produce an image
var ErrInvalidCamera = errors.New("invalid camera configuration")

// CameraConfig contains the image parameters a render is driven by
type CameraConfig struct {
	Width       int     // Image width in pixels
	AspectRatio float64 // Width / height
}

// DefaultCameraConfig returns a 400 pixel wide 16:9 image
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Width:       400,
		AspectRatio: 16.0 / 9.0,
	}
}

// Viewport holds the per-render camera geometry. It is computed once per
// render and only read while pixels are shaded.
type Viewport struct {
	AspectRatio    float64
	ImageWidth     int
	ImageHeight    int
	FocalLength    float64
	ViewportWidth  float64
	ViewportHeight float64
	Center         core.Vec3 // Camera center
	PixelDeltaU    core.Vec3 // Step between horizontally adjacent pixel centers
	PixelDeltaV    core.Vec3 // Step between vertically adjacent pixel centers
	Pixel00        core.Vec3 // Center of the upper-left pixel
}

// NewViewport derives the viewport geometry from a camera configuration
func NewViewport(config CameraConfig) (Viewport, error) {
	if config.Width <= 0 || !(config.AspectRatio > 0) {
		return Viewport{}, fmt.Errorf("%w: width %d, aspect ratio %g", ErrInvalidCamera, config.Width, config.AspectRatio)
	}

	imageHeight := int(float64(config.Width) / config.AspectRatio)
	if imageHeight < 1 {
		return Viewport{}, fmt.Errorf("%w: width %d at aspect ratio %g gives zero height", ErrInvalidCamera, config.Width, config.AspectRatio)
	}

	viewportHeight := DefaultViewportHeight
	viewportWidth := config.AspectRatio * viewportHeight
	center := core.NewVec3(0, 0, 0)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := core.NewVec3(viewportWidth, 0, 0)
	viewportV := core.NewVec3(0, -viewportHeight, 0)

	pixelDeltaU := viewportU.Divide(float64(config.Width))
	pixelDeltaV := viewportV.Divide(float64(imageHeight))

	upperLeft := center.
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2)).
		Subtract(core.NewVec3(0, 0, DefaultFocalLength))
	pixel00 := upperLeft.Add(pixelDeltaU.Divide(2)).Add(pixelDeltaV.Divide(2))

	return Viewport{
		AspectRatio:    config.AspectRatio,
		ImageWidth:     config.Width,
		ImageHeight:    imageHeight,
		FocalLength:    DefaultFocalLength,
		ViewportWidth:  viewportWidth,
		ViewportHeight: viewportHeight,
		Center:         center,
		PixelDeltaU:    pixelDeltaU,
		PixelDeltaV:    pixelDeltaV,
		Pixel00:        pixel00,
	}, nil
}

// PixelCenter returns the world-space center of pixel (i, j), i counting columns
func (v Viewport) PixelCenter(i, j int) core.Vec3 {
	return v.Pixel00.
		Add(v.PixelDeltaU.Multiply(float64(i))).
		Add(v.PixelDeltaV.Multiply(float64(j)))
}

// GetRay returns the ray from the camera center through pixel (i, j)
func (v Viewport) GetRay(i, j int) core.Ray {
	return core.NewRay(v.Center, v.PixelCenter(i, j).Subtract(v.Center))
}

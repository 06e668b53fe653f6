package renderer

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/df07/go-pinhole-raytracer/pkg/core"
	"github.com/df07/go-pinhole-raytracer/pkg/shading"
)

// Raytracer renders one ray per pixel through a shading policy
type Raytracer struct {
	config CameraConfig
	shader shading.Shader
	logger core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards output.
func NewRaytracer(config CameraConfig, shader shading.Shader, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NopLogger{}
	}
	return &Raytracer{
		config: config,
		shader: shader,
		logger: logger,
	}
}

// Render shades every pixel in row-major order and returns the image.
// The first shading error abandons the render; no partial image is returned.
func (rt *Raytracer) Render() (*image.RGBA, RenderStats, error) {
	// Viewport is recomputed for every render
	viewport, err := NewViewport(rt.config)
	if err != nil {
		return nil, RenderStats{}, err
	}

	width, height := viewport.ImageWidth, viewport.ImageHeight
	rt.logger.Printf("Rendering %dx%d with %T\n", width, height, rt.shader)

	startTime := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			pixelColor, err := rt.shader.Shade(viewport.GetRay(i, j))
			if err != nil {
				return nil, RenderStats{}, fmt.Errorf("shading pixel (%d, %d): %w", i, j, err)
			}
			img.SetRGBA(i, j, ColorToRGBA(pixelColor))
		}
	}

	stats := RenderStats{
		Width:       width,
		Height:      height,
		TotalPixels: width * height,
		Elapsed:     time.Since(startTime),
	}
	rt.logger.Printf("Render completed in %v (%.0f pixels/s)\n", stats.Elapsed, stats.PixelsPerSecond())

	return img, stats, nil
}

// ColorToRGBA converts a linear color to 8-bit RGBA without clamping the color first.
// Each channel is 255*c truncated toward zero; results outside the byte range
// saturate (below 0 and NaN give 0, above 255 gives 255). Alpha is always 255.
func ColorToRGBA(c core.Vec3) color.RGBA {
	return color.RGBA{
		R: channelToByte(c.R()),
		G: channelToByte(c.G()),
		B: channelToByte(c.B()),
		A: 255,
	}
}

// channelToByte is a saturating float-to-uint8 cast of 255*c
func channelToByte(c float64) uint8 {
	v := math.Trunc(255 * c)
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}

package renderer

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/df07/go-pinhole-raytracer/pkg/core"
	"github.com/df07/go-pinhole-raytracer/pkg/shading"
)

// ErrImageWrite is returned when a rendered image cannot be written
var ErrImageWrite = errors.New("image write failed")

// SavePNG encodes img as PNG into filename
func SavePNG(filename string, img image.Image) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrImageWrite, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: closing %s: %w", ErrImageWrite, filename, closeErr)
		}
	}()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("%w: encoding %s: %w", ErrImageWrite, filename, err)
	}
	return nil
}

// RenderToFile renders a full image with the given shader and writes it as PNG.
// Nothing is written when the render fails.
func RenderToFile(filename string, config CameraConfig, shader shading.Shader, logger core.Logger) (RenderStats, error) {
	img, stats, err := NewRaytracer(config, shader, logger).Render()
	if err != nil {
		return RenderStats{}, err
	}

	if err := SavePNG(filename, img); err != nil {
		return RenderStats{}, err
	}
	return stats, nil
}

package renderer

import (
	"fmt"
	"image"

	"github.com/df07/go-pinhole-raytracer/pkg/core"
)

// RenderTestPattern fills an image with a UV gradient: red grows left to right,
// green grows bottom to top and blue is a constant 0.2.
func RenderTestPattern(width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: test pattern %dx%d", ErrInvalidCamera, width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			c := core.NewColor(
				float64(i)/float64(width),
				float64(height-j)/float64(height),
				0.2,
			)
			img.SetRGBA(i, j, ColorToRGBA(c))
		}
	}
	return img, nil
}

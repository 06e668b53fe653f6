package loaders

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png" // PNG decoder
	"os"
)

// ImageData contains loaded image data as 8-bit RGBA pixels in row-major order
type ImageData struct {
	Width  int
	Height int
	Format string
	Pixels []color.RGBA
}

// LoadImage loads a PNG image written by the renderer
func LoadImage(filename string) (*ImageData, error) {
	// Open file
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]color.RGBA, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pixels[y*width+x] = color.RGBAModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.RGBA)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Format: format,
		Pixels: pixels,
	}, nil
}

// At returns the pixel at column x, row y
func (d *ImageData) At(x, y int) color.RGBA {
	return d.Pixels[y*d.Width+x]
}

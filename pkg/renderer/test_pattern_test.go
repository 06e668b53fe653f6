package renderer

import (
	"errors"
	"image/color"
	"testing"
)

func TestRenderTestPattern(t *testing.T) {
	img, err := RenderTestPattern(200, 100)
	if err != nil {
		t.Fatalf("RenderTestPattern failed: %v", err)
	}

	tests := []struct {
		x, y     int
		expected color.RGBA
	}{
		{0, 0, color.RGBA{0, 255, 51, 255}},
		{100, 50, color.RGBA{127, 127, 51, 255}},
		{199, 99, color.RGBA{253, 2, 51, 255}},
	}

	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.expected {
			t.Errorf("Pixel (%d, %d): expected %v, got %v", tt.x, tt.y, tt.expected, got)
		}
	}
}

func TestRenderTestPattern_Invalid(t *testing.T) {
	if _, err := RenderTestPattern(0, 10); !errors.Is(err, ErrInvalidCamera) {
		t.Errorf("Expected ErrInvalidCamera, got %v", err)
	}
}

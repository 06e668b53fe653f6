package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-pinhole-raytracer/pkg/loaders"
	"github.com/df07/go-pinhole-raytracer/pkg/renderer"
)

func TestRenderAll(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "output")

	written, err := renderAll(outputDir, renderer.NopLogger{})
	if err != nil {
		t.Fatalf("renderAll failed: %v", err)
	}

	expected := []struct {
		name          string
		width, height int
	}{
		{"red_sphere.png", 400, 225},
		{"normal_sphere.png", 400, 225},
		{"blue_background.png", 400, 225},
		{"uv_gradient.png", 200, 100},
	}

	if len(written) != len(expected) {
		t.Fatalf("Expected %d files, got %d: %v", len(expected), len(written), written)
	}

	for i, tt := range expected {
		t.Run(tt.name, func(t *testing.T) {
			if written[i] != filepath.Join(outputDir, tt.name) {
				t.Errorf("Expected %s, got %s", filepath.Join(outputDir, tt.name), written[i])
			}
			img, err := loaders.LoadImage(written[i])
			if err != nil {
				t.Fatalf("LoadImage failed: %v", err)
			}
			if img.Width != tt.width || img.Height != tt.height {
				t.Errorf("Expected %dx%d, got %dx%d", tt.width, tt.height, img.Width, img.Height)
			}
		})
	}
}

func TestRenderAll_OutputDirIsFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "output")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create blocking file: %v", err)
	}

	written, err := renderAll(blocker, renderer.NopLogger{})
	if err == nil {
		t.Fatal("Expected error when output directory is a file")
	}
	if len(written) != 0 {
		t.Errorf("Expected no files written, got %v", written)
	}
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/df07/go-pinhole-raytracer/pkg/core"
	"github.com/df07/go-pinhole-raytracer/pkg/renderer"
	"github.com/df07/go-pinhole-raytracer/pkg/scene"
	"github.com/df07/go-pinhole-raytracer/pkg/shading"
)

// renderJob pairs a shading policy with the file it is written to
type renderJob struct {
	policy   shading.Policy
	filename string
}

var renderJobs = []renderJob{
	{shading.PolicySolid, "red_sphere.png"},
	{shading.PolicyNormal, "normal_sphere.png"},
	{shading.PolicySky, "blue_background.png"},
}

// testPatternFilename is the UV gradient written alongside the renders
const testPatternFilename = "uv_gradient.png"

func main() {
	fmt.Println("Starting Pinhole Raytracer...")

	outputDir := "output"
	written, err := renderAll(outputDir, renderer.NewDefaultLogger())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	for _, filename := range written {
		fmt.Printf("Render saved as %s\n", filename)
	}
}

// renderAll renders every policy plus the test pattern into outputDir and
// returns the written paths. It stops at the first failure.
func renderAll(outputDir string, logger core.Logger) ([]string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	world := scene.NewDefaultScene()
	config := renderer.DefaultCameraConfig()
	var written []string

	for _, job := range renderJobs {
		shader, err := shading.New(job.policy, world)
		if err != nil {
			return written, err
		}

		filename := filepath.Join(outputDir, job.filename)
		logger.Printf("Rendering %s policy to %s\n", job.policy, filename)
		if _, err := renderer.RenderToFile(filename, config, shader, logger); err != nil {
			return written, fmt.Errorf("rendering %s: %w", job.policy, err)
		}
		written = append(written, filename)
	}

	pattern, err := renderer.RenderTestPattern(200, 100)
	if err != nil {
		return written, err
	}
	filename := filepath.Join(outputDir, testPatternFilename)
	if err := renderer.SavePNG(filename, pattern); err != nil {
		return written, err
	}
	written = append(written, filename)

	return written, nil
}

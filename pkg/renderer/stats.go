package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width       int           // Image width in pixels
	Height      int           // Image height in pixels
	TotalPixels int           // Total number of pixels rendered
	Elapsed     time.Duration // Wall time spent shading
}

// PixelsPerSecond returns the shading throughput
func (s RenderStats) PixelsPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalPixels) / s.Elapsed.Seconds()
}

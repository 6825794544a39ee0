package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int           // Image width in pixels
	Height          int           // Image height in pixels
	Rows            int           // Rows completed
	SamplesPerPixel int           // Samples taken for every pixel
	TotalSamples    int           // Camera rays traced
	Workers         int           // Parallel workers used
	Seed            int64         // Base random seed
	Duration        time.Duration // Wall-clock render time
}

// TotalPixels returns the number of pixels in the image
func (s RenderStats) TotalPixels() int {
	return s.Width * s.Height
}

// SamplesPerSecond returns the camera ray throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}

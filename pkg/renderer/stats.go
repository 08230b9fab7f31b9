package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Pixels written to the framebuffer
	TotalSamples    int64         // Camera paths traced
	NonFinitePixels int           // Pixels whose estimate was NaN or infinite, written as black
	Workers         int           // Number of bands rendered in parallel
	Duration        time.Duration // Wall time of the render
}

// merge adds the counters of a finished band
func (s *RenderStats) merge(band BandStats) {
	s.TotalPixels += band.Pixels
	s.TotalSamples += band.Samples
	s.NonFinitePixels += band.NonFinitePixels
}

// BandStats contains the counters of a single band
type BandStats struct {
	Pixels          int
	Samples         int64
	NonFinitePixels int
	Duration        time.Duration
}

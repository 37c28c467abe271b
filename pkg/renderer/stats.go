package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Pixels traced
	HitPixels   int           // Pixels whose ray hit the sphere
	Tiles       int           // Tiles rendered
	Workers     int           // Parallel workers used
	Elapsed     time.Duration // Wall-clock render time
}

// merge accumulates per-tile pixel counts
func (s *RenderStats) merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.HitPixels += other.HitPixels
	s.Tiles++
}

// Coverage returns the fraction of pixels that hit the sphere
func (s RenderStats) Coverage() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.HitPixels) / float64(s.TotalPixels)
}

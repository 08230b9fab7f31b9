package integrator

import (
	"github.com/df07/go-smallpt/pkg/core"
	"github.com/df07/go-smallpt/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// Radiance estimates the light arriving along ray from the spheres.
	// The sampler is owned by the caller and must not be shared across goroutines.
	Radiance(ray core.Ray, spheres []geometry.Sphere, sampler core.Sampler) core.Vec3
}

// Config controls path termination and glass branching
type Config struct {
	MaxDepth                  int // Hard bounce cap; a path reaching it returns only the emission at that hit
	RussianRouletteMinBounces int // Roulette applies once depth exceeds this
	GlassSplitDepth           int // Glass evaluates both branches while depth is at most this
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxDepth:                  100,
		RussianRouletteMinBounces: 5,
		GlassSplitDepth:           2,
	}
}

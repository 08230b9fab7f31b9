package renderer

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/df07/go-smallpt/pkg/core"
	"github.com/df07/go-smallpt/pkg/geometry"
	"github.com/df07/go-smallpt/pkg/integrator"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

type discardLogger struct{}

func (discardLogger) Printf(string, ...interface{}) {}

// Config contains the image size and parallelism of a render
type Config struct {
	Width           int
	Height          int
	SamplesPerPixel int   // Paths traced in each cell of the 2x2 sub-pixel grid
	NumWorkers      int   // Number of row bands rendered in parallel (0 = logical core count)
	Seed            int64 // Band i samples with Seed + i
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           1024,
		Height:          768,
		SamplesPerPixel: 4,
		NumWorkers:      0,
		Seed:            42,
	}
}

// Validate reports configuration values that cannot produce an image
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	}
	return nil
}

// DefaultNumWorkers returns the number of logical cores
func DefaultNumWorkers() int {
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// Renderer renders spheres into a framebuffer using a pool of band workers
type Renderer struct {
	integrator integrator.Integrator
	config     Config
	logger     core.Logger
}

// NewRenderer creates a renderer. A nil logger discards output.
func NewRenderer(integratorInst integrator.Integrator, config Config, logger core.Logger) *Renderer {
	if logger == nil {
		logger = discardLogger{}
	}
	return &Renderer{
		integrator: integratorInst,
		config:     config,
		logger:     logger,
	}
}

// Render traces the image seen by camera. Each worker renders one band of
// rows into a private buffer; bands are stitched into the framebuffer once
// every worker has reported back. If a band fails the others are still
// written and the band errors are returned joined together. A cancelled
// context returns the context error and no framebuffer.
func (r *Renderer) Render(ctx context.Context, camera *Camera, spheres []geometry.Sphere) (*Framebuffer, RenderStats, error) {
	if err := r.config.Validate(); err != nil {
		return nil, RenderStats{}, err
	}
	start := time.Now()

	numWorkers := r.config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = DefaultNumWorkers()
	}
	bands := SplitBands(r.config.Height, numWorkers)

	bandRenderer := NewBandRenderer(camera, spheres, r.integrator, r.config.Width, r.config.Height, r.config.SamplesPerPixel)
	pool := NewWorkerPool(bandRenderer, len(bands), len(bands))

	r.logger.Printf("Rendering %dx%d with %d samples per sub-pixel using %d workers...\n",
		r.config.Width, r.config.Height, r.config.SamplesPerPixel, pool.GetNumWorkers())
	pool.Start(ctx)
	for _, band := range bands {
		pool.SubmitTask(BandTask{Band: band, Seed: r.config.Seed + int64(band.Index)})
	}

	fb := NewFramebuffer(r.config.Width, r.config.Height)
	stats := RenderStats{Workers: len(bands)}
	var errs []error

	for range bands {
		result, ok := pool.GetResult()
		if !ok {
			return nil, stats, fmt.Errorf("worker pool closed unexpectedly")
		}
		if result.Error != nil {
			errs = append(errs, result.Error)
			continue
		}

		r.writeBand(fb, result.Band, result.Pixels)
		stats.merge(result.Stats)
		r.logger.Printf("Band %d (rows %d-%d) completed in %v\n",
			result.Band.Index, result.Band.Start, result.Band.End, result.Stats.Duration)
	}
	pool.Stop()

	stats.Duration = time.Since(start)
	if err := ctx.Err(); err != nil {
		r.logger.Printf("Rendering cancelled after %v\n", stats.Duration)
		return nil, stats, err
	}
	if stats.NonFinitePixels > 0 {
		r.logger.Printf("Warning: %d pixels had non-finite radiance and were written black\n", stats.NonFinitePixels)
	}
	r.logger.Printf("Render completed in %v\n", stats.Duration)

	return fb, stats, errors.Join(errs...)
}

// writeBand copies a band buffer into the framebuffer. Internal row y lands
// on output row height-1-y, so the band occupies output rows
// [height-End, height-Start).
func (r *Renderer) writeBand(fb *Framebuffer, band Band, pixels []byte) {
	offset := fb.PixOffset(0, fb.Height-band.End)
	copy(fb.Pix[offset:offset+len(pixels)], pixels)
}

package renderer

import (
	"context"
	"time"

	"github.com/df07/go-smallpt/pkg/core"
	"github.com/df07/go-smallpt/pkg/geometry"
	"github.com/df07/go-smallpt/pkg/integrator"
)

// Band is a contiguous range of image rows [Start, End) counted from the
// bottom of the image
type Band struct {
	Index int
	Start int
	End   int
}

// Rows returns the number of rows in the band
func (b Band) Rows() int {
	return b.End - b.Start
}

// SplitBands partitions height rows into numWorkers contiguous bands of
// height/numWorkers rows. The remainder goes to the last band. The number of
// bands never exceeds the number of rows.
func SplitBands(height, numWorkers int) []Band {
	if height <= 0 {
		return nil
	}
	numWorkers = max(1, min(numWorkers, height))
	chunk := height / numWorkers

	bands := make([]Band, numWorkers)
	for i := range bands {
		bands[i] = Band{Index: i, Start: i * chunk, End: (i + 1) * chunk}
	}
	bands[numWorkers-1].End = height
	return bands
}

// BandRenderer handles the actual rendering of row bands using an integrator
type BandRenderer struct {
	camera          *Camera
	spheres         []geometry.Sphere
	integrator      integrator.Integrator
	width, height   int
	samplesPerPixel int
}

// NewBandRenderer creates a band renderer. The spheres are shared read-only
// by every band.
func NewBandRenderer(camera *Camera, spheres []geometry.Sphere, integratorInst integrator.Integrator, width, height, samplesPerPixel int) *BandRenderer {
	return &BandRenderer{
		camera:          camera,
		spheres:         spheres,
		integrator:      integratorInst,
		width:           width,
		height:          height,
		samplesPerPixel: samplesPerPixel,
	}
}

// RenderBand renders every pixel of the band into a private buffer laid out
// in output orientation: the first row of the buffer is the top row of the band.
// The context is checked between rows.
func (br *BandRenderer) RenderBand(ctx context.Context, band Band, sampler core.Sampler) ([]byte, BandStats, error) {
	start := time.Now()
	pix := make([]byte, 3*br.width*band.Rows())
	stats := BandStats{Pixels: br.width * band.Rows()}

	for y := band.Start; y < band.End; y++ {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}

		row := (band.End - 1 - y) * br.width * 3
		for x := 0; x < br.width; x++ {
			c := br.samplePixel(x, y, sampler)
			stats.Samples += int64(4 * br.samplesPerPixel)

			if !c.IsFinite() {
				stats.NonFinitePixels++
				c = core.Vec3{}
			}
			putColor(pix, row+x*3, c)
		}
	}

	stats.Duration = time.Since(start)
	return pix, stats, nil
}

// samplePixel averages samplesPerPixel tent-filtered paths in each cell of a
// 2x2 sub-pixel grid
func (br *BandRenderer) samplePixel(x, y int, sampler core.Sampler) core.Vec3 {
	colorAccum := core.Vec3{X: 0, Y: 0, Z: 0}

	for sy := 0; sy < 2; sy++ {
		for sx := 0; sx < 2; sx++ {
			for s := 0; s < br.samplesPerPixel; s++ {
				offset := sampler.Get2D()
				dx := TentFilter(2 * offset.X)
				dy := TentFilter(2 * offset.Y)
				ray := br.camera.GetRay(x, y, sx, sy, dx, dy)
				colorAccum = colorAccum.Add(br.integrator.Radiance(ray, br.spheres, sampler))
			}
		}
	}

	return colorAccum.Multiply(1.0 / float64(4*br.samplesPerPixel))
}

package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-smallpt/pkg/core"
)

// Gamma used when converting linear radiance to display bytes
const Gamma = 2.2

// Framebuffer holds the final RGB8 image. Rows are stored top to bottom,
// three bytes per pixel.
type Framebuffer struct {
	Width  int
	Height int
	Pix    []byte
}

// NewFramebuffer allocates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, 3*width*height),
	}
}

// PixOffset returns the index of the first byte of pixel (x, y), y = 0 being the top row
func (fb *Framebuffer) PixOffset(x, y int) int {
	return (y*fb.Width + x) * 3
}

// At returns the color of pixel (x, y), y = 0 being the top row
func (fb *Framebuffer) At(x, y int) color.RGBA {
	i := fb.PixOffset(x, y)
	return color.RGBA{R: fb.Pix[i], G: fb.Pix[i+1], B: fb.Pix[i+2], A: 255}
}

// ToImage converts the framebuffer into an image for external encoders
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.At(x, y))
		}
	}
	return img
}

// ToByte tone maps one linear channel: clamp to [0,1], gamma correct and
// round to [0,255]. NaN maps to 0.
func ToByte(v float64) byte {
	if math.IsNaN(v) {
		return 0
	}
	v = max(0, min(1, v))
	return byte(math.Pow(v, 1/Gamma)*255 + 0.5)
}

// putColor writes a tone mapped color at byte offset i
func putColor(pix []byte, i int, c core.Vec3) {
	pix[i] = ToByte(c.X)
	pix[i+1] = ToByte(c.Y)
	pix[i+2] = ToByte(c.Z)
}

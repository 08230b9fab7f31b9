package renderer

import (
	"math"
	"testing"
)

func TestToByte(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected byte
	}{
		{"black", 0, 0},
		{"white", 1, 255},
		{"over exposed", 12, 255},
		{"negative", -0.5, 0},
		{"NaN", math.NaN(), 0},
		{"positive infinity", math.Inf(1), 255},
		{"mid grey", 0.5, byte(math.Pow(0.5, 1/2.2)*255 + 0.5)},
		{"dark", 0.01, byte(math.Pow(0.01, 1/2.2)*255 + 0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToByte(tt.input); got != tt.expected {
				t.Errorf("Expected %d, got %d", tt.expected, got)
			}
		})
	}

	if ToByte(0.5) != 186 {
		t.Errorf("Expected 0.5 to map to 186, got %d", ToByte(0.5))
	}
}

func TestFramebuffer_LayoutAndImage(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	if len(fb.Pix) != 18 {
		t.Fatalf("Expected 18 bytes, got %d", len(fb.Pix))
	}

	// Pixel (2, 1) is the last pixel of the second row
	if fb.PixOffset(2, 1) != 15 {
		t.Errorf("Expected offset 15, got %d", fb.PixOffset(2, 1))
	}
	fb.Pix[15], fb.Pix[16], fb.Pix[17] = 10, 20, 30

	c := fb.At(2, 1)
	if c.R != 10 || c.G != 20 || c.B != 30 || c.A != 255 {
		t.Errorf("Unexpected color %v", c)
	}

	img := fb.ToImage()
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Errorf("Unexpected image bounds %v", img.Bounds())
	}
	if img.RGBAAt(2, 1) != c {
		t.Errorf("Expected image pixel %v, got %v", c, img.RGBAAt(2, 1))
	}
	if img.RGBAAt(0, 0).A != 255 {
		t.Error("Expected opaque image")
	}
}

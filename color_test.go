package wavefield

import (
	"testing"

	"github.com/gogpu/wavefield/colorspace"
)

func TestRGBFromOctets(t *testing.T) {
	tests := []struct {
		name string
		c    colorspace.ColorU8
		want RGB
	}{
		{"black", colorspace.ColorU8{A: 255}, RGB{}},
		{"white", colorspace.ColorU8{R: 255, G: 255, B: 255}, RGB{R: 1, G: 1, B: 1}},
		{"alpha dropped", colorspace.ColorU8{R: 255, A: 7}, RGB{R: 1}},
		{"mid", colorspace.ColorU8{R: 51, G: 102, B: 204}, RGB{R: 0.2, G: 0.4, B: 0.8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBFromOctets(tt.c); got != tt.want {
				t.Errorf("RGBFromOctets(%v) = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestRGB_Octets(t *testing.T) {
	tests := []struct {
		name  string
		c     RGB
		alpha uint8
		want  colorspace.ColorU8
	}{
		{"black opaque", RGB{}, 255, colorspace.ColorU8{A: 255}},
		{"white translucent", RGB{R: 1, G: 1, B: 1}, 128, colorspace.ColorU8{R: 255, G: 255, B: 255, A: 128}},
		{"out of range clamps", RGB{R: 2, G: -1, B: 0.5}, 0, colorspace.ColorU8{R: 255, G: 0, B: 128}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Octets(tt.alpha); got != tt.want {
				t.Errorf("%v.Octets(%d) = %v, want %v", tt.c, tt.alpha, got, tt.want)
			}
		})
	}
}

func TestRGB_RoundTrip(t *testing.T) {
	for v := 0; v <= 255; v++ {
		c := colorspace.ColorU8{R: uint8(v), G: uint8(255 - v), B: uint8(v / 2), A: 255}
		if got := RGBFromOctets(c).Octets(255); got != c {
			t.Fatalf("round trip of %v = %v", c, got)
		}
	}
}

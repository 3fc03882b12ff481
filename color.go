package wavefield

import (
	"github.com/gogpu/wavefield/colorspace"
)

// RGB is a color with red, green and blue components in [0, 1].
type RGB struct {
	R, G, B float32
}

// RGBFromOctets converts an 8-bit color to RGB, dropping alpha.
func RGBFromOctets(c colorspace.ColorU8) RGB {
	return RGB{
		R: colorspace.OctetToDecimal(int(c.R)),
		G: colorspace.OctetToDecimal(int(c.G)),
		B: colorspace.OctetToDecimal(int(c.B)),
	}
}

// Octets converts the color to 8 bits per channel with the given alpha.
func (c RGB) Octets(alpha uint8) colorspace.ColorU8 {
	u := colorspace.F32ToU8(colorspace.ColorF32{R: c.R, G: c.G, B: c.B})
	u.A = alpha
	return u
}

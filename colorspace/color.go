package colorspace

import (
	"github.com/lucasb-eyer/go-colorful"
)

// ColorF32 represents a color with float32 components in [0,1].
type ColorF32 struct {
	R, G, B, A float32
}

// ColorU8 represents a non-premultiplied color with uint8 components.
type ColorU8 struct {
	R, G, B, A uint8
}

// RGBA implements image/color.Color. The stored channels are not
// premultiplied, so the result is scaled by alpha.
func (c ColorU8) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A)
	a |= a << 8
	r = uint32(c.R)
	r |= r << 8
	r = r * a / 0xffff
	g = uint32(c.G)
	g |= g << 8
	g = g * a / 0xffff
	b = uint32(c.B)
	b |= b << 8
	b = b * a / 0xffff
	return r, g, b, a
}

// Hex returns the color as "#rrggbb", ignoring alpha.
func (c ColorU8) Hex() string {
	return colorful.Color{
		R: float64(c.R) / MaxOctet,
		G: float64(c.G) / MaxOctet,
		B: float64(c.B) / MaxOctet,
	}.Hex()
}

// WithAlpha returns c with its alpha channel replaced by BoundedOctet(a).
func (c ColorU8) WithAlpha(a int) ColorU8 {
	c.A = uint8(BoundedOctet(a)) //nolint:gosec // bounded to [0,255]
	return c
}

// U8ToF32 converts ColorU8 to ColorF32.
// Each uint8 component [0,255] is mapped to float32 [0,1].
func U8ToF32(c ColorU8) ColorF32 {
	return ColorF32{
		R: OctetToDecimal(int(c.R)),
		G: OctetToDecimal(int(c.G)),
		B: OctetToDecimal(int(c.B)),
		A: OctetToDecimal(int(c.A)),
	}
}

// F32ToU8 converts ColorF32 to ColorU8, clamping and rounding each component.
func F32ToU8(c ColorF32) ColorU8 {
	return ColorU8{
		R: octet(c.R),
		G: octet(c.G),
		B: octet(c.B),
		A: octet(c.A),
	}
}

func octet(v float32) uint8 {
	return uint8(DecimalToOctet(v)) //nolint:gosec // DecimalToOctet is bounded to [0,255]
}

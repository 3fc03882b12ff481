// Package colormap maps normalized scalars to colors.
//
// The visible spectrum colormap is a least squares polynomial fit of a
// violet-to-red gradient. Each channel is a quartic in the sample position,
// rounded and bounded to an octet.
package colormap

import (
	"math"

	"github.com/gogpu/wavefield/colorspace"
)

// Colormap maps a value in [0, 1] to a color. Values outside the interval
// are clamped.
type Colormap interface {
	Sample(p float32) colorspace.ColorU8
}

// Spectrum is the visible spectrum colormap.
type Spectrum struct{}

// Sample implements Colormap.
func (Spectrum) Sample(p float32) colorspace.ColorU8 {
	return VisibleSpectrum(p)
}

// VisibleSpectrum returns an opaque color sampled from the visible spectrum.
func VisibleSpectrum(p float32) colorspace.ColorU8 {
	x := float64(colorspace.BoundedDecimal(p))
	x2 := math.Pow(x, 2)
	x3 := math.Pow(x, 3)
	x4 := math.Pow(x, 4)

	// red: 1.85813 + 1459.45x - 9472.85x^2 + 18540.8x^3 - 10572.3x^4
	r := quartic(1.85813, 1459.45, -9472.85, 18540.8, -10572.3, x, x2, x3, x4)
	// green: 18.673 - 911.549x + 7267.87x^2 - 12198.1x^3 + 5826.59x^4
	g := quartic(18.673, -911.549, 7267.87, -12198.1, 5826.59, x, x2, x3, x4)
	// blue: -43.5676 + 3460.92x - 13727.5x^2 + 18104.7x^3 - 7826.49x^4
	b := quartic(-43.5676, 3460.92, -13727.5, 18104.7, -7826.49, x, x2, x3, x4)

	return colorspace.ColorU8{R: channel(r), G: channel(g), B: channel(b), A: colorspace.MaxOctet}
}

// VisibleSpectrumWithAlpha is VisibleSpectrum with alpha replaced by
// BoundedOctet(a).
func VisibleSpectrumWithAlpha(p float32, a int) colorspace.ColorU8 {
	return VisibleSpectrum(p).WithAlpha(a)
}

// quartic sums the terms left to right. The float64 conversions keep the
// compiler from fusing multiply-adds so results are identical on every
// architecture.
func quartic(c0, c1, c2, c3, c4, x, x2, x3, x4 float64) float64 {
	v := c0 + float64(c1*x)
	v = v + float64(c2*x2)
	v = v + float64(c3*x3)
	return v + float64(c4*x4)
}

// channel narrows the polynomial value to float32 before rounding, then
// bounds it to an octet.
func channel(v float64) uint8 {
	return uint8(colorspace.BoundedOctet(colorspace.Round(float32(v)))) //nolint:gosec // bounded to [0,255]
}

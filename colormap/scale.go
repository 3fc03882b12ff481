package colormap

import "github.com/gogpu/wavefield/colorspace"

// AltitudeScale colors a value by its fraction of a maximum altitude.
type AltitudeScale struct {
	cm  Colormap
	max float64
}

// NewAltitudeScale returns a scale over [0, maxAltitude] using the spectrum.
// A non-positive maxAltitude is replaced with 1.
func NewAltitudeScale(maxAltitude float64) AltitudeScale {
	if maxAltitude <= 0 {
		maxAltitude = 1
	}
	return AltitudeScale{cm: Spectrum{}, max: maxAltitude}
}

// Max returns the altitude mapped to the top of the colormap.
func (s AltitudeScale) Max() float64 { return s.max }

// Color returns the color for altitude.
func (s AltitudeScale) Color(altitude float64) colorspace.ColorU8 {
	return s.cm.Sample(float32(altitude) / float32(s.max))
}

// IndexScale colors the i-th of count points.
type IndexScale struct {
	cm    Colormap
	count int
}

// NewIndexScale returns a scale over count points using the spectrum.
// A non-positive count is replaced with 1.
func NewIndexScale(count int) IndexScale {
	if count <= 0 {
		count = 1
	}
	return IndexScale{cm: Spectrum{}, count: count}
}

// Count returns the number of points the scale spans.
func (s IndexScale) Count() int { return s.count }

// Color returns the color of point index. Negative indices use index 0.
func (s IndexScale) Color(index int) colorspace.ColorU8 {
	if index < 0 {
		index = 0
	}
	return s.cm.Sample(float32(index) / float32(s.count))
}

// Legend returns n hex color stops evenly spaced over [0, 1].
func Legend(cm Colormap, n int) []string {
	if n <= 0 {
		return nil
	}
	stops := make([]string, n)
	if n == 1 {
		stops[0] = cm.Sample(0).Hex()
		return stops
	}
	for i := 0; i < n; i++ {
		stops[i] = cm.Sample(float32(i) / float32(n-1)).Hex()
	}
	return stops
}

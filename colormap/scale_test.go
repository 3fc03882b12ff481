package colormap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAltitudeScale(t *testing.T) {
	s := NewAltitudeScale(1000)
	assert.Equal(t, 1000.0, s.Max())
	assert.Equal(t, VisibleSpectrum(0.5), s.Color(500))
	assert.Equal(t, VisibleSpectrum(1), s.Color(5000))
}

func TestAltitudeScaleNonPositiveMax(t *testing.T) {
	for _, m := range []float64{0, -10} {
		s := NewAltitudeScale(m)
		assert.Equal(t, 1.0, s.Max())
		assert.Equal(t, VisibleSpectrum(0.25), s.Color(0.25))
	}
}

func TestIndexScale(t *testing.T) {
	s := NewIndexScale(4)
	assert.Equal(t, 4, s.Count())
	assert.Equal(t, VisibleSpectrum(0.25), s.Color(1))
	assert.Equal(t, VisibleSpectrum(0), s.Color(-3))
	assert.Equal(t, VisibleSpectrum(1), s.Color(4))

	assert.Equal(t, 1, NewIndexScale(0).Count())
	assert.Equal(t, 1, NewIndexScale(-2).Count())
}

func TestLegend(t *testing.T) {
	assert.Nil(t, Legend(Spectrum{}, 0))
	assert.Equal(t, []string{VisibleSpectrum(0).Hex()}, Legend(Spectrum{}, 1))

	stops := Legend(Spectrum{}, 3)
	assert.Equal(t, []string{"#021300", "#14db1d", "#000300"}, stops)
}

package wavefield

import (
	"testing"

	"github.com/gogpu/wavefield/colormap"
	"github.com/gogpu/wavefield/colorspace"
)

func TestDefaultFieldOptions(t *testing.T) {
	o := defaultFieldOptions()
	if o.caching {
		t.Error("caching should be off by default")
	}
	if o.capacity != 0 {
		t.Errorf("capacity = %d, want 0", o.capacity)
	}
	if _, ok := o.colormap.(colormap.Spectrum); !ok {
		t.Errorf("colormap = %T, want colormap.Spectrum", o.colormap)
	}
}

func TestWithCaching(t *testing.T) {
	f := NewField(WithCaching(true))
	if !f.CachingEnabled() {
		t.Error("WithCaching(true) did not enable caching")
	}
	if NewField().CachingEnabled() {
		t.Error("NewField() should not cache")
	}
}

func TestWithCacheCapacity(t *testing.T) {
	f := NewField(WithCaching(true), WithCacheCapacity(3))
	s := f.CacheStats()
	for name, st := range map[string]int{"magnitudes": s.Magnitudes.Capacity, "colors": s.Colors.Capacity, "images": s.Images.Capacity} {
		if st != 3 {
			t.Errorf("%s capacity = %d, want 3", name, st)
		}
	}
}

func TestWithColormap(t *testing.T) {
	f := NewField(WithColormap(grayColormap{}))
	p := Params{Width: 4, Height: 2, GridIncrement: 1, TotalFrames: 2}

	colors, err := f.Colors(p)
	if err != nil {
		t.Fatalf("Colors: %v", err)
	}
	// Every magnitude of this frame is 0.5.
	want := colorspace.OctetToDecimal(128)
	for _, row := range colors {
		for _, c := range row {
			if c.R != want || c.G != want || c.B != want {
				t.Fatalf("color = %v, want gray %v", c, want)
			}
		}
	}
}

func TestWithColormapNilIgnored(t *testing.T) {
	f := NewField(WithColormap(nil))
	if _, ok := f.cm.(colormap.Spectrum); !ok {
		t.Errorf("colormap = %T, want colormap.Spectrum", f.cm)
	}
}

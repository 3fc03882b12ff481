package wavefield

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/wavefield/colorspace"
)

// Verify at compile time that Pixmap implements image.Image.
var _ image.Image = (*Pixmap)(nil)

func TestNewPixmapInvalid(t *testing.T) {
	for _, sz := range []struct{ w, h int }{{0, 1}, {1, 0}, {-3, 4}} {
		if _, err := NewPixmap(sz.w, sz.h); !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("NewPixmap(%d, %d) error = %v, want ErrInvalidDimension", sz.w, sz.h, err)
		}
	}
}

func TestPixmapSetGetPixel(t *testing.T) {
	pm, err := NewPixmap(10, 10)
	if err != nil {
		t.Fatal(err)
	}

	c := colorspace.ColorU8{R: 128, G: 64, B: 32, A: 200}
	pm.SetPixel(5, 5, c)

	i := (5*10 + 5) * 4
	data := pm.Data()
	if data[i+0] != 128 || data[i+1] != 64 || data[i+2] != 32 || data[i+3] != 200 {
		t.Errorf("raw data mismatch: got (%d, %d, %d, %d), want (128, 64, 32, 200)",
			data[i+0], data[i+1], data[i+2], data[i+3])
	}
	if got := pm.GetPixel(5, 5); got != c {
		t.Errorf("GetPixel(5, 5) = %v, want %v", got, c)
	}
	if got := pm.At(5, 5); got != (color.NRGBA{R: 128, G: 64, B: 32, A: 200}) {
		t.Errorf("At(5, 5) = %v", got)
	}
}

// TestPixmapOutOfBounds verifies out-of-bounds coordinates are silently ignored.
func TestPixmapOutOfBounds(t *testing.T) {
	pm, err := NewPixmap(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	pm.Fill(colorspace.ColorU8{A: 255})

	original := make([]uint8, len(pm.Data()))
	copy(original, pm.Data())

	oob := []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10},
		{-100, -100}, {100, 100},
	}
	for _, c := range oob {
		pm.SetPixel(c.x, c.y, colorspace.ColorU8{R: 255, A: 255})
		if got := pm.GetPixel(c.x, c.y); got != (colorspace.ColorU8{}) {
			t.Errorf("GetPixel(%d, %d) = %v, want transparent", c.x, c.y, got)
		}
	}

	for i, v := range pm.Data() {
		if v != original[i] {
			t.Fatalf("data modified at byte %d", i)
		}
	}
}

func TestPixmapImage(t *testing.T) {
	pm, err := NewPixmap(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	pm.Fill(colorspace.ColorU8{R: 1, G: 2, B: 3, A: 4})

	if pm.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("Bounds() = %v", pm.Bounds())
	}
	if pm.ColorModel() != color.NRGBAModel {
		t.Error("ColorModel() is not NRGBAModel")
	}

	img := pm.ToImage()
	if got := img.NRGBAAt(2, 1); got != (color.NRGBA{R: 1, G: 2, B: 3, A: 4}) {
		t.Errorf("ToImage pixel = %v", got)
	}
}

func TestPixmapSavePNG(t *testing.T) {
	pm, err := SolidSurface(4, 4, colorspace.ColorU8{R: 200, G: 100, B: 50, A: 255})
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "solid.png")
	if err := pm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	r, g, b, a := img.At(3, 3).RGBA()
	if r>>8 != 200 || g>>8 != 100 || b>>8 != 50 || a>>8 != 255 {
		t.Errorf("decoded pixel = (%d, %d, %d, %d)", r>>8, g>>8, b>>8, a>>8)
	}
}

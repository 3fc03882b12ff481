package wavefield

import (
	"math"

	"github.com/gogpu/wavefield/cache"
	"github.com/gogpu/wavefield/colormap"
	"github.com/gogpu/wavefield/colorspace"
)

// Field generates frames of a two-dimensional traveling sine wave.
//
// The surface is 0.5*sin(x)*sin(y) + 0.5 over one period in each direction,
// shifted by FrameIndex/(TotalFrames-1) and wrapped into [0, 1). Stepping
// the frame index from 0 to TotalFrames-1 moves the wave through one cycle.
//
// With caching enabled, magnitudes, colors and images are kept per frame
// index. The frame index is the only key: asking for a cached frame with a
// different size, grid increment, frame count or alpha returns the result
// computed for the first request. Unbounded caches grow with every new
// frame and can consume significant amounts of memory.
//
// Returned grids and pixmaps may be shared with the cache and must not be
// modified.
//
// A Field is not safe for concurrent use. Give each rendering goroutine its
// own Field.
type Field struct {
	cm      colormap.Colormap
	caching bool

	magnitudes *cache.Frames[MagnitudeGrid]
	colors     *cache.Frames[ColorGrid]
	images     *cache.Frames[*Pixmap]
}

// CacheStats groups the statistics of the three per-frame caches.
type CacheStats struct {
	Magnitudes cache.Stats
	Colors     cache.Stats
	Images     cache.Stats
}

// NewField creates a field generator.
func NewField(opts ...FieldOption) *Field {
	o := defaultFieldOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Field{
		cm:         o.colormap,
		caching:    o.caching,
		magnitudes: cache.New[MagnitudeGrid](o.capacity),
		colors:     cache.New[ColorGrid](o.capacity),
		images:     cache.New[*Pixmap](o.capacity),
	}
}

// CachingEnabled reports whether results are cached.
func (f *Field) CachingEnabled() bool {
	return f.caching
}

// SetCachingEnabled turns caching on or off. Turning it off drops every
// cached magnitude grid, color grid and image.
func (f *Field) SetCachingEnabled(enabled bool) {
	f.caching = enabled
	if !enabled {
		f.magnitudes.Clear()
		f.colors.Clear()
		f.images.Clear()
		Logger().Debug("caching disabled")
		return
	}
	Logger().Debug("caching enabled")
}

// CacheStats returns the statistics of the per-frame caches.
func (f *Field) CacheStats() CacheStats {
	return CacheStats{
		Magnitudes: f.magnitudes.Stats(),
		Colors:     f.colors.Stats(),
		Images:     f.images.Stats(),
	}
}

// Magnitudes returns the Height x Width grid of the frame, every value in
// [0, 1) for non-negative frame indices.
func (f *Field) Magnitudes(p Params) (MagnitudeGrid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if f.caching {
		if g, ok := f.magnitudes.Get(p.FrameIndex); ok {
			Logger().Debug("frame cache hit", "kind", "magnitudes", "frame", p.FrameIndex)
			return g, nil
		}
	}

	g := magnitudes(p)
	if f.caching {
		f.magnitudes.Set(p.FrameIndex, g)
	}
	return g, nil
}

// magnitudes evaluates the wave. Positions and the shift are float32 while
// the sines are taken in float64.
func magnitudes(p Params) MagnitudeGrid {
	xScalar := float64(p.Width) / (2 * math.Pi)
	yScalar := float64(p.Height) / (2 * math.Pi)
	shift := p.Shift()

	grid := make(MagnitudeGrid, p.Height)
	y := -0.5 * float32(p.Height)
	for row := range grid {
		dy := math.Sin(float64(y) / yScalar)

		cells := make([]float32, p.Width)
		x := -0.5 * float32(p.Width)
		for col := range cells {
			dx := math.Sin(float64(x) / xScalar)
			raw := float32(float64(0.5*dx*dy) + 0.5)
			// math.Mod truncates like the % operator on floats.
			cells[col] = float32(math.Mod(float64(raw+shift), 1))
			x += p.GridIncrement
		}

		grid[row] = cells
		y += p.GridIncrement
	}
	return grid
}

// Colors maps every magnitude of the frame through the colormap.
func (f *Field) Colors(p Params) (ColorGrid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if f.caching {
		if g, ok := f.colors.Get(p.FrameIndex); ok {
			Logger().Debug("frame cache hit", "kind", "colors", "frame", p.FrameIndex)
			return g, nil
		}
	}

	mags, err := f.Magnitudes(p)
	if err != nil {
		return nil, err
	}

	// Iterate the magnitude grid itself: a cached grid may be stale and
	// sized differently from p.
	grid := make(ColorGrid, len(mags))
	for row, values := range mags {
		cells := make([]RGB, len(values))
		for col, m := range values {
			cells[col] = RGBFromOctets(f.cm.Sample(m))
		}
		grid[row] = cells
	}

	if f.caching {
		f.colors.Set(p.FrameIndex, grid)
	}
	return grid, nil
}

// Rasterize renders the frame as a Width x Height pixmap. Every pixel has
// the alpha BoundedDecimal(alphaWeight) scaled to an octet.
func (f *Field) Rasterize(p Params, alphaWeight float32) (*Pixmap, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if f.caching {
		if pm, ok := f.images.Get(p.FrameIndex); ok {
			Logger().Debug("frame cache hit", "kind", "image", "frame", p.FrameIndex)
			return pm, nil
		}
	}

	colors, err := f.Colors(p)
	if err != nil {
		return nil, err
	}

	pm, err := NewPixmap(p.Width, p.Height)
	if err != nil {
		return nil, err
	}
	alpha := uint8(colorspace.DecimalToOctet(colorspace.BoundedDecimal(alphaWeight))) //nolint:gosec // bounded to [0,255]
	for y, row := range colors {
		for x, c := range row {
			pm.SetPixel(x, y, c.Octets(alpha))
		}
	}

	if f.caching {
		f.images.Set(p.FrameIndex, pm)
	}
	return pm, nil
}

// SolidSurface returns a width x height pixmap filled with c.
func SolidSurface(width, height int, c colorspace.ColorU8) (*Pixmap, error) {
	pm, err := NewPixmap(width, height)
	if err != nil {
		return nil, err
	}
	pm.Fill(c)
	return pm, nil
}

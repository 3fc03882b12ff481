// Package wavefield generates the frames of an animated, periodic,
// two-dimensional traveling sine-wave surface.
//
// # Overview
//
// A frame is described by Params: a grid of Width x Height cells spaced
// GridIncrement apart, and a FrameIndex out of TotalFrames. For each frame
// a Field produces
//   - a MagnitudeGrid of normalized values in [0, 1),
//   - a ColorGrid sampled from the visible spectrum colormap,
//   - a Pixmap with one RGBA pixel per cell and a uniform alpha.
//
// # Quick Start
//
//	import "github.com/gogpu/wavefield"
//
//	f := wavefield.NewField()
//	pm, err := f.Rasterize(wavefield.Params{
//	    Width: 500, Height: 500, GridIncrement: 1,
//	    TotalFrames: 100, FrameIndex: 0,
//	}, 1.0)
//	if err != nil {
//	    return err
//	}
//	pm.SavePNG("frame.png")
//
// # Caching
//
// NewField(WithCaching(true)) keeps every computed frame. Entries are keyed
// by frame index alone, so a Field should be used with fixed dimensions
// while caching is on. WithCacheCapacity bounds the caches.
//
// # Architecture
//
// The module is organized into:
//   - wavefield: Field, Params, grids, Pixmap, point meshes
//   - colorspace: octet/decimal channel conversion
//   - colormap: visible spectrum and scalar scales
//   - cache: per-frame caches
//   - geo: latitude/longitude wrapping, sectors and corner editing
//   - animation: frame stepping at a fixed rate
//   - export: image encoders and grid dumps
package wavefield

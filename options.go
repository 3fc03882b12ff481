package wavefield

import "github.com/gogpu/wavefield/colormap"

// FieldOption configures a Field during creation.
//
// Example:
//
//	// Uncached spectrum field
//	f := wavefield.NewField()
//
//	// Cached field keeping at most 50 frames per artifact
//	f := wavefield.NewField(wavefield.WithCaching(true), wavefield.WithCacheCapacity(50))
type FieldOption func(*fieldOptions)

// fieldOptions holds optional configuration for Field creation.
type fieldOptions struct {
	caching  bool
	capacity int
	colormap colormap.Colormap
}

// defaultFieldOptions returns the default field options.
func defaultFieldOptions() fieldOptions {
	return fieldOptions{
		colormap: colormap.Spectrum{},
	}
}

// WithCaching sets the initial caching state. Caching is off by default.
func WithCaching(enabled bool) FieldOption {
	return func(o *fieldOptions) {
		o.caching = enabled
	}
}

// WithCacheCapacity bounds each per-frame cache to n entries, evicting the
// least recently used frame. n <= 0 keeps the caches unbounded.
func WithCacheCapacity(n int) FieldOption {
	return func(o *fieldOptions) {
		o.capacity = n
	}
}

// WithColormap replaces the visible spectrum colormap. A nil colormap is
// ignored.
func WithColormap(cm colormap.Colormap) FieldOption {
	return func(o *fieldOptions) {
		if cm != nil {
			o.colormap = cm
		}
	}
}

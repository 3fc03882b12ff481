package wavefield

import "fmt"

// Params selects one frame of a field.
type Params struct {
	Width         int     `msgpack:"width"`
	Height        int     `msgpack:"height"`
	GridIncrement float32 `msgpack:"grid_increment"`
	TotalFrames   int     `msgpack:"total_frames"`
	FrameIndex    int     `msgpack:"frame_index"`
}

// Validate reports whether p describes a computable frame. The frame index
// is not bounded: indices outside [0, TotalFrames) extrapolate the phase
// shift.
func (p Params) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidDimension, p.Width, p.Height)
	}
	if !(p.GridIncrement > 0) {
		return fmt.Errorf("%w: grid increment %v", ErrInvalidDimension, p.GridIncrement)
	}
	if p.TotalFrames <= 1 {
		return fmt.Errorf("%w: %d total frames", ErrInvalidFrameCount, p.TotalFrames)
	}
	return nil
}

// Shift returns the phase shift of the frame, FrameIndex/(TotalFrames-1).
func (p Params) Shift() float32 {
	return float32(p.FrameIndex) / float32(p.TotalFrames-1)
}

// MagnitudeGrid holds normalized magnitudes, one row per vertical grid line
// starting at the top.
type MagnitudeGrid [][]float32

// Rows returns the number of rows.
func (g MagnitudeGrid) Rows() int { return len(g) }

// Cols returns the length of the first row, or 0 for an empty grid.
func (g MagnitudeGrid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// At returns the magnitude at row, col.
func (g MagnitudeGrid) At(row, col int) float32 { return g[row][col] }

// ColorGrid has the shape of a MagnitudeGrid with one RGB color per cell.
type ColorGrid [][]RGB

// Rows returns the number of rows.
func (g ColorGrid) Rows() int { return len(g) }

// Cols returns the length of the first row, or 0 for an empty grid.
func (g ColorGrid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// At returns the color at row, col.
func (g ColorGrid) At(row, col int) RGB { return g[row][col] }

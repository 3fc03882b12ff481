package wavefield

import "errors"

var (
	// ErrInvalidDimension is returned when width, height or grid increment
	// is not positive.
	ErrInvalidDimension = errors.New("wavefield: invalid dimension")

	// ErrInvalidFrameCount is returned when the total frame count is below 2.
	ErrInvalidFrameCount = errors.New("wavefield: invalid frame count")
)

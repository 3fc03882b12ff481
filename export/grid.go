package export

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/gogpu/wavefield"
)

// GridDump is a magnitude grid together with the parameters that produced it.
type GridDump struct {
	Params     wavefield.Params        `msgpack:"params"`
	Magnitudes wavefield.MagnitudeGrid `msgpack:"magnitudes"`
}

// WriteGrid writes d as zstd-compressed msgpack.
func WriteGrid(w io.Writer, d GridDump) error {
	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %w", err)
	}

	if err := msgpack.NewEncoder(zw).Encode(d); err != nil {
		_ = zw.Close()
		return fmt.Errorf("failed to encode grid: %w", err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to close zstd writer: %w", err)
	}
	return nil
}

// ReadGrid reads a dump written by WriteGrid.
func ReadGrid(r io.Reader) (GridDump, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return GridDump{}, fmt.Errorf("failed to create zstd reader: %w", err)
	}
	defer zr.Close()

	var d GridDump
	if err := msgpack.NewDecoder(zr).Decode(&d); err != nil {
		return GridDump{}, fmt.Errorf("failed to decode grid: %w", err)
	}
	return d, nil
}

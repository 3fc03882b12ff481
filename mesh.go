package wavefield

import (
	"fmt"
	"math"

	"github.com/gogpu/wavefield/geo"
)

// MeshBaseElevation is the elevation in meters of a zero magnitude.
const MeshBaseElevation = 10e3

// MeshParams places one frame of the field on the globe as a square point
// mesh.
type MeshParams struct {
	// Center is the first mesh point. Rows run north and columns east from
	// it.
	Center geo.LatLon

	// DeltaLat and DeltaLon are the degrees covered by the mesh. They also
	// size the bounding sector, which spans them on each side of Center.
	DeltaLat float64
	DeltaLon float64

	// PointCount is rounded down to the nearest square.
	PointCount int

	// Altitude scales magnitudes to meters above MeshBaseElevation.
	Altitude float64

	TotalFrames int
	FrameIndex  int
}

// MeshPoint is one colored mesh vertex.
type MeshPoint struct {
	Position  geo.LatLon
	Elevation float64
	Color     RGB
}

// Mesh is a row-major grid of points with its bounding sector.
type Mesh struct {
	Width, Height int
	Bounds        geo.Sector
	Points        []MeshPoint
}

// Side returns the number of points per mesh row and column.
func (mp MeshParams) Side() int {
	if mp.PointCount <= 0 {
		return 0
	}
	return int(math.Sqrt(float64(mp.PointCount)))
}

// Mesh samples the frame on a Side x Side grid with unit increment. A point
// count below 1 gives an empty mesh.
func (f *Field) Mesh(mp MeshParams) (Mesh, error) {
	side := mp.Side()
	m := Mesh{
		Width:  side,
		Height: side,
		Bounds: geo.SectorAround(mp.Center, mp.DeltaLat, mp.DeltaLon),
	}
	if side == 0 {
		return m, nil
	}

	p := Params{
		Width:         side,
		Height:        side,
		GridIncrement: 1,
		TotalFrames:   mp.TotalFrames,
		FrameIndex:    mp.FrameIndex,
	}
	mags, err := f.Magnitudes(p)
	if err != nil {
		return Mesh{}, fmt.Errorf("mesh: %w", err)
	}
	colors, err := f.Colors(p)
	if err != nil {
		return Mesh{}, fmt.Errorf("mesh: %w", err)
	}

	latStep := mp.DeltaLat / float64(side)
	lonStep := mp.DeltaLon / float64(side)

	// Cached grids may be stale; only cells present in both are used.
	m.Points = make([]MeshPoint, 0, side*side)
	for y, rows := 0, min(side, len(mags), len(colors)); y < rows; y++ {
		lat := mp.Center.Lat + float64(y)*latStep
		for x, cols := 0, min(side, len(mags[y]), len(colors[y])); x < cols; x++ {
			m.Points = append(m.Points, MeshPoint{
				Position:  geo.LatLon{Lat: lat, Lon: mp.Center.Lon + float64(x)*lonStep},
				Elevation: MeshBaseElevation + mp.Altitude*float64(mags[y][x]),
				Color:     colors[y][x],
			})
		}
	}
	return m, nil
}

package geo

// Sector is a latitude/longitude rectangle in degrees.
type Sector struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
}

// SectorAround returns the sector spanning dLat and dLon degrees on each
// side of center.
func SectorAround(center LatLon, dLat, dLon float64) Sector {
	return Sector{
		MinLat: center.Lat - dLat,
		MaxLat: center.Lat + dLat,
		MinLon: center.Lon - dLon,
		MaxLon: center.Lon + dLon,
	}
}

// Corners returns the corners counter-clockwise from the lower left, each
// wrapped with BoundedLatLon.
func (s Sector) Corners() [4]LatLon {
	return [4]LatLon{
		BoundedLatLon(s.MinLat, s.MinLon),
		BoundedLatLon(s.MinLat, s.MaxLon),
		BoundedLatLon(s.MaxLat, s.MaxLon),
		BoundedLatLon(s.MaxLat, s.MinLon),
	}
}

// Center returns the midpoint of the sector, wrapped.
func (s Sector) Center() LatLon {
	return BoundedLatLon((s.MinLat+s.MaxLat)/2, (s.MinLon+s.MaxLon)/2)
}

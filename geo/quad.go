package geo

import (
	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// Quad is a four-corner outline in degrees, ordered like Sector.Corners:
// (min, min), (min, max), (max, max), (max, min). Corners are not wrapped.
//
//	3 ______ 2
//	 |      |
//	 |      |
//	 |______|
//	0        1
type Quad [4]LatLon

// Quad returns the unwrapped corners of s.
func (s Sector) Quad() Quad {
	return Quad{
		{s.MinLat, s.MinLon},
		{s.MinLat, s.MaxLon},
		{s.MaxLat, s.MaxLon},
		{s.MaxLat, s.MinLon},
	}
}

// ResizeCorner moves the corner at index by dLat, dLon and returns the
// resized sector. See Quad.ResizeCorner.
func (s Sector) ResizeCorner(index int, dLat, dLon float64) Sector {
	return s.Quad().ResizeCorner(index, dLat, dLon).Sector()
}

// Translate moves s so its center lands on to. Each corner keeps its
// great-circle distance and azimuth from the center, so away from the
// equator the result is no longer aligned with the meridians.
func (s Sector) Translate(to LatLon) Quad {
	return s.Quad().Translate(s.midpoint(), to)
}

func (s Sector) midpoint() LatLon {
	return LatLon{Lat: (s.MinLat + s.MaxLat) / 2, Lon: (s.MinLon + s.MaxLon) / 2}
}

// Sector returns the sector spanned by corners 0 and 2. A corner dragged
// past its opposite one gives a sector with Min above Max.
func (q Quad) Sector() Sector {
	return Sector{
		MinLat: q[0].Lat,
		MaxLat: q[2].Lat,
		MinLon: q[0].Lon,
		MaxLon: q[2].Lon,
	}
}

// ResizeCorner moves the corner at index by dLat, dLon and drags its two
// neighbours along so the outline stays rectangular: the neighbour sharing
// the corner's meridian takes the new longitude, the one sharing its
// parallel takes the new latitude. The opposite corner stays put. An index
// outside [0, 3] returns q unchanged.
func (q Quad) ResizeCorner(index int, dLat, dLon float64) Quad {
	if index < 0 || index >= len(q) {
		return q
	}
	moved := LatLon{Lat: q[index].Lat + dLat, Lon: q[index].Lon + dLon}
	q[index] = moved

	switch index {
	case 0:
		q[3].Lon = moved.Lon
		q[1].Lat = moved.Lat
	case 1:
		q[0].Lat = moved.Lat
		q[2].Lon = moved.Lon
	case 2:
		q[1].Lon = moved.Lon
		q[3].Lat = moved.Lat
	case 3:
		q[2].Lat = moved.Lat
		q[0].Lon = moved.Lon
	}
	return q
}

// Translate re-projects every corner around to, keeping its great-circle
// distance and azimuth from the reference position from.
func (q Quad) Translate(from, to LatLon) Quad {
	ref, dst := toPoint(from), toPoint(to)

	var out Quad
	for i, c := range q {
		p := toPoint(c)
		distance := orbgeo.DistanceHaversine(ref, p)
		bearing := orbgeo.Bearing(ref, p)
		out[i] = fromPoint(orbgeo.PointAtBearingAndDistance(dst, bearing, distance))
	}
	return out
}

// orb points are (lon, lat).
func toPoint(ll LatLon) orb.Point  { return orb.Point{ll.Lon, ll.Lat} }
func fromPoint(p orb.Point) LatLon { return LatLon{Lat: p.Lat(), Lon: p.Lon()} }

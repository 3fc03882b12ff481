// Package geo wraps latitude/longitude degrees onto the globe and builds
// rectangular sectors around a center position.
package geo

import (
	"fmt"
	"math"
)

// LatLon is a position in degrees.
type LatLon struct {
	Lat float64
	Lon float64
}

func (ll LatLon) String() string {
	return fmt.Sprintf("(%.6f°, %.6f°)", ll.Lat, ll.Lon)
}

// BoundedLatLon walks lat degrees along a meridian and lon degrees along the
// equator from (0, 0) and returns where it ends up, with latitude in
// [-90, 90] and longitude in [-180, 180].
//
// Crossing a pole reverses the direction of travel: 105 becomes 75, 195
// becomes -15, 285 becomes -75. Longitude wraps every 360: 195 becomes -165.
func BoundedLatLon(lat, lon float64) LatLon {
	return LatLon{Lat: boundedLat(lat), Lon: boundedLon(lon)}
}

// quadrant is the heading after unwinding whole 90 degree steps.
type quadrant int

const (
	equatorNorth quadrant = iota // from the equator heading north
	poleNorth                    // from the north pole heading south
	equatorSouth                 // from the far equator heading south
	poleSouth                    // from the south pole heading north
)

func boundedLat(lat float64) float64 {
	if math.IsNaN(lat) || math.IsInf(lat, 0) {
		return lat
	}

	// Four quarter turns bring the walk back to the start.
	if math.Abs(lat) > 360 {
		lat = math.Mod(lat, 360)
	}

	q := equatorNorth
	for math.Abs(lat/90) > 1 {
		if lat > 0 {
			lat -= 90
			q = (q + 1) % 4
		} else {
			lat += 90
			q = (q + 3) % 4
		}
	}

	switch q {
	case poleNorth:
		return 90 - math.Abs(lat)
	case equatorSouth:
		return -lat
	case poleSouth:
		return -(90 - math.Abs(lat))
	default:
		return lat
	}
}

func boundedLon(lon float64) float64 {
	if math.IsNaN(lon) || math.IsInf(lon, 0) {
		return lon
	}

	if math.Abs(lon) > 360 {
		lon = math.Mod(lon, 360)
	}

	primeMeridian := true
	for math.Abs(lon/180) > 1 {
		if lon > 0 {
			lon -= 180
		} else {
			lon += 180
		}
		primeMeridian = !primeMeridian
	}

	if !primeMeridian {
		if lon > 0 {
			lon -= 180
		} else {
			lon += 180
		}
	}
	return lon
}

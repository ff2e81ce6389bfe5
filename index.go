/*
Copyright © 2023 the GlobeMap authors.
This file is part of GlobeMap.

GlobeMap is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

GlobeMap is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with GlobeMap.  If not, see <http://www.gnu.org/licenses/>.
*/

package globemap

import (
	"math"

	"github.com/golang/geo/r3"
)

const (
	latRange = math.Pi
	lonRange = 2 * math.Pi
)

// LatLon returns the latitude and longitude in radians of the direction
// of p. Longitude 0 lies on the negative x axis, so x is negated before
// the angles are calculated.
func LatLon(p r3.Vector) (lat, lon float64) {
	n := p.Normalize()
	lat = math.Asin(math.Max(-1, math.Min(1, n.Y)))
	lon = math.Atan2(n.Z, -n.X)
	return lat, lon
}

// CenterIndex returns the indices of the grid cell nearest to p in a
// grid with the given dimensions. The indices can be one past the end
// of either axis; they are corrected when the grid is sampled.
func CenterIndex(p r3.Vector, latLength, lonLength int) (latIndex, lonIndex int) {
	lat, lon := LatLon(p)
	latIndex = int(math.RoundToEven(lat/latRange*float64(latLength) + float64(latLength)/2))
	lonIndex = int(math.RoundToEven(lon/lonRange*float64(lonLength) + float64(lonLength)/2))
	return latIndex, lonIndex
}

// IndexFactors returns the continuous position of p along the latitude
// and longitude axes of a grid, each in the range [0, 1].
func IndexFactors(p r3.Vector) (latFactor, lonFactor float64) {
	lat, lon := LatLon(p)
	return lat/latRange + 0.5, lon/lonRange + 0.5
}

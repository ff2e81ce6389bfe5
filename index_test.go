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
	"testing"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// pointAt returns the unit vector at the given latitude and longitude.
func pointAt(lat, lon float64) r3.Vector {
	return r3.Vector{
		X: -math.Cos(lat) * math.Cos(lon),
		Y: math.Sin(lat),
		Z: math.Cos(lat) * math.Sin(lon),
	}
}

func TestLatLon(t *testing.T) {
	tests := []struct {
		p        r3.Vector
		lat, lon float64
	}{
		{p: r3.Vector{X: -1}, lat: 0, lon: 0},
		{p: r3.Vector{X: 1}, lat: 0, lon: math.Pi},
		{p: r3.Vector{Z: 1}, lat: 0, lon: math.Pi / 2},
		{p: r3.Vector{Z: -1}, lat: 0, lon: -math.Pi / 2},
		{p: r3.Vector{X: -1, Y: 1}, lat: math.Pi / 4, lon: 0},
		{p: r3.Vector{X: -2.01, Y: -2.01}, lat: -math.Pi / 4, lon: 0},
	}
	for i, test := range tests {
		lat, lon := LatLon(test.p)
		if math.Abs(lat-test.lat) > testTolerance || math.Abs(lon-test.lon) > testTolerance {
			t.Errorf("%d: have (%g, %g), want (%g, %g)", i, lat, lon, test.lat, test.lon)
		}
	}
}

// Rotating the axes so that y is up and -x is the prime meridian gives
// the s2 latitude-longitude convention.
func TestLatLonMatchesS2(t *testing.T) {
	for i, p := range SpherePoints(1.005, 200).Points {
		lat, lon := LatLon(p)
		ll := s2.LatLngFromPoint(s2.Point{Vector: r3.Vector{X: -p.X, Y: p.Z, Z: p.Y}})
		if math.Abs(lat-ll.Lat.Radians()) > testTolerance {
			t.Errorf("point %d: latitude %g != %g", i, lat, ll.Lat.Radians())
		}
		if p.Z != 0 && math.Abs(lon-ll.Lng.Radians()) > testTolerance {
			t.Errorf("point %d: longitude %g != %g", i, lon, ll.Lng.Radians())
		}
	}
}

func TestCenterIndex(t *testing.T) {
	tests := []struct {
		p                    r3.Vector
		latLength, lonLength int
		lat, lon             int
	}{
		{p: r3.Vector{X: -1}, latLength: 180, lonLength: 360, lat: 90, lon: 180},
		{p: r3.Vector{X: 1}, latLength: 180, lonLength: 360, lat: 90, lon: 360},
		{p: r3.Vector{Z: 1}, latLength: 180, lonLength: 360, lat: 90, lon: 270},
		{p: r3.Vector{Z: -1}, latLength: 180, lonLength: 360, lat: 90, lon: 90},
		{p: r3.Vector{Y: 1}, latLength: 180, lonLength: 360, lat: 180, lon: 360},
		{p: pointAt(-1.3, -2.8), latLength: 4, lonLength: 4, lat: 0, lon: 0},
		{p: pointAt(-1.3, -1.57), latLength: 4, lonLength: 4, lat: 0, lon: 1},
		// Halves round to even.
		{p: r3.Vector{X: -1}, latLength: 5, lonLength: 5, lat: 2, lon: 2},
		{p: r3.Vector{X: -1}, latLength: 3, lonLength: 7, lat: 2, lon: 4},
	}
	for i, test := range tests {
		lat, lon := CenterIndex(test.p, test.latLength, test.lonLength)
		if lat != test.lat || lon != test.lon {
			t.Errorf("%d: have (%d, %d), want (%d, %d)", i, lat, lon, test.lat, test.lon)
		}
		lat, lon = CenterIndex(test.p.Mul(1.005), test.latLength, test.lonLength)
		if lat != test.lat || lon != test.lon {
			t.Errorf("%d: scaled point: have (%d, %d), want (%d, %d)", i, lat, lon, test.lat, test.lon)
		}
	}
}

func TestIndexFactors(t *testing.T) {
	for _, test := range []struct {
		p        r3.Vector
		lat, lon float64
	}{
		{p: r3.Vector{X: -1}, lat: 0.5, lon: 0.5},
		{p: r3.Vector{Z: 1}, lat: 0.5, lon: 0.75},
		{p: r3.Vector{X: -1, Y: -1}, lat: 0.25, lon: 0.5},
	} {
		lat, lon := IndexFactors(test.p)
		if math.Abs(lat-test.lat) > testTolerance || math.Abs(lon-test.lon) > testTolerance {
			t.Errorf("%v: have (%g, %g), want (%g, %g)", test.p, lat, lon, test.lat, test.lon)
		}
	}
}

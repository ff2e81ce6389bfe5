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

import "math"

// DefaultOffset is the default number of cells on each side of the
// center cell that are averaged when sampling a neighborhood.
const DefaultOffset = 2

// Sampler averages grid values over a (2*LatOffset+1) by (2*LonOffset+1)
// block of cells centered on a grid index.
type Sampler struct {
	LatOffset, LonOffset int
}

// NewSampler returns a Sampler using DefaultOffset along both axes.
func NewSampler() Sampler {
	return Sampler{LatOffset: DefaultOffset, LonOffset: DefaultOffset}
}

// Sample returns the arithmetic mean of the neighborhood of g centered
// on (latCenter, lonCenter). Indices outside of the grid are moved back
// onto it with CorrectIndex. If any cell in the neighborhood is missing,
// ErrUndefinedSample is returned.
func (s Sampler) Sample(g Grid, latCenter, lonCenter int) (float64, error) {
	latLength, lonLength := g.Dims()
	var sum float64
	for j := latCenter - s.LatOffset; j <= latCenter+s.LatOffset; j++ {
		for i := lonCenter - s.LonOffset; i <= lonCenter+s.LonOffset; i++ {
			lat, lon := CorrectIndex(j, i, latLength, lonLength)
			v, ok := lookup(g, lat, lon)
			if !ok {
				return math.NaN(), ErrUndefinedSample
			}
			sum += v
		}
	}
	mean := sum / float64((2*s.LatOffset+1)*(2*s.LonOffset+1))
	if math.IsNaN(mean) {
		return math.NaN(), ErrUndefinedSample
	}
	return mean, nil
}

// SampleCell returns the single grid value at (latCenter, lonCenter).
// A center index that has been rounded up to the length of its axis is
// moved back to the last cell; no other correction is applied.
func SampleCell(g Grid, latCenter, lonCenter int) (float64, error) {
	latLength, lonLength := g.Dims()
	if latCenter >= latLength {
		latCenter = latLength - 1
	}
	if lonCenter >= lonLength {
		lonCenter = lonLength - 1
	}
	v, ok := lookup(g, latCenter, lonCenter)
	if !ok {
		return math.NaN(), ErrUndefinedSample
	}
	return v, nil
}

// CorrectIndex moves a possibly out-of-range grid index onto the grid.
// Crossing a pole reflects the latitude index back into the grid and
// moves the longitude index half way around the globe, because
// continuing over a pole lands on the opposite meridian. Row -1 becomes
// row 0 and row latLength becomes row latLength-1. Longitude wraps
// around with period lonLength.
func CorrectIndex(latIndex, lonIndex, latLength, lonLength int) (int, int) {
	crossings := floorDiv(latIndex, latLength)
	row := latIndex - crossings*latLength
	if crossings%2 != 0 {
		row = latLength - 1 - row
		lonIndex -= halfTurn(lonLength)
	}
	return row, floorMod(lonIndex, lonLength)
}

// halfTurn is the number of longitude cells spanning 180 degrees.
func halfTurn(lonLength int) int {
	return int(math.RoundToEven(float64(lonLength) / 2))
}

// lookup reads a grid value, panicking if the index is not on the grid.
func lookup(g Grid, lat, lon int) (float64, bool) {
	latLength, lonLength := g.Dims()
	if lat < 0 || lat >= latLength || lon < 0 || lon >= lonLength {
		panic(IndexOutOfDomainError{
			LatIndex: lat, LonIndex: lon,
			LatLength: latLength, LonLength: lonLength,
		})
	}
	return g.Get(lat, lon)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

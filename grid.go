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

// Package globemap samples global latitude-longitude gridded datasets
// onto points distributed over a sphere and converts the sampled values
// into display colors.
package globemap

import (
	"fmt"
	"math"

	"github.com/ctessum/sparse"
)

// Version gives the version number.
const Version = "1.0.0"

// Grid is a two-dimensional latitude-longitude array of measurement values.
// Row 0 is at latitude -π/2 and column 0 is at longitude -π; longitude
// is cyclic with period lonLength.
type Grid interface {
	// Get returns the value at the given indices, or ok=false
	// if the cell holds the missing-value marker.
	Get(latIndex, lonIndex int) (val float64, ok bool)

	// Dims returns the number of latitude rows and longitude columns.
	Dims() (latLength, lonLength int)
}

// DenseGrid is a Grid held in memory. NaN values mark missing cells.
type DenseGrid struct {
	*sparse.DenseArray
}

// NewDenseGrid returns a grid of the given dimensions filled with zeros.
func NewDenseGrid(latLength, lonLength int) *DenseGrid {
	return &DenseGrid{DenseArray: sparse.ZerosDense(latLength, lonLength)}
}

// NewDenseGridFromRows creates a grid from rows of equal length,
// where rows[0] is the southernmost row.
func NewDenseGridFromRows(rows [][]float64) (*DenseGrid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("globemap: grid must have at least one row and one column")
	}
	g := NewDenseGrid(len(rows), len(rows[0]))
	for j, row := range rows {
		if len(row) != len(rows[0]) {
			return nil, fmt.Errorf("globemap: grid row %d has length %d; want %d", j, len(row), len(rows[0]))
		}
		for i, v := range row {
			g.Set(v, j, i)
		}
	}
	return g, nil
}

// Get implements Grid.
func (g *DenseGrid) Get(latIndex, lonIndex int) (float64, bool) {
	v := g.DenseArray.Get(latIndex, lonIndex)
	return v, !math.IsNaN(v)
}

// Dims implements Grid.
func (g *DenseGrid) Dims() (latLength, lonLength int) {
	return g.Shape[0], g.Shape[1]
}

// Variable is a grid together with the human-readable name and the
// unit of the quantity it holds.
type Variable struct {
	Grid
	Name string
	Unit string
}

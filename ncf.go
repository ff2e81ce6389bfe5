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
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/ctessum/cdf"
)

// nonDataVariables are coordinate and bookkeeping variables that are never
// chosen as the displayed variable.
var nonDataVariables = map[string]bool{
	"datetime_start": true,
	"datetime_stop":  true,
	"count":          true,
	"weight":         true,
	"latitude":       true,
	"longitude":      true,
	"time":           true,
}

// OpenNCF opens the netCDF-3 file at path and reads the named variable.
// If variable is empty, the first data variable in the file is used.
func OpenNCF(path, variable string) (*Variable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("globemap: opening netcdf file: %v", err)
	}
	defer f.Close()
	return ReadNCF(f, variable)
}

// ReadNCF reads a latitude-longitude variable from netCDF-3 data in r.
// Variables with three dimensions are assumed to be (time, latitude,
// longitude), and only the first time step is read. Fill values and
// non-finite values are marked as missing. If the file has a descending
// "latitude" coordinate variable, rows are reversed so that row 0 is the
// southernmost.
func ReadNCF(r cdf.ReaderWriterAt, variable string) (*Variable, error) {
	f, err := cdf.Open(r)
	if err != nil {
		return nil, fmt.Errorf("globemap: opening netcdf data: %v", err)
	}
	if variable == "" {
		variable, err = firstDataVariable(f.Header)
		if err != nil {
			return nil, err
		}
	}
	dims := f.Header.Lengths(variable)
	if dims == nil {
		return nil, fmt.Errorf("globemap: netcdf variable %s does not exist", variable)
	}

	var begin, end []int
	var latLength, lonLength int
	switch len(dims) {
	case 2:
		latLength, lonLength = dims[0], dims[1]
		begin, end = []int{0, 0}, []int{latLength - 1, lonLength - 1}
	case 3:
		latLength, lonLength = dims[1], dims[2]
		begin, end = []int{0, 0, 0}, []int{0, latLength - 1, lonLength - 1}
	default:
		return nil, fmt.Errorf("globemap: netcdf variable %s has %d dimensions; want 2 or 3", variable, len(dims))
	}
	if latLength < 1 || lonLength < 1 {
		return nil, fmt.Errorf("globemap: netcdf variable %s has empty shape %v", variable, dims)
	}

	data, err := readFloats(f, variable, begin, end, latLength*lonLength)
	if err != nil {
		return nil, err
	}
	fills := fillValues(f.Header, variable)

	flip, err := descendingLatitude(f, latLength)
	if err != nil {
		return nil, err
	}

	g := NewDenseGrid(latLength, lonLength)
	for j := 0; j < latLength; j++ {
		row := j
		if flip {
			row = latLength - 1 - j
		}
		for i := 0; i < lonLength; i++ {
			v := data[j*lonLength+i]
			if math.IsInf(v, 0) || fills[v] {
				v = math.NaN()
			}
			g.Set(v, row, i)
		}
	}

	var unit string
	if u, ok := f.Header.GetAttribute(variable, "units").(string); ok {
		unit = u
	}
	return &Variable{
		Grid: g,
		Name: strings.Replace(variable, "_", " ", -1),
		Unit: unit,
	}, nil
}

func firstDataVariable(h *cdf.Header) (string, error) {
	for _, v := range h.Variables() {
		if !nonDataVariables[v] {
			return v, nil
		}
	}
	return "", fmt.Errorf("globemap: netcdf file has no data variables")
}

// readFloats reads n values of a float32 or float64 variable as float64.
func readFloats(f *cdf.File, variable string, begin, end []int, n int) ([]float64, error) {
	buf, err := readValues(f, variable, begin, end, n)
	if err != nil {
		return nil, err
	}
	switch b := buf.(type) {
	case []float64:
		return b, nil
	case []float32:
		out := make([]float64, len(b))
		for i, v := range b {
			out[i] = float64(v)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("globemap: netcdf variable %s has type %T; want float32 or float64", variable, buf)
	}
}

func readValues(f *cdf.File, variable string, begin, end []int, n int) (interface{}, error) {
	r := f.Reader(variable, begin, end)
	buf := r.Zero(n)
	if _, err := r.Read(buf); err != nil {
		return nil, fmt.Errorf("globemap: reading netcdf variable %s: %v", variable, err)
	}
	return buf, nil
}

// coordinates converts a coordinate buffer of any numeric netCDF type.
// It returns false for character data.
func coordinates(buf interface{}) ([]float64, bool) {
	var out []float64
	switch b := buf.(type) {
	case []float64:
		return b, true
	case []float32:
		for _, v := range b {
			out = append(out, float64(v))
		}
	case []int32:
		for _, v := range b {
			out = append(out, float64(v))
		}
	case []int16:
		for _, v := range b {
			out = append(out, float64(v))
		}
	case []uint8:
		// netCDF bytes are signed.
		for _, v := range b {
			out = append(out, float64(int8(v)))
		}
	default:
		return nil, false
	}
	return out, true
}

// fillValues returns the values of the _FillValue and missing_value
// attributes of variable.
func fillValues(h *cdf.Header, variable string) map[float64]bool {
	o := make(map[float64]bool)
	for _, a := range []string{"_FillValue", "missing_value"} {
		switch v := h.GetAttribute(variable, a).(type) {
		case []float32:
			for _, x := range v {
				o[float64(x)] = true
			}
		case []float64:
			for _, x := range v {
				o[x] = true
			}
		}
	}
	return o
}

// descendingLatitude reports whether the latitude coordinate variable, if
// present and matching the grid, runs from north to south.
func descendingLatitude(f *cdf.File, latLength int) (bool, error) {
	dims := f.Header.Lengths("latitude")
	if len(dims) != 1 || dims[0] != latLength || latLength < 2 {
		return false, nil
	}
	if _, ok := coordinates(f.Header.ZeroValue("latitude", 0)); !ok {
		return false, nil
	}
	buf, err := readValues(f, "latitude", []int{0}, []int{latLength - 1}, latLength)
	if err != nil {
		return false, err
	}
	lat, _ := coordinates(buf)
	return lat[0] > lat[latLength-1], nil
}

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
	"errors"
	"fmt"

	"github.com/golang/geo/r3"
)

// Sample is the outcome of sampling the grid for one point.
type Sample struct {
	Value   float64
	Defined bool
}

// DegeneratePolicy determines what happens when every retained sample has
// the same value.
type DegeneratePolicy int

const (
	// FailDegenerate returns the degenerate range error to the caller.
	FailDegenerate DegeneratePolicy = iota

	// MidpointDegenerate colors every retained point with the middle
	// of the ramp.
	MidpointDegenerate
)

// DegeneratePolicyByName parses "error" or "midpoint".
func DegeneratePolicyByName(name string) (DegeneratePolicy, error) {
	switch name {
	case "error", "":
		return FailDegenerate, nil
	case "midpoint":
		return MidpointDegenerate, nil
	default:
		return FailDegenerate, fmt.Errorf("globemap: invalid degenerate range policy %q; valid options are error and midpoint", name)
	}
}

// Result holds the points that had defined samples together with their
// colors. All sequences are positionally aligned.
type Result struct {
	Points  []r3.Vector
	Normals []r3.Vector
	Radii   []float64
	Colors  []RGB

	// Values are the raw sampled values of the retained points.
	Values []float64

	MinValue, MaxValue float64

	Name, Unit string
}

// ColorMapper prunes undefined samples and converts the remaining ones
// to colors.
type ColorMapper struct {
	Ramp       Ramp
	Degenerate DegeneratePolicy
}

// Map returns the points of ps whose samples are defined, colored by
// their value normalized over the retained samples. samples must be
// aligned with ps.Points. ps is not modified.
func (m ColorMapper) Map(ps *PointSet, samples []Sample) (*Result, error) {
	if len(samples) != ps.Len() {
		return nil, fmt.Errorf("globemap: %d samples for %d points", len(samples), ps.Len())
	}
	ramp := m.Ramp
	if ramp == nil {
		ramp = LinearRamp{}
	}

	n := 0
	for _, s := range samples {
		if s.Defined {
			n++
		}
	}
	r := &Result{
		Points: make([]r3.Vector, 0, n),
		Values: make([]float64, 0, n),
	}
	if ps.Normals != nil {
		r.Normals = make([]r3.Vector, 0, n)
	}
	if ps.Radii != nil {
		r.Radii = make([]float64, 0, n)
	}
	for i, s := range samples {
		if !s.Defined {
			continue
		}
		r.Points = append(r.Points, ps.Points[i])
		r.Values = append(r.Values, s.Value)
		if r.Normals != nil {
			r.Normals = append(r.Normals, ps.Normals[i])
		}
		if r.Radii != nil {
			r.Radii = append(r.Radii, ps.Radii[i])
		}
	}

	ts, min, max, err := Normalize(r.Values)
	r.MinValue, r.MaxValue = min, max
	var dre *DegenerateRangeError
	switch {
	case err == nil:
	case errors.As(err, &dre) && m.Degenerate == MidpointDegenerate:
		ts = make([]float64, len(r.Values))
		for i := range ts {
			ts[i] = 0.5
		}
	default:
		return nil, err
	}

	r.Colors = make([]RGB, len(ts))
	for i, t := range ts {
		r.Colors[i] = ramp.Color(t)
	}
	return r, nil
}

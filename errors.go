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
)

var (
	// ErrUndefinedSample is returned when a sampled grid cell, or any
	// cell of a sampled neighborhood, holds the missing-value marker.
	ErrUndefinedSample = errors.New("globemap: undefined sample")

	// ErrDegenerateRange is returned when every value in a batch is
	// equal, so the values cannot be normalized.
	ErrDegenerateRange = errors.New("globemap: degenerate value range")

	// ErrNoSamples is returned when a batch contains no defined values.
	ErrNoSamples = errors.New("globemap: no defined samples")
)

// DegenerateRangeError reports the single value held by a batch
// whose minimum equals its maximum.
type DegenerateRangeError struct {
	Value float64
}

func (e *DegenerateRangeError) Error() string {
	return fmt.Sprintf("%v: every sample equals %g", ErrDegenerateRange, e.Value)
}

// Unwrap allows errors.Is(err, ErrDegenerateRange).
func (e *DegenerateRangeError) Unwrap() error { return ErrDegenerateRange }

// IndexOutOfDomainError is the panic value used when a grid index is
// still outside of the grid after wrap-around and pole correction.
type IndexOutOfDomainError struct {
	LatIndex, LonIndex   int
	LatLength, LonLength int
}

func (e IndexOutOfDomainError) Error() string {
	return fmt.Sprintf("globemap: index (%d, %d) outside of %dx%d grid",
		e.LatIndex, e.LonIndex, e.LatLength, e.LonLength)
}

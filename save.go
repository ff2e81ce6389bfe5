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
	"encoding/gob"
	"fmt"
	"io"
)

// Save writes r to w in gob format
// (format description at https://golang.org/pkg/encoding/gob/).
func Save(w io.Writer, r *Result) error {
	if err := gob.NewEncoder(w).Encode(r); err != nil {
		return fmt.Errorf("globemap: saving result: %v", err)
	}
	return nil
}

// Load reads a Result previously written by Save.
func Load(r io.Reader) (*Result, error) {
	res := new(Result)
	if err := gob.NewDecoder(r).Decode(res); err != nil {
		return nil, fmt.Errorf("globemap: loading result: %v", err)
	}
	return res, nil
}

// SavePoints writes ps to w in gob format.
func SavePoints(w io.Writer, ps *PointSet) error {
	if err := gob.NewEncoder(w).Encode(ps); err != nil {
		return fmt.Errorf("globemap: saving points: %v", err)
	}
	return nil
}

// LoadPoints reads a PointSet previously written by SavePoints.
func LoadPoints(r io.Reader) (*PointSet, error) {
	ps := new(PointSet)
	if err := gob.NewDecoder(r).Decode(ps); err != nil {
		return nil, fmt.Errorf("globemap: loading points: %v", err)
	}
	return ps, nil
}

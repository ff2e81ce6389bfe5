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
	"bytes"
	"image/png"
	"testing"

	"github.com/golang/geo/r3"
)

func TestPreview(t *testing.T) {
	r := testResult(t)
	buf := new(bytes.Buffer)
	if err := Preview(buf, r, 360, 180); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 360 || b.Dy() != 180 {
		t.Errorf("have size %dx%d, want 360x180", b.Dx(), b.Dy())
	}
	if err := Preview(new(bytes.Buffer), r, 0, 10); err == nil {
		t.Error("empty image size accepted")
	}
}

func TestProjection(t *testing.T) {
	for _, test := range []struct {
		p    r3.Vector
		x, y float64
	}{
		{p: r3.Vector{X: -1}, x: 180, y: 90},
		{p: r3.Vector{Z: 1}, x: 270, y: 90},
		{p: r3.Vector{X: -1, Y: 1}, x: 180, y: 45},
	} {
		x, y := projection(test.p, 360, 180)
		if different(x, test.x, testTolerance) || different(y, test.y, testTolerance) {
			t.Errorf("%v: have (%g, %g), want (%g, %g)", test.p, x, y, test.x, test.y)
		}
	}
}

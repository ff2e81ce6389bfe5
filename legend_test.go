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
	"math"
	"testing"

	"gonum.org/v1/plot/palette"
)

func TestLegend(t *testing.T) {
	r := testResult(t)
	for _, name := range []string{"linear", "piecewise", "moreland"} {
		ramp, err := RampByName(name)
		if err != nil {
			t.Fatal(err)
		}
		buf := new(bytes.Buffer)
		if err := Legend(buf, r, ramp); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if _, err := png.Decode(buf); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestLegendDegenerate(t *testing.T) {
	r := &Result{Name: "constant", MinValue: 5, MaxValue: 5}
	if err := Legend(new(bytes.Buffer), r, nil); err != nil {
		t.Error(err)
	}
	r = &Result{MinValue: math.NaN(), MaxValue: math.NaN()}
	if err := Legend(new(bytes.Buffer), r, nil); err == nil {
		t.Error("legend without samples accepted")
	}
}

func TestLegendLabel(t *testing.T) {
	if l := legendLabel(&Result{Name: "NO2", Unit: "mol/m2"}); l != "NO2 (mol/m2)" {
		t.Errorf("have %q", l)
	}
	if l := legendLabel(&Result{Name: "NO2"}); l != "NO2" {
		t.Errorf("have %q", l)
	}
}

func TestRampColorMap(t *testing.T) {
	cm := &rampColorMap{ramp: LinearRamp{}, min: 10, max: 20, alpha: 1}
	c, err := cm.At(20)
	if err != nil {
		t.Fatal(err)
	}
	if r, _, b, _ := c.RGBA(); r != 0xffff || b != 0 {
		t.Errorf("maximum color %v is not red", c)
	}
	if _, err := cm.At(9); err != palette.ErrUnderflow {
		t.Errorf("have %v, want %v", err, palette.ErrUnderflow)
	}
	if _, err := cm.At(21); err != palette.ErrOverflow {
		t.Errorf("have %v, want %v", err, palette.ErrOverflow)
	}
	if n := len(cm.Palette(7).Colors()); n != 7 {
		t.Errorf("have %d palette colors, want 7", n)
	}
}

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
	"math/rand"
	"reflect"
	"testing"

	"github.com/kr/pretty"
)

func testResult(t *testing.T) *Result {
	v := &Variable{Name: "index", Unit: "1"}
	g := NewDenseGrid(9, 18)
	for i := range g.Elements {
		g.Elements[i] = float64(i)
	}
	v.Grid = g
	r, err := NewPass(WithLogger(testLogger())).Run(SpherePoints(1.005, 300), v)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestSaveLoad(t *testing.T) {
	r := testResult(t)
	buf := new(bytes.Buffer)
	if err := Save(buf, r); err != nil {
		t.Fatal(err)
	}
	r2, err := Load(buf)
	if err != nil {
		t.Fatal(err)
	}
	if diff := pretty.Diff(r, r2); len(diff) != 0 {
		t.Fatal(diff)
	}
}

func TestSaveLoadPoints(t *testing.T) {
	ps := RandomSpherePoints(10, 100, rand.New(rand.NewSource(3)))
	buf := new(bytes.Buffer)
	if err := SavePoints(buf, ps); err != nil {
		t.Fatal(err)
	}
	ps2, err := LoadPoints(buf)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(ps, ps2) {
		t.Error("loaded points differ from saved points")
	}
}

func TestLoadInvalid(t *testing.T) {
	if _, err := Load(bytes.NewBufferString("not gob")); err == nil {
		t.Error("invalid data accepted")
	}
}

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
	"io/ioutil"
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/sirupsen/logrus"
)

func testLogger() logrus.FieldLogger {
	l := logrus.New()
	l.Out = ioutil.Discard
	return l
}

// scenarioVariable returns a 4x4 grid of fives with a missing
// cell at (0, 0).
func scenarioVariable() *Variable {
	g := NewDenseGrid(4, 4)
	for i := range g.Elements {
		g.Elements[i] = 5
	}
	g.Set(math.NaN(), 0, 0)
	return &Variable{Grid: g, Name: "test value", Unit: "mol/m2"}
}

func TestPassScenario(t *testing.T) {
	ps := &PointSet{Points: []r3.Vector{pointAt(-1.3, -2.8), pointAt(-1.3, -1.57)}}
	v := scenarioVariable()

	p := NewPass(WithSampler(Sampler{}), WithWorkers(2), WithLogger(testLogger()))
	samples, err := p.Samples(ps, v)
	if err != nil {
		t.Fatal(err)
	}
	if samples[0].Defined {
		t.Errorf("sample at the missing cell is defined: %v", samples[0])
	}
	if !samples[1].Defined || samples[1].Value != 5 {
		t.Errorf("have %v, want defined 5", samples[1])
	}

	if _, err := p.Run(ps, v); !errors.Is(err, ErrDegenerateRange) {
		t.Errorf("have %v, want %v", err, ErrDegenerateRange)
	}

	p = NewPass(WithSampler(Sampler{}), WithDegeneratePolicy(MidpointDegenerate), WithLogger(testLogger()))
	r, err := p.Run(ps, v)
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Points) != 1 || r.Points[0] != ps.Points[1] {
		t.Errorf("have points %v, want [%v]", r.Points, ps.Points[1])
	}
	if r.Colors[0] != (RGB{R: 0.5, B: 0.5}) {
		t.Errorf("have color %v", r.Colors[0])
	}
	if r.Name != v.Name || r.Unit != v.Unit {
		t.Errorf("have name %q and unit %q", r.Name, r.Unit)
	}
}

func TestPassSingleCell(t *testing.T) {
	ps := &PointSet{Points: []r3.Vector{pointAt(-1.3, -2.8), pointAt(-1.3, -1.57)}}
	samples, err := NewPass(SingleCell(), WithLogger(testLogger())).Samples(ps, scenarioVariable())
	if err != nil {
		t.Fatal(err)
	}
	if samples[0].Defined || !samples[1].Defined {
		t.Errorf("have %v", samples)
	}
}

func TestPassWorkersAgree(t *testing.T) {
	g := NewDenseGrid(18, 36)
	for j := 0; j < 18; j++ {
		for i := 0; i < 36; i++ {
			g.Set(float64(j*36+i), j, i)
		}
	}
	g.Set(math.NaN(), 17, 3)
	v := &Variable{Grid: g, Name: "index"}
	ps := SpherePoints(1.005, 2000)

	r1, err := NewPass(WithWorkers(1), WithLogger(testLogger())).Run(ps, v)
	if err != nil {
		t.Fatal(err)
	}
	r8, err := NewPass(WithWorkers(8), WithLogger(testLogger())).Run(ps, v)
	if err != nil {
		t.Fatal(err)
	}
	if len(r1.Points) != len(r8.Points) || len(r1.Points) == ps.Len() {
		t.Fatalf("have %d and %d retained points of %d", len(r1.Points), len(r8.Points), ps.Len())
	}
	for i := range r1.Values {
		if r1.Values[i] != r8.Values[i] || r1.Colors[i] != r8.Colors[i] {
			t.Errorf("point %d differs between worker counts", i)
		}
	}
	if len(r1.Points) != len(r1.Normals) || len(r1.Points) != len(r1.Radii) || len(r1.Points) != len(r1.Colors) {
		t.Error("result sequences are not aligned")
	}
	if r1.MinValue < 0 || r1.MaxValue > 18*36-1 || r1.MinValue >= r1.MaxValue {
		t.Errorf("invalid range [%g, %g]", r1.MinValue, r1.MaxValue)
	}
}

func TestPassInvalidGrid(t *testing.T) {
	p := NewPass(WithLogger(testLogger()))
	if _, err := p.Run(SpherePoints(1, 10), &Variable{}); err == nil {
		t.Error("nil grid accepted")
	}
	if _, err := p.Run(SpherePoints(1, 10), &Variable{Grid: NewDenseGrid(0, 3)}); err == nil {
		t.Error("empty grid accepted")
	}
}

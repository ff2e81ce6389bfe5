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
	"math"
	"math/rand"

	"github.com/golang/geo/r3"
)

// goldenAngle is the angular increment between consecutive points
// of the spiral, in radians.
var goldenAngle = math.Pi * (math.Sqrt(5) - 1)

// PointSet holds positionally aligned sample points and their attributes.
// Normals, Radii and Tints may be nil; when they are not nil they have
// the same length as Points.
type PointSet struct {
	Points  []r3.Vector
	Normals []r3.Vector

	// Radii holds the approximate surface footprint radius of each point.
	Radii []float64

	// Tints are placeholder colors that do not depend on any data.
	Tints []RGB
}

// Len returns the number of points in the set.
func (ps *PointSet) Len() int { return len(ps.Points) }

// SphereConfig specifies a sphere resolution.
type SphereConfig struct {
	Radius float64
	Count  int
}

// Points generates the point set described by c.
func (c SphereConfig) Points() *PointSet { return SpherePoints(c.Radius, c.Count) }

// SpherePoints distributes count points over a sphere with the given
// radius along a golden-angle spiral, which sweeps the y coordinate
// linearly from +radius to -radius. Points with non-finite coordinates
// are left out of every returned sequence.
func SpherePoints(radius float64, count int) *PointSet {
	if count < 0 {
		count = 0
	}
	ps := &PointSet{
		Points:  make([]r3.Vector, 0, count),
		Normals: make([]r3.Vector, 0, count),
		Radii:   make([]float64, 0, count),
		Tints:   make([]RGB, 0, count),
	}
	sampleRadius := radius / math.Sqrt(float64(count))
	for i := 0; i < count; i++ {
		y := radius - float64(i)/float64(count-1)*2*radius
		ringRadius := math.Sqrt(math.Max(radius*radius-y*y, 0))

		theta := goldenAngle * float64(i)
		p := r3.Vector{
			X: math.Cos(theta) * ringRadius,
			Y: y,
			Z: math.Sin(theta) * ringRadius,
		}
		if !finite(p) {
			continue
		}
		norm := p.Norm()
		if norm == 0 {
			continue
		}
		n := p.Mul(1 / norm)

		ps.Points = append(ps.Points, p)
		ps.Normals = append(ps.Normals, n)
		ps.Radii = append(ps.Radii, sampleRadius)
		ps.Tints = append(ps.Tints, RGB{
			R: math.Min(n.X, 0),
			G: math.Min(n.Y, 0),
			B: math.Min(n.Z, 0),
		})
	}
	return ps
}

// RandomSpherePoints draws count points uniformly distributed over a
// sphere with the given radius, each paired with a random gray tint.
// It is used for decorative star fields.
func RandomSpherePoints(radius float64, count int, rng *rand.Rand) *PointSet {
	if count < 0 {
		count = 0
	}
	ps := &PointSet{
		Points:  make([]r3.Vector, 0, count),
		Normals: make([]r3.Vector, 0, count),
		Tints:   make([]RGB, 0, count),
	}
	for len(ps.Points) < count {
		v := r3.Vector{X: rng.NormFloat64(), Y: rng.NormFloat64(), Z: rng.NormFloat64()}
		if v.X == 0 && v.Y == 0 && v.Z == 0 {
			continue
		}
		n := v.Normalize()
		gray := rng.Float64()
		ps.Points = append(ps.Points, n.Mul(radius))
		ps.Normals = append(ps.Normals, n)
		ps.Tints = append(ps.Tints, RGB{R: gray, G: gray, B: gray})
	}
	return ps
}

// StarConfig describes a random star field.
type StarConfig struct {
	Radius float64
	Count  int

	// Seed seeds the random number generator.
	Seed int64
}

// Points returns the star field described by c.
func (c StarConfig) Points() *PointSet {
	return RandomSpherePoints(c.Radius, c.Count, rand.New(rand.NewSource(c.Seed)))
}

// SampleArc returns the angle, in radians, of the approximate circle
// that a single point covers when count points are spread over a sphere.
func SampleArc(count int) float64 {
	return math.Asin(math.Min(2/math.Sqrt(float64(count)), 1))
}

func finite(p r3.Vector) bool {
	for _, v := range []float64{p.X, p.Y, p.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

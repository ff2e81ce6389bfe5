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
	"runtime"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Pass samples a Variable at every point of a PointSet and colors the
// points whose samples are defined.
type Pass struct {
	// Sampler averages the grid around each point's center cell.
	Sampler Sampler

	// SingleCell, if true, reads only the center cell for each point
	// instead of using Sampler.
	SingleCell bool

	Mapper ColorMapper

	// Workers is the number of goroutines used for sampling.
	// Values < 1 mean runtime.GOMAXPROCS(0).
	Workers int

	Log logrus.FieldLogger
}

// PassOption configures a Pass.
type PassOption func(*Pass)

// NewPass returns a Pass with the default neighborhood sampler and the
// linear color ramp, modified by opts.
func NewPass(opts ...PassOption) *Pass {
	p := &Pass{
		Sampler: NewSampler(),
		Mapper:  ColorMapper{Ramp: LinearRamp{}, Degenerate: FailDegenerate},
		Log:     logrus.StandardLogger(),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// WithSampler sets the neighborhood sampler.
func WithSampler(s Sampler) PassOption {
	return func(p *Pass) {
		p.Sampler = s
		p.SingleCell = false
	}
}

// SingleCell makes the pass read only the center cell of each point.
func SingleCell() PassOption {
	return func(p *Pass) { p.SingleCell = true }
}

// WithRamp sets the color ramp.
func WithRamp(r Ramp) PassOption {
	return func(p *Pass) { p.Mapper.Ramp = r }
}

// WithDegeneratePolicy sets how a batch whose samples are all equal is handled.
func WithDegeneratePolicy(d DegeneratePolicy) PassOption {
	return func(p *Pass) { p.Mapper.Degenerate = d }
}

// WithWorkers sets the number of sampling goroutines.
func WithWorkers(n int) PassOption {
	return func(p *Pass) { p.Workers = n }
}

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) PassOption {
	return func(p *Pass) { p.Log = l }
}

// Run samples v at every point in ps and returns the colored points
// with defined samples. ps and v are only read.
func (p *Pass) Run(ps *PointSet, v *Variable) (*Result, error) {
	start := time.Now()
	samples, err := p.Samples(ps, v)
	if err != nil {
		return nil, err
	}
	r, err := p.Mapper.Map(ps, samples)
	if err != nil {
		if errors.Is(err, ErrDegenerateRange) || errors.Is(err, ErrNoSamples) {
			return nil, err
		}
		return nil, fmt.Errorf("globemap: coloring %s: %v", v.Name, err)
	}
	r.Name, r.Unit = v.Name, v.Unit

	p.logger().WithFields(logrus.Fields{
		"variable": v.Name,
		"points":   ps.Len(),
		"retained": len(r.Points),
		"pruned":   ps.Len() - len(r.Points),
		"duration": time.Since(start),
	}).Debug("sampling pass complete")
	p.logger().WithFields(logrus.Fields{
		"variable": v.Name,
		"min":      r.MinValue,
		"max":      r.MaxValue,
		"unit":     v.Unit,
	}).Info("sampled value range")
	return r, nil
}

// Samples maps every point in ps to a grid cell of v and samples the
// grid there. The result is aligned with ps.Points.
func (p *Pass) Samples(ps *PointSet, v *Variable) ([]Sample, error) {
	if v == nil || v.Grid == nil {
		return nil, fmt.Errorf("globemap: nil grid")
	}
	latLength, lonLength := v.Dims()
	if latLength < 1 || lonLength < 1 {
		return nil, fmt.Errorf("globemap: grid %s has invalid shape %dx%d", v.Name, latLength, lonLength)
	}

	nprocs := p.Workers
	if nprocs < 1 {
		nprocs = runtime.GOMAXPROCS(0)
	}
	samples := make([]Sample, ps.Len())
	var wg sync.WaitGroup
	wg.Add(nprocs)
	for pp := 0; pp < nprocs; pp++ {
		go func(pp int) {
			defer wg.Done()
			for ii := pp; ii < len(samples); ii += nprocs {
				lat, lon := CenterIndex(ps.Points[ii], latLength, lonLength)
				var val float64
				var err error
				if p.SingleCell {
					val, err = SampleCell(v, lat, lon)
				} else {
					val, err = p.Sampler.Sample(v, lat, lon)
				}
				samples[ii] = Sample{Value: val, Defined: err == nil}
			}
		}(pp)
	}
	wg.Wait()
	return samples, nil
}

func (p *Pass) logger() logrus.FieldLogger {
	if p.Log == nil {
		return logrus.StandardLogger()
	}
	return p.Log
}

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

package globemaputil

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/globemap"
)

// Preview image size in pixels.
const (
	previewWidth  = 1024
	previewHeight = 512
)

// pointCache holds the sphere and star point sets that have been
// generated during this process.
var pointCache = globemap.NewPointCache(4)

// Summary describes a render run.
type Summary struct {
	InputFile string    `toml:"input_file"`
	Variable  string    `toml:"variable"`
	Unit      string    `toml:"unit"`
	Created   time.Time `toml:"created"`

	LatLength int `toml:"lat_length"`
	LonLength int `toml:"lon_length"`

	Points   int `toml:"points"`
	Retained int `toml:"retained"`

	MinValue float64 `toml:"min_value"`
	MaxValue float64 `toml:"max_value"`

	Ramp       string `toml:"ramp"`
	SingleCell bool   `toml:"single_cell"`
	LatOffset  int    `toml:"lat_offset"`
	LonOffset  int    `toml:"lon_offset"`

	// SuggestedOffset is the neighborhood half-width, in grid rows,
	// that matches the spacing of the sample points.
	SuggestedOffset int `toml:"suggested_offset"`
}

// Render samples the configured dataset onto the sphere and writes the
// requested output files.
func Render(ctx context.Context, c *RenderConfig, log logrus.FieldLogger) (*globemap.Result, error) {
	log.WithFields(logrus.Fields{
		"file":     c.InputFile,
		"variable": c.Variable,
	}).Info("reading grid")
	v, err := globemap.OpenNCF(c.InputFile, c.Variable)
	if err != nil {
		return nil, err
	}
	latLength, lonLength := v.Dims()

	ps, err := pointCache.Points(ctx, c.Sphere)
	if err != nil {
		return nil, err
	}
	suggested := suggestedOffset(c.Sphere.Count, latLength)
	log.WithFields(logrus.Fields{
		"lat_length":       latLength,
		"lon_length":       lonLength,
		"points":           ps.Len(),
		"suggested_offset": suggested,
	}).Debug("sampling grid")

	opts := []globemap.PassOption{
		globemap.WithSampler(c.Sampler),
		globemap.WithRamp(c.Ramp),
		globemap.WithDegeneratePolicy(c.Degenerate),
		globemap.WithWorkers(c.Workers),
		globemap.WithLogger(log),
	}
	if c.SingleCell {
		opts = append(opts, globemap.SingleCell())
	}
	r, err := globemap.NewPass(opts...).Run(ps, v)
	if err != nil {
		return nil, err
	}

	if err := writeFile(c.OutputFile, func(w io.Writer) error { return globemap.Save(w, r) }); err != nil {
		return nil, err
	}
	if c.LegendFile != "" {
		if err := writeFile(c.LegendFile, func(w io.Writer) error { return globemap.Legend(w, r, c.Ramp) }); err != nil {
			return nil, err
		}
	}
	if c.PreviewFile != "" {
		if err := writeFile(c.PreviewFile, func(w io.Writer) error {
			return globemap.Preview(w, r, previewWidth, previewHeight)
		}); err != nil {
			return nil, err
		}
	}
	if c.SummaryFile != "" {
		s := &Summary{
			InputFile:       c.InputFile,
			Variable:        r.Name,
			Unit:            r.Unit,
			Created:         time.Now().UTC(),
			LatLength:       latLength,
			LonLength:       lonLength,
			Points:          ps.Len(),
			Retained:        len(r.Points),
			MinValue:        r.MinValue,
			MaxValue:        r.MaxValue,
			Ramp:            c.RampName,
			SingleCell:      c.SingleCell,
			LatOffset:       c.Sampler.LatOffset,
			LonOffset:       c.Sampler.LonOffset,
			SuggestedOffset: suggested,
		}
		if err := writeFile(c.SummaryFile, func(w io.Writer) error { return toml.NewEncoder(w).Encode(s) }); err != nil {
			return nil, err
		}
	}
	log.WithFields(logrus.Fields{
		"output":   c.OutputFile,
		"retained": len(r.Points),
	}).Info("render complete")
	return r, nil
}

// Stars creates a star field and writes it to outputFile.
func Stars(ctx context.Context, sc globemap.StarConfig, outputFile string, log logrus.FieldLogger) error {
	ps, err := pointCache.Points(ctx, sc)
	if err != nil {
		return err
	}
	if err := writeFile(outputFile, func(w io.Writer) error { return globemap.SavePoints(w, ps) }); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"output": outputFile,
		"stars":  ps.Len(),
		"seed":   sc.Seed,
	}).Info("star field complete")
	return nil
}

// suggestedOffset converts the arc covered by one of count points
// into a number of grid rows.
func suggestedOffset(count, latLength int) int {
	return int(math.Ceil(globemap.SampleArc(count) / math.Pi * float64(latLength)))
}

// writeFile creates the file at path and writes to it using write.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("globemap: creating output file: %v", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("globemap: closing output file: %v", err)
	}
	return nil
}

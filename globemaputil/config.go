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
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/lnashier/viper"
	"github.com/spatialmodel/globemap"
	"github.com/spf13/cast"
)

// RenderConfig holds the settings for the render command.
type RenderConfig struct {
	InputFile, Variable string

	OutputFile, LegendFile, PreviewFile, SummaryFile string

	Sphere globemap.SphereConfig

	Sampler    globemap.Sampler
	SingleCell bool

	RampName   string
	Ramp       globemap.Ramp
	Degenerate globemap.DegeneratePolicy

	Workers int
}

// NewRenderConfig reads and checks the render settings in cfg.
func NewRenderConfig(cfg *viper.Viper) (*RenderConfig, error) {
	c := &RenderConfig{
		Variable:   cfg.GetString("Variable"),
		SingleCell: cfg.GetBool("Sampling.SingleCell"),
		RampName:   cfg.GetString("Color.Ramp"),
	}
	var err error
	if c.InputFile, err = checkInputFile(cfg.GetString("InputFile")); err != nil {
		return nil, err
	}
	if c.OutputFile, err = checkOutputFile(cfg.GetString("OutputFile")); err != nil {
		return nil, err
	}
	for _, f := range []struct {
		name string
		dst  *string
	}{
		{name: "LegendFile", dst: &c.LegendFile},
		{name: "PreviewFile", dst: &c.PreviewFile},
		{name: "SummaryFile", dst: &c.SummaryFile},
	} {
		if *f.dst, err = checkOptionalOutputFile(f.name, cfg.GetString(f.name)); err != nil {
			return nil, err
		}
	}

	if c.Sphere.Radius, err = checkRadius("Sphere.Radius", cfg.Get("Sphere.Radius")); err != nil {
		return nil, err
	}
	if c.Sphere.Count, err = checkCount("Sphere.Count", cfg.Get("Sphere.Count"), 2); err != nil {
		return nil, err
	}
	if c.Sampler.LatOffset, err = checkOffset("Sampling.LatOffset", cfg.Get("Sampling.LatOffset")); err != nil {
		return nil, err
	}
	if c.Sampler.LonOffset, err = checkOffset("Sampling.LonOffset", cfg.Get("Sampling.LonOffset")); err != nil {
		return nil, err
	}
	if c.Workers, err = cast.ToIntE(cfg.Get("Workers")); err != nil {
		return nil, fmt.Errorf("globemap: invalid Workers: %v", err)
	}

	if c.Ramp, err = globemap.RampByName(c.RampName); err != nil {
		return nil, err
	}
	if c.Degenerate, err = globemap.DegeneratePolicyByName(cfg.GetString("Color.Degenerate")); err != nil {
		return nil, err
	}
	return c, nil
}

// NewStarConfig reads and checks the star field settings in cfg.
func NewStarConfig(cfg *viper.Viper) (sc globemap.StarConfig, outputFile string, err error) {
	if sc.Radius, err = checkRadius("Stars.Radius", cfg.Get("Stars.Radius")); err != nil {
		return
	}
	if sc.Count, err = checkCount("Stars.Count", cfg.Get("Stars.Count"), 1); err != nil {
		return
	}
	if sc.Seed, err = cast.ToInt64E(cfg.Get("Stars.Seed")); err != nil {
		err = fmt.Errorf("globemap: invalid Stars.Seed: %v", err)
		return
	}
	if sc.Seed == 0 {
		sc.Seed = time.Now().UnixNano()
	}
	outputFile, err = checkOutputFile(cfg.GetString("Stars.OutputFile"))
	return
}

// checkInputFile expands any environment variables in the input file
// path and makes sure the file exists.
func checkInputFile(f string) (string, error) {
	if f == "" {
		return "", fmt.Errorf(`globemap: you need to specify an input file configuration variable (for example: InputFile="S5P_L3_NO2.nc")`)
	}
	f = os.ExpandEnv(f)
	if _, err := os.Stat(f); err != nil {
		return f, fmt.Errorf("globemap: the InputFile doesn't exist: %v", err)
	}
	return f, nil
}

// checkOutputFile makes sure that the output file is specified and its
// directory exists, and expand any environment variables.
func checkOutputFile(f string) (string, error) {
	if f == "" {
		return "", fmt.Errorf(`globemap: you need to specify an output file configuration variable (for example: OutputFile="output.gob")`)
	}
	f = os.ExpandEnv(f)
	outdir := filepath.Dir(f)
	if _, err := os.Stat(outdir); err != nil {
		return f, fmt.Errorf("globemap: the output file directory doesn't exist: %v", err)
	}
	return f, nil
}

// checkOptionalOutputFile is like checkOutputFile but allows
// the file to be unspecified.
func checkOptionalOutputFile(name, f string) (string, error) {
	if f == "" {
		return "", nil
	}
	f, err := checkOutputFile(f)
	if err != nil {
		return f, fmt.Errorf("%v (%s)", err, name)
	}
	return f, nil
}

func checkRadius(name string, v interface{}) (float64, error) {
	r, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("globemap: invalid %s: %v", name, err)
	}
	if !(r > 0) || math.IsInf(r, 0) {
		return 0, fmt.Errorf("globemap: %s must be positive and finite but is %g", name, r)
	}
	return r, nil
}

func checkCount(name string, v interface{}, min int) (int, error) {
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("globemap: invalid %s: %v", name, err)
	}
	if n < min {
		return 0, fmt.Errorf("globemap: %s must be at least %d but is %d", name, min, n)
	}
	return n, nil
}

func checkOffset(name string, v interface{}) (int, error) {
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("globemap: invalid %s: %v", name, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("globemap: %s must not be negative but is %d", name, n)
	}
	return n, nil
}

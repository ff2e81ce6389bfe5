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
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// RGB is a color with channels in the range [0, 1].
type RGB struct {
	R, G, B float64
}

// NRGBA converts c to an opaque 8-bit color.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: 255}
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// A Ramp converts a normalized value t in [0, 1] to a color.
type Ramp interface {
	Color(t float64) RGB
}

// LinearRamp fades from blue at t=0 to red at t=1.
type LinearRamp struct{}

// Color implements Ramp.
func (LinearRamp) Color(t float64) RGB {
	return RGB{R: t, G: 0, B: 1 - t}
}

// PiecewiseRamp fades from blue at t=0 through green at t=0.5 to
// red at t=1.
type PiecewiseRamp struct{}

// Color implements Ramp.
func (PiecewiseRamp) Color(t float64) RGB {
	if t < 0.5 {
		return RGB{R: 0, G: 2 * t, B: 1 - 2*t}
	}
	return RGB{R: 2 * (t - 0.5), G: -2*(t-2) - 2, B: 0}
}

// PaletteRamp adapts a gonum color map to the Ramp interface.
// Values outside of [0, 1] are clamped.
type PaletteRamp struct {
	palette.ColorMap
}

// NewPaletteRamp returns a ramp using cm over the range [0, 1].
func NewPaletteRamp(cm palette.ColorMap) PaletteRamp {
	cm.SetMin(0)
	cm.SetMax(1)
	return PaletteRamp{ColorMap: cm}
}

// Color implements Ramp.
func (p PaletteRamp) Color(t float64) RGB {
	c, err := p.At(math.Max(0, math.Min(1, t)))
	if err != nil {
		// Only NaN input reaches here.
		return RGB{}
	}
	col := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: float64(col.R) / 255, G: float64(col.G) / 255, B: float64(col.B) / 255}
}

// RampByName returns the ramp with the given name: "linear",
// "piecewise", "moreland" or "blackbody".
func RampByName(name string) (Ramp, error) {
	switch name {
	case "linear", "":
		return LinearRamp{}, nil
	case "piecewise":
		return PiecewiseRamp{}, nil
	case "moreland":
		return NewPaletteRamp(moreland.SmoothBlueRed()), nil
	case "blackbody":
		return NewPaletteRamp(moreland.ExtendedBlackBody()), nil
	default:
		return nil, fmt.Errorf("globemap: invalid color ramp %q; valid options are linear, piecewise, moreland and blackbody", name)
	}
}

// Normalize maps values onto [0, 1] using the minimum and maximum of the
// batch. It returns ErrNoSamples for an empty batch and a
// *DegenerateRangeError if every value is the same.
func Normalize(values []float64) (ts []float64, min, max float64, err error) {
	if len(values) == 0 {
		return nil, math.NaN(), math.NaN(), ErrNoSamples
	}
	min, max = floats.Min(values), floats.Max(values)
	if max == min {
		return nil, min, max, &DegenerateRangeError{Value: min}
	}
	ts = make([]float64, len(values))
	for i, v := range values {
		ts[i] = (v - min) / (max - min)
	}
	return ts, min, max, nil
}

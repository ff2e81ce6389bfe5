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
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Legend dimensions.
const (
	LegendWidth  = 6.2 * vg.Inch
	LegendHeight = LegendWidth * 0.1067
)

// Legend writes a PNG color bar for r to w, labeled with the name and
// unit of r and with ticks at its minimum and maximum values.
func Legend(w io.Writer, r *Result, ramp Ramp) error {
	min, max := r.MinValue, r.MaxValue
	if math.IsNaN(min) || math.IsNaN(max) {
		return fmt.Errorf("globemap: legend: %v", ErrNoSamples)
	}
	if ramp == nil {
		ramp = LinearRamp{}
	}
	cm := &rampColorMap{ramp: ramp, min: min, max: max, alpha: 1}
	if max == min {
		// Give the color bar some width.
		d := math.Max(math.Abs(min)*0.05, 0.5)
		cm.min, cm.max = min-d, max+d
	}

	p, err := plot.New()
	if err != nil {
		return fmt.Errorf("globemap: legend: %v", err)
	}
	p.Add(&plotter.ColorBar{ColorMap: cm})
	p.HideY()
	p.X.Padding = 0
	p.X.Label.Text = legendLabel(r)
	p.X.Tick.Marker = plot.ConstantTicks([]plot.Tick{
		{Value: min, Label: fmt.Sprintf("%.3g", min)},
		{Value: max, Label: fmt.Sprintf("%.3g", max)},
	})

	img := vgimg.New(LegendWidth, LegendHeight)
	dc := draw.New(img)
	p.Draw(dc)
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(w); err != nil {
		return fmt.Errorf("globemap: writing legend: %v", err)
	}
	return nil
}

func legendLabel(r *Result) string {
	if r.Unit == "" {
		return r.Name
	}
	return fmt.Sprintf("%s (%s)", r.Name, r.Unit)
}

// rampColorMap presents a Ramp over [min, max] as a palette.ColorMap.
type rampColorMap struct {
	ramp     Ramp
	min, max float64
	alpha    float64
}

func (c *rampColorMap) At(v float64) (color.Color, error) {
	if math.IsNaN(v) {
		return nil, palette.ErrNaN
	}
	if v < c.min {
		return nil, palette.ErrUnderflow
	}
	if v > c.max {
		return nil, palette.ErrOverflow
	}
	col := c.ramp.Color((v - c.min) / (c.max - c.min)).NRGBA()
	col.A = uint8(math.Round(c.alpha * 255))
	return col, nil
}

func (c *rampColorMap) Max() float64 { return c.max }
func (c *rampColorMap) Min() float64 { return c.min }
func (c *rampColorMap) SetMax(v float64) { c.max = v }
func (c *rampColorMap) SetMin(v float64) { c.min = v }
func (c *rampColorMap) Alpha() float64 { return c.alpha }
func (c *rampColorMap) SetAlpha(a float64) { c.alpha = a }

func (c *rampColorMap) Palette(colors int) palette.Palette {
	p := make(rampPalette, colors)
	for i := range p {
		t := 0.0
		if colors > 1 {
			t = float64(i) / float64(colors-1)
		}
		p[i] = c.ramp.Color(t).NRGBA()
	}
	return p
}

type rampPalette []color.Color

func (p rampPalette) Colors() []color.Color { return p }

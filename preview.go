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

	"github.com/fogleman/gg"
	"github.com/golang/geo/r3"
)

// Preview writes an equirectangular PNG image of the colored points in
// r to w. Longitude -π is at the left edge and the north pole is at the
// top.
func Preview(w io.Writer, r *Result, width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("globemap: invalid preview size %dx%d", width, height)
	}
	dc := gg.NewContext(width, height)
	dc.SetColor(color.Black)
	dc.Clear()

	for i, p := range r.Points {
		x, y := projection(p, width, height)
		dc.DrawCircle(x, y, previewRadius(r, i, width))
		c := r.Colors[i]
		dc.SetRGB(c.R, c.G, c.B)
		dc.Fill()
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("globemap: writing preview: %v", err)
	}
	return nil
}

// previewRadius returns the drawn radius of point i in pixels.
func previewRadius(r *Result, i, width int) float64 {
	const minRadius = 1
	if r.Radii == nil || r.Points[i].Norm() == 0 {
		return minRadius
	}
	// Radii are arc lengths on the sphere; width pixels span one
	// full turn of longitude.
	arc := r.Radii[i] / r.Points[i].Norm()
	return math.Max(arc*float64(width)/(2*math.Pi), minRadius)
}

// projection returns the image coordinates of p.
func projection(p r3.Vector, width, height int) (x, y float64) {
	latFactor, lonFactor := IndexFactors(p)
	return lonFactor * float64(width), (1 - latFactor) * float64(height)
}

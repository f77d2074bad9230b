// seehuhn.de/go/casticon - placeholder icon generator
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package casticon

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/casticon/raster"
)

// Raster draws icons using the scanline rasterizer from the raster
// package.
var Raster Backend = rasterBackend{}

type rasterBackend struct{}

func (rasterBackend) Name() string {
	return "raster"
}

func (rasterBackend) Render(size int, opt Options) (*image.RGBA, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	l := NewLayout(size)
	bounds := image.Rect(0, 0, size, size)

	mode := raster.Hard
	if opt.Antialias {
		mode = raster.Smooth
	}
	r := raster.NewRasterizer(rect.Rect{URx: float64(size), URy: float64(size)})

	gradient := image.NewRGBA(bounds)
	paintGradient(gradient, opt.Style)

	mask := image.NewAlpha(bounds)
	r.FillNonZero(l.Background(), raster.Into(mask, mode))

	img := image.NewRGBA(bounds)
	draw.DrawMask(img, bounds, gradient, image.Point{}, mask, image.Point{}, draw.Src)

	fg := image.NewAlpha(bounds)
	emit := raster.Into(fg, mode)
	r.FillNonZero(l.Foreground(), emit)
	r.Width = l.StrokeWidth
	r.Cap = graphics.LineCapButt
	r.Stroke(l.StandArc(), emit)

	draw.DrawMask(img, bounds, image.NewUniform(opt.Style.Foreground), image.Point{}, fg, image.Point{}, draw.Over)
	return img, nil
}

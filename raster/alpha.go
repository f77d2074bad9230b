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

package raster

import "image"

// Edges selects how coverage is turned into alpha values.
type Edges int

const (
	// Smooth uses the coverage as alpha, giving anti-aliased edges.
	Smooth Edges = iota

	// Hard paints pixels which are at least half covered as fully opaque
	// and leaves all other pixels unchanged.
	Hard
)

func (e Edges) String() string {
	switch e {
	case Smooth:
		return "smooth"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// Into returns an EmitFunc which paints an opaque source through the
// coverage into dst, using source-over compositing.  Painting several
// paths into the same image gives the alpha of their union.
// Pixels outside dst.Rect are ignored.
func Into(dst *image.Alpha, mode Edges) EmitFunc {
	return func(y, xMin int, coverage []float32) {
		if y < dst.Rect.Min.Y || y >= dst.Rect.Max.Y {
			return
		}
		for i, c := range coverage {
			x := xMin + i
			if x < dst.Rect.Min.X || x >= dst.Rect.Max.X {
				continue
			}
			pix := &dst.Pix[dst.PixOffset(x, y)]

			if mode == Hard {
				if c >= 0.5 {
					*pix = 255
				}
				continue
			}

			a := float32(*pix) / 255
			a += c * (1 - a)
			*pix = uint8(min(255, a*255+0.5))
		}
	}
}

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
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/path"
)

// GG draws icons using the software renderer of github.com/gogpu/gg.
// The output is always anti-aliased.
var GG Backend = ggBackend{}

type ggBackend struct{}

func (ggBackend) Name() string {
	return "gg"
}

func (ggBackend) Render(size int, opt Options) (img *image.RGBA, err error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	l := NewLayout(size)
	bounds := image.Rect(0, 0, size, size)

	bg := gg.NewContext(size, size)
	defer func() {
		err = errors.Join(err, bg.Close())
	}()

	// gg has no gradient support in the software renderer, so the rows
	// are filled one by one.
	for y := range size {
		bg.SetColor(opt.Style.RowColor(y, size))
		bg.DrawRectangle(0, float64(y), float64(size), 1)
		if err := bg.Fill(); err != nil {
			return nil, fmt.Errorf("gradient: %w", err)
		}
	}

	tracePath(bg, l.Background())
	m := bg.AsMask()
	bg.ClearPath()
	mask := &image.Alpha{
		Pix:    m.Data(),
		Stride: m.Width(),
		Rect:   m.Bounds(),
	}

	canvas := image.NewRGBA(bounds)
	draw.DrawMask(canvas, bounds, bg.Image(), image.Point{}, mask, image.Point{}, draw.Src)

	fg := gg.NewContextForImage(canvas)
	defer func() {
		err = errors.Join(err, fg.Close())
	}()
	fg.SetColor(opt.Style.Foreground)
	fg.SetFillRule(gg.FillRuleNonZero)
	tracePath(fg, l.Foreground())
	if err := fg.Fill(); err != nil {
		return nil, fmt.Errorf("foreground: %w", err)
	}
	fg.SetLineWidth(l.StrokeWidth)
	fg.SetLineCap(gg.LineCapButt)
	tracePath(fg, l.StandArc())
	if err := fg.Stroke(); err != nil {
		return nil, fmt.Errorf("stand: %w", err)
	}

	img = image.NewRGBA(bounds)
	draw.Draw(img, bounds, fg.Image(), image.Point{}, draw.Src)
	return img, nil
}

// tracePath appends p to the current path of dc.
func tracePath(dc *gg.Context, p path.Path) {
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			dc.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			dc.LineTo(pts[0].X, pts[0].Y)
		case path.CmdQuadTo:
			dc.QuadraticTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y)
		case path.CmdCubeTo:
			dc.CubicTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			dc.ClosePath()
		}
	}
}

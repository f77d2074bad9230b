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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/casticon/shape"
)

// Box is a bounding box in inclusive pixel coordinates: the box
// {X0, Y0, X1, Y1} covers the pixels from column X0 to column X1 and from
// row Y0 to row Y1, both ends included.  Coordinates need not be integers.
type Box struct {
	X0, Y0, X1, Y1 float64
}

// Area returns the region of the plane covered by the box.
func (b Box) Area() rect.Rect {
	return rect.Rect{LLx: b.X0, LLy: b.Y0, URx: b.X1 + 1, URy: b.Y1 + 1}
}

// Pixels returns the region covered by the pixels whose indices are the
// truncated box coordinates.  Unlike [Box.Area], the result always lies on
// the pixel grid.
func (b Box) Pixels() rect.Rect {
	return rect.Rect{
		LLx: math.Floor(b.X0),
		LLy: math.Floor(b.Y0),
		URx: math.Floor(b.X1) + 1,
		URy: math.Floor(b.Y1) + 1,
	}
}

// Layout holds the geometry of an icon.  All values are derived from the
// icon size.
type Layout struct {
	Size int

	// Frame is the rounded rectangle which clips the background.
	Frame        Box
	CornerRadius float64

	// Head is the bounding box of the elliptical microphone head.
	Head Box

	// Stand is the bounding box of the ellipse whose lower half forms the
	// microphone stand.  The stroke lies inside the box.
	Stand       Box
	StrokeWidth float64

	Pole   Box
	Base   Box
	Bubble Box
}

// NewLayout computes the icon geometry for the given size.
func NewLayout(size int) *Layout {
	s := float64(size)

	// The horizontal center is rounded down to a whole pixel.
	cx := float64(size / 2)
	cy := s * 0.35
	headW := s * 0.25
	headH := s * 0.3

	standY := cy + headH/2 - s*0.05
	standW := headW * 1.3
	standH := s * 0.2

	width := float64(max(2, size/20))

	bubbleX := cx + s*0.25
	bubbleY := cy - s*0.1
	bubbleR := s * 0.12

	baseW := s * 0.2

	return &Layout{
		Size:         size,
		Frame:        Box{0, 0, s - 1, s - 1},
		CornerRadius: float64(size / 5),
		Head:         Box{cx - headW/2, cy - headH/2, cx + headW/2, cy + headH/2},
		Stand:        Box{cx - standW/2, standY, cx + standW/2, standY + 2*standH},
		StrokeWidth:  width,
		Pole:         Box{cx - width/2, standY + standH, cx + width/2, s * 0.75},
		Base:         Box{cx - baseW/2, s * 0.73, cx + baseW/2, s * 0.78},
		Bubble:       Box{bubbleX - bubbleR, bubbleY - bubbleR, bubbleX + bubbleR, bubbleY + bubbleR},
	}
}

// Background returns the outline of the rounded background rectangle.
func (l *Layout) Background() path.Path {
	return shape.RoundedRect(l.Frame.Area(), l.CornerRadius)
}

// Foreground returns the filled parts of the microphone and the bubble.
// The pole and the base are snapped to whole pixels.
func (l *Layout) Foreground() path.Path {
	return shape.Concat(
		ellipseIn(l.Head),
		shape.Rect(l.Pole.Pixels()),
		shape.Rect(l.Base.Pixels()),
		ellipseIn(l.Bubble),
	)
}

// StandArc returns the center line of the stand.  Stroked with
// StrokeWidth, the line fills the lower half of the Stand box.
func (l *Layout) StandArc() path.Path {
	a := l.Stand.Area()
	d := l.StrokeWidth / 2
	rx := max((a.URx-a.LLx)/2-d, 0)
	ry := max((a.URy-a.LLy)/2-d, 0)
	cx := (a.LLx + a.URx) / 2
	cy := (a.LLy + a.URy) / 2
	return shape.Arc(cx, cy, rx, ry, 0, math.Pi)
}

func ellipseIn(b Box) path.Path {
	a := b.Area()
	return shape.Ellipse((a.LLx+a.URx)/2, (a.LLy+a.URy)/2, (a.URx-a.LLx)/2, (a.URy-a.LLy)/2)
}

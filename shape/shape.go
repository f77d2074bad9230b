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

// Package shape constructs paths for simple geometric shapes.
//
// All shapes use device coordinates with the y-axis pointing down.  Angles
// are in radians and are measured from the positive x-axis towards the
// positive y-axis, so that increasing angles run clockwise on screen.
// Curved shapes are approximated by cubic Bézier curves spanning at most
// 90° each.
package shape

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Builder records path construction commands.  The zero value is an empty
// path.
type Builder struct {
	cmds   []path.Command
	coords []vec.Vec2
}

// MoveTo starts a new subpath at p.
func (b *Builder) MoveTo(p vec.Vec2) *Builder {
	b.cmds = append(b.cmds, path.CmdMoveTo)
	b.coords = append(b.coords, p)
	return b
}

// LineTo adds a straight line to p.
func (b *Builder) LineTo(p vec.Vec2) *Builder {
	b.cmds = append(b.cmds, path.CmdLineTo)
	b.coords = append(b.coords, p)
	return b
}

// QuadTo adds a quadratic Bézier curve with control point c and end point p.
func (b *Builder) QuadTo(c, p vec.Vec2) *Builder {
	b.cmds = append(b.cmds, path.CmdQuadTo)
	b.coords = append(b.coords, c, p)
	return b
}

// CubeTo adds a cubic Bézier curve with control points c1, c2 and end
// point p.
func (b *Builder) CubeTo(c1, c2, p vec.Vec2) *Builder {
	b.cmds = append(b.cmds, path.CmdCubeTo)
	b.coords = append(b.coords, c1, c2, p)
	return b
}

// Close closes the current subpath.
func (b *Builder) Close() *Builder {
	b.cmds = append(b.cmds, path.CmdClose)
	return b
}

// Path returns the recorded commands as a path.  Later changes to b do not
// affect the result.
func (b *Builder) Path() path.Path {
	cmds := slices.Clone(b.cmds)
	coords := slices.Clone(b.coords)
	return func(yield func(path.Command, []vec.Vec2) bool) {
		k := 0
		for _, cmd := range cmds {
			n := numPoints(cmd)
			if !yield(cmd, coords[k:k+n:k+n]) {
				return
			}
			k += n
		}
	}
}

func numPoints(cmd path.Command) int {
	switch cmd {
	case path.CmdMoveTo, path.CmdLineTo:
		return 1
	case path.CmdQuadTo:
		return 2
	case path.CmdCubeTo:
		return 3
	default:
		return 0
	}
}

// Rect returns a closed path around the rectangle r.
func Rect(r rect.Rect) path.Path {
	return rectBuilder(r).Path()
}

func rectBuilder(r rect.Rect) *Builder {
	return (&Builder{}).
		MoveTo(vec.Vec2{X: r.LLx, Y: r.LLy}).
		LineTo(vec.Vec2{X: r.URx, Y: r.LLy}).
		LineTo(vec.Vec2{X: r.URx, Y: r.URy}).
		LineTo(vec.Vec2{X: r.LLx, Y: r.URy}).
		Close()
}

// RoundedRect returns a closed path around the rectangle r with corners
// rounded by quarter circles of the given radius.  The radius is reduced
// to half the shorter side if necessary.  For radius <= 0 the result is
// the same as for [Rect].
func RoundedRect(r rect.Rect, radius float64) path.Path {
	radius = min(radius, (r.URx-r.LLx)/2, (r.URy-r.LLy)/2)
	if radius <= 0 {
		return Rect(r)
	}

	b := (&Builder{}).MoveTo(vec.Vec2{X: r.LLx + radius, Y: r.LLy})
	b.LineTo(vec.Vec2{X: r.URx - radius, Y: r.LLy})
	b.appendArc(r.URx-radius, r.LLy+radius, radius, radius, -math.Pi/2, 0)
	b.LineTo(vec.Vec2{X: r.URx, Y: r.URy - radius})
	b.appendArc(r.URx-radius, r.URy-radius, radius, radius, 0, math.Pi/2)
	b.LineTo(vec.Vec2{X: r.LLx + radius, Y: r.URy})
	b.appendArc(r.LLx+radius, r.URy-radius, radius, radius, math.Pi/2, math.Pi)
	b.LineTo(vec.Vec2{X: r.LLx, Y: r.LLy + radius})
	b.appendArc(r.LLx+radius, r.LLy+radius, radius, radius, math.Pi, 3*math.Pi/2)
	return b.Close().Path()
}

// Ellipse returns a closed path around the axis-aligned ellipse with
// center (cx, cy) and radii rx and ry.
func Ellipse(cx, cy, rx, ry float64) path.Path {
	return arcBuilder(cx, cy, rx, ry, 0, 2*math.Pi).Close().Path()
}

// Circle returns a closed path around the circle with center (cx, cy)
// and radius r.
func Circle(cx, cy, r float64) path.Path {
	return Ellipse(cx, cy, r, r)
}

// Arc returns an open path along the ellipse with center (cx, cy) and
// radii rx and ry, from angle a0 to angle a1.  If a1 < a0, the arc runs
// counter-clockwise.
func Arc(cx, cy, rx, ry, a0, a1 float64) path.Path {
	return arcBuilder(cx, cy, rx, ry, a0, a1).Path()
}

func arcBuilder(cx, cy, rx, ry, a0, a1 float64) *Builder {
	b := (&Builder{}).MoveTo(ellipsePoint(cx, cy, rx, ry, a0))
	b.appendArc(cx, cy, rx, ry, a0, a1)
	return b
}

// Concat returns a path which contains all subpaths of the arguments,
// in order.
func Concat(paths ...path.Path) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, p := range paths {
			for cmd, pts := range p {
				if !yield(cmd, pts) {
					return
				}
			}
		}
	}
}

// appendArc adds cubic Bézier curves for the elliptical arc from a0 to
// a1.  The current point of b must be the start of the arc.
func (b *Builder) appendArc(cx, cy, rx, ry, a0, a1 float64) {
	span := a1 - a0
	if span == 0 {
		return
	}
	n := max(int(math.Ceil(math.Abs(span)/(math.Pi/2)-angleEpsilon)), 1)
	step := span / float64(n)

	// The control points lie on the tangents, at a distance of
	// 4/3·tan(θ/4) times the radius from the end points.
	k := 4.0 / 3.0 * math.Tan(step/4)

	theta := a0
	for i := range n {
		next := a0 + step*float64(i+1)
		if i == n-1 {
			next = a1
		}
		sin0, cos0 := math.Sincos(theta)
		sin1, cos1 := math.Sincos(next)

		c1 := vec.Vec2{X: cx + rx*(cos0-k*sin0), Y: cy + ry*(sin0+k*cos0)}
		c2 := vec.Vec2{X: cx + rx*(cos1+k*sin1), Y: cy + ry*(sin1-k*cos1)}
		b.CubeTo(c1, c2, ellipsePoint(cx, cy, rx, ry, next))
		theta = next
	}
}

func ellipsePoint(cx, cy, rx, ry, a float64) vec.Vec2 {
	sin, cos := math.Sincos(a)
	return vec.Vec2{X: cx + rx*cos, Y: cy + ry*sin}
}

// angleEpsilon avoids an extra curve when the span is a multiple of 90°
// up to rounding errors.
const angleEpsilon = 1e-9

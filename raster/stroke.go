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

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// segment is a line segment of a flattened path, in user space.
type segment struct {
	a, b vec.Vec2
	t    vec.Vec2 // unit tangent, from a to b
	n    vec.Vec2 // unit normal, t rotated by 90°
}

// subpath is a range of r.segs.
type subpath struct {
	start, end int
	closed     bool
}

// Stroke computes the coverage of the stroked outline of p, using the
// line width, cap style, join style and miter limit of r.
//
// The outline is the union of simple polygons: one quadrilateral per
// segment, plus the polygons for joins and caps.  All polygons have the
// same orientation, so that the nonzero rule paints their union.
func (r *Rasterizer) Stroke(p path.Path, emit EmitFunc) {
	r.segs = r.segs[:0]
	r.subpaths = r.subpaths[:0]
	r.dots = r.dots[:0]

	start := 0
	r.flatten(p, r.addSegment, func(first, last vec.Vec2, closed bool) {
		if closed && last != first {
			r.addSegment(last, first)
		}
		if len(r.segs) == start {
			// all segments had zero length
			r.dots = append(r.dots, first)
		} else {
			r.subpaths = append(r.subpaths, subpath{start: start, end: len(r.segs), closed: closed})
		}
		start = len(r.segs)
	})

	d := r.Width / 2
	if d <= 0 {
		return
	}

	r.startEdges()
	for _, sp := range r.subpaths {
		segs := r.segs[sp.start:sp.end]
		for i := range segs {
			s := &segs[i]
			off := s.n.Mul(d)
			r.addPolygon(s.a.Add(off), s.b.Add(off), s.b.Sub(off), s.a.Sub(off))
			if i > 0 {
				r.addJoin(s.a, segs[i-1].t, s.t, d)
			}
		}

		first := &segs[0]
		last := &segs[len(segs)-1]
		if sp.closed {
			r.addJoin(first.a, last.t, first.t, d)
		} else {
			r.addCap(first.a, first.t.Mul(-1), d)
			r.addCap(last.b, last.t, d)
		}
	}

	// A subpath without extent is only visible with round caps.
	if r.Cap == graphics.LineCapRound {
		for _, pt := range r.dots {
			r.addDisc(pt, d)
		}
	}

	r.sweep(NonZero, emit)
}

// addSegment appends the segment a-b to r.segs, skipping segments of zero
// length.
func (r *Rasterizer) addSegment(a, b vec.Vec2) {
	v := b.Sub(a)
	l := v.Length()
	if l < zeroLengthThreshold {
		return
	}
	t := v.Mul(1 / l)
	r.segs = append(r.segs, segment{
		a: a,
		b: b,
		t: t,
		n: vec.Vec2{X: -t.Y, Y: t.X},
	})
}

// addCap adds the cap at the end point p of a stroke.  The unit vector t
// points away from the stroke.
func (r *Rasterizer) addCap(p, t vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addDisc(p, d)
	case graphics.LineCapSquare:
		n := vec.Vec2{X: -t.Y, Y: t.X}.Mul(d)
		ext := p.Add(t.Mul(d))
		r.addPolygon(p.Add(n), ext.Add(n), ext.Sub(n), p.Sub(n))
	}
	// butt caps end flush with the segment
}

// addJoin adds the join at the point p, where the stroke direction changes
// from t1 to t2.
func (r *Rasterizer) addJoin(p, t1, t2 vec.Vec2, d float64) {
	cos := t1.Dot(t2)
	sin := t1.X*t2.Y - t1.Y*t2.X
	if math.Abs(sin) < collinearityThreshold && cos > 0 {
		return
	}
	if cos < cuspCosineThreshold {
		r.addCap(p, t1, d)
		r.addCap(p, t2.Mul(-1), d)
		return
	}

	// The join fills the gap on the outer side of the corner.
	side := -d
	if sin < 0 {
		side = d
	}
	n1 := vec.Vec2{X: -t1.Y, Y: t1.X}.Mul(side)
	n2 := vec.Vec2{X: -t2.Y, Y: t2.X}.Mul(side)

	switch r.Join {
	case graphics.LineJoinRound:
		r.addDisc(p, d)
		return
	case graphics.LineJoinMiter:
		// The miter length, relative to the line width, is 1/cos(θ/2)
		// where θ is the angle between the tangents.
		cosHalf := math.Sqrt((1 + cos) / 2)
		if cosHalf > 0 && 1/cosHalf <= r.MiterLimit+miterEpsilon {
			bisector := n1.Add(n2)
			if l := bisector.Length(); l > zeroLengthThreshold {
				tip := p.Add(bisector.Mul(d / (cosHalf * l)))
				r.addPolygon(p, p.Add(n1), tip, p.Add(n2))
				return
			}
		}
	}
	r.addPolygon(p, p.Add(n1), p.Add(n2))
}

// addDisc adds a polygonal approximation of the circle with the given
// center and radius.
func (r *Rasterizer) addDisc(center vec.Vec2, radius float64) {
	devRadius := max(
		r.deviceLength(vec.Vec2{X: radius}),
		r.deviceLength(vec.Vec2{Y: radius}))

	// A chord for the angle θ deviates by radius*(1 - cos(θ/2)) from the
	// circle.
	step := math.Pi / 2
	if devRadius > r.Flatness {
		step = 2 * math.Acos(1-r.Flatness/devRadius)
	}
	n := max(int(math.Ceil(2*math.Pi/step)), 4)

	r.ring = r.ring[:0]
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		r.ring = append(r.ring, vec.Vec2{
			X: center.X + radius*math.Cos(phi),
			Y: center.Y + radius*math.Sin(phi),
		})
	}
	r.addPolygon(r.ring...)
}

// addPolygon adds the edges of a closed polygon.  The vertices are
// traversed in the order which gives the polygon a negative signed area.
func (r *Rasterizer) addPolygon(pts ...vec.Vec2) {
	n := len(pts)
	if n < 3 {
		return
	}

	var area float64
	for i := range n {
		a, b := pts[i], pts[(i+1)%n]
		area += a.X*b.Y - b.X*a.Y
	}
	switch {
	case area < 0:
		for i := range n {
			r.addEdge(pts[i], pts[(i+1)%n])
		}
	case area > 0:
		for i := range n {
			r.addEdge(pts[(i+1)%n], pts[i])
		}
	}
}

// miterEpsilon absorbs rounding errors at the miter limit.
const miterEpsilon = 1e-10

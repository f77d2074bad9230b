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

// Package raster converts vector paths into per-pixel coverage.
//
// Coverage is the fraction of a pixel's area which lies inside the filled
// or stroked path, from 0 (outside) to 1 (inside). Paths use device
// coordinates with the y-axis pointing down, after the transformation by
// [Rasterizer.CTM].
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one scanline.  coverage[i] is the
// coverage of pixel (xMin+i, y).  The slice is only valid for the duration
// of the call.
type EmitFunc func(y, xMin int, coverage []float32)

// FillRule determines which points are inside a path.
type FillRule int

const (
	// NonZero fills points with a non-zero winding number.
	NonZero FillRule = iota

	// EvenOdd fills points with an odd winding number.
	EvenOdd
)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0     float64 // start point
	dxdy       float64 // inverse slope
	yMin, yMax float64
	dir        float32 // +1 for downward edges, -1 for upward edges
}

func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

func (e *edge) yAt(x float64) float64 {
	return e.y0 + (x-e.x0)/e.dxdy
}

// Rasterizer computes anti-aliased coverage for filled and stroked paths.
// The exported fields may be changed between calls.  Internal buffers are
// kept between calls, so that a Rasterizer can be reused for many paths
// without allocations.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip restricts the output to this device space rectangle.
	// The coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and its polygonal approximation.
	Flatness float64

	// Width is the line width for strokes, in user space units.
	Width float64

	// Cap is the shape used at the ends of open subpaths.
	Cap graphics.LineCapStyle

	// Join is the shape used where two segments of a stroke meet.
	Join graphics.LineJoinStyle

	// MiterLimit limits the length of miter joins, relative to the
	// line width.  Joins exceeding the limit are bevelled.
	MiterLimit float64

	edges  []edge
	active []int
	cover  []float32 // signed change of coverage, per pixel
	area   []float32 // coverage contribution within the pixel
	box    bbox

	// stroking state
	segs     []segment
	subpaths []subpath
	dots     []vec.Vec2
	ring     []vec.Vec2
}

// bbox is the device space bounding box of the collected edges.
type bbox struct {
	empty                  bool
	xMin, xMax, yMin, yMax float64
}

func (b *bbox) add(x, y float64) {
	if b.empty {
		b.xMin, b.xMax, b.yMin, b.yMax = x, x, y, y
		b.empty = false
		return
	}
	b.xMin = min(b.xMin, x)
	b.xMax = max(b.xMax, x)
	b.yMin = min(b.yMin, y)
	b.yMax = max(b.yMax, y)
}

// NewRasterizer returns a Rasterizer which clips to the given rectangle.
// The remaining parameters are set to the PDF defaults.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	r := &Rasterizer{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is retained.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit

	r.edges = r.edges[:0]
	r.active = r.active[:0]
	r.segs = r.segs[:0]
	r.subpaths = r.subpaths[:0]
	r.dots = r.dots[:0]
	r.ring = r.ring[:0]
}

// Fill computes the coverage of the interior of p.  Open subpaths are
// closed implicitly.
func (r *Rasterizer) Fill(p path.Path, rule FillRule, emit EmitFunc) {
	r.startEdges()
	r.flatten(p, r.addEdge, func(first, last vec.Vec2, _ bool) {
		if last != first {
			r.addEdge(last, first)
		}
	})
	r.sweep(rule, emit)
}

// FillNonZero is a shorthand for Fill with the NonZero rule.
func (r *Rasterizer) FillNonZero(p path.Path, emit EmitFunc) {
	r.Fill(p, NonZero, emit)
}

// FillEvenOdd is a shorthand for Fill with the EvenOdd rule.
func (r *Rasterizer) FillEvenOdd(p path.Path, emit EmitFunc) {
	r.Fill(p, EvenOdd, emit)
}

// flatten walks the path and replaces curves by line segments.  The line
// callback receives every segment in user space.  The done callback is
// called once for every subpath which contains a drawing command, with the
// first and last point of the subpath.
func (r *Rasterizer) flatten(p path.Path, line func(a, b vec.Vec2), done func(first, last vec.Vec2, closed bool)) {
	var cur, first vec.Vec2
	drawing := false
	finish := func(closed bool) {
		if drawing {
			done(first, cur, closed)
			drawing = false
		}
	}

	if p == nil {
		return
	}
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			finish(false)
			cur = pts[0]
			first = cur
		case path.CmdLineTo:
			line(cur, pts[0])
			cur = pts[0]
			drawing = true
		case path.CmdQuadTo:
			r.flattenQuad(cur, pts[0], pts[1], line)
			cur = pts[1]
			drawing = true
		case path.CmdCubeTo:
			r.flattenCubic(cur, pts[0], pts[1], pts[2], line)
			cur = pts[2]
			drawing = true
		case path.CmdClose:
			finish(true)
			cur = first
		}
	}
	finish(false)
}

// deviceLength returns the device space length of the user space vector v,
// ignoring the translation part of the CTM.
func (r *Rasterizer) deviceLength(v vec.Vec2) float64 {
	return math.Hypot(r.CTM[0]*v.X+r.CTM[2]*v.Y, r.CTM[1]*v.X+r.CTM[3]*v.Y)
}

// flattenQuad approximates the quadratic Bézier curve p0, p1, p2.
func (r *Rasterizer) flattenQuad(p0, p1, p2 vec.Vec2, line func(a, b vec.Vec2)) {
	// maximal deviation from the chord is |p0 - 2p1 + p2|/4
	dev := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		line(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates the cubic Bézier curve p0, p1, p2, p3.
// The number of segments is chosen using Wang's formula.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, line func(a, b vec.Vec2)) {
	d1 := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.deviceLength(p1.Sub(p2.Mul(2)).Add(p3))
	n := 1
	if m := max(d1, d2); m > 0 {
		if k := math.Sqrt(3 * m / (4 * r.Flatness)); k > 1 {
			n = int(math.Ceil(k))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		line(prev, pt)
		prev = pt
	}
}

func (r *Rasterizer) startEdges() {
	r.edges = r.edges[:0]
	r.box = bbox{empty: true}
}

// addEdge transforms the user space segment a-b to device space and
// appends it to the edge list.  Horizontal edges do not contribute to the
// coverage and are dropped.
func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	m := r.CTM
	x0 := m[0]*a.X + m[2]*a.Y + m[4]
	y0 := m[1]*a.X + m[3]*a.Y + m[5]
	x1 := m[0]*b.X + m[2]*b.Y + m[4]
	y1 := m[1]*b.X + m[3]*b.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}

	e := edge{
		x0:   x0,
		y0:   y0,
		dxdy: (x1 - x0) / dy,
		yMin: min(y0, y1),
		yMax: max(y0, y1),
		dir:  1,
	}
	if dy < 0 {
		e.dir = -1
	}
	r.edges = append(r.edges, e)
	r.box.add(x0, y0)
	r.box.add(x1, y1)
}

// sweep scans the collected edges from top to bottom, keeping a list of
// the edges which intersect the current scanline.
//
// For every pixel two values are accumulated: cover is the signed vertical
// extent of the edges crossing the pixel, and area is cover weighted by the
// fraction of the pixel to the right of the crossing.  Summing cover from
// the left and adding area gives the signed area of the path inside the
// pixel.
func (r *Rasterizer) sweep(rule FillRule, emit EmitFunc) {
	if len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.box.xMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.box.xMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.box.yMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.box.yMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin, b.yMin)
	})
	r.active = r.active[:0]
	next := 0

	for y := yMin; y < yMax; y++ {
		top := float64(y)
		bottom := float64(y + 1)

		for next < len(r.edges) && r.edges[next].yMin < bottom {
			r.active = append(r.active, next)
			next++
		}
		r.active = slices.DeleteFunc(r.active, func(i int) bool {
			return r.edges[i].yMax <= top
		})
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, i := range r.active {
			r.accumulate(&r.edges[i], top, bottom, xMin, xMax)
		}

		integrate(r.cover, r.area, rule)
		if span, offset := nonZeroSpan(r.cover); span != nil {
			emit(y, xMin+offset, span)
		}
	}
}

// accumulate adds the part of e between the heights top and bottom to the
// cover and area buffers.  Index 0 of the buffers corresponds to pixel
// column xMin.
func (r *Rasterizer) accumulate(e *edge, top, bottom float64, xMin, xMax int) {
	ya := max(top, e.yMin)
	yb := min(bottom, e.yMax)
	if yb <= ya {
		return
	}

	xa := e.xAt(ya)
	xb := e.xAt(yb)
	left := int(math.Floor(min(xa, xb)))
	right := int(math.Floor(max(xa, xb)))

	switch {
	case right < xMin:
		// everything right of the edge is affected
		c := e.dir * float32(yb-ya)
		r.cover[0] += c
		r.area[0] += c
		return
	case left >= xMax:
		return
	case left == right:
		r.addCell(left, xMin, xMax, e.dir*float32(yb-ya), (xa+xb)/2)
		return
	}

	// The edge crosses several pixel columns.  Split it at the column
	// boundaries.
	for px := left; px <= right; px++ {
		ca := e.yAt(float64(px))
		cb := e.yAt(float64(px + 1))
		lo := max(min(ca, cb), ya)
		hi := min(max(ca, cb), yb)
		if hi <= lo {
			continue
		}
		r.addCell(px, xMin, xMax, e.dir*float32(hi-lo), e.xAt((lo+hi)/2))
	}
}

// addCell records an edge piece of signed height c which crosses pixel
// column px at mean position x.
func (r *Rasterizer) addCell(px, xMin, xMax int, c float32, x float64) {
	switch {
	case px < xMin:
		r.cover[0] += c
		r.area[0] += c
	case px < xMax:
		i := px - xMin
		r.cover[i] += c
		r.area[i] += c * float32(1-(x-float64(px)))
	}
}

// integrate turns the accumulated cover and area values of one scanline
// into coverage, in place.
func integrate(cover, area []float32, rule FillRule) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}

		if rule == EvenOdd {
			v -= 2 * float32(int(v/2))
			v = 1 - abs32(1-v)
		} else if v > 1 {
			v = 1
		}
		cover[i] = v
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// nonZeroSpan returns the part of coverage between the first and last
// non-zero entry, together with its offset.  If all entries are zero,
// nil is returned.
func nonZeroSpan(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage)
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is the default curve approximation tolerance in
	// device pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit matches the PDF default.
	defaultMiterLimit = 10.0

	// horizontalEdgeThreshold is the minimal vertical extent of an edge.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the minimal length of a stroke segment.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold bounds |sin θ| for segments which are treated
	// as collinear, so that no join is drawn between them.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold detects segments which double back on
	// themselves.  cos(179.43°) ≈ -0.9999
	cuspCosineThreshold = -0.9999
)

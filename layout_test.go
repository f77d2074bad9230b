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
	"image"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/casticon/raster"
)

func TestNewLayout(t *testing.T) {
	cases := []struct {
		size int
		want *Layout
	}{
		{
			size: 16,
			want: &Layout{
				Size:         16,
				Frame:        Box{0, 0, 15, 15},
				CornerRadius: 3,
				Head:         Box{6, 3.2, 10, 8},
				Stand:        Box{5.4, 7.2, 10.6, 13.6},
				StrokeWidth:  2,
				Pole:         Box{7, 10.4, 9, 12},
				Base:         Box{6.4, 11.68, 9.6, 12.48},
				Bubble:       Box{10.08, 2.08, 13.92, 5.92},
			},
		},
		{
			size: 128,
			want: &Layout{
				Size:         128,
				Frame:        Box{0, 0, 127, 127},
				CornerRadius: 25,
				Head:         Box{48, 25.6, 80, 64},
				Stand:        Box{43.2, 57.6, 84.8, 108.8},
				StrokeWidth:  6,
				Pole:         Box{61, 83.2, 67, 96},
				Base:         Box{51.2, 93.44, 76.8, 99.84},
				Bubble:       Box{80.64, 16.64, 111.36, 47.36},
			},
		},
		{
			// odd sizes round the horizontal center down
			size: 33,
			want: &Layout{
				Size:         33,
				Frame:        Box{0, 0, 32, 32},
				CornerRadius: 6,
				Head:         Box{16 - 33*0.125, 33*0.35 - 33*0.15, 16 + 33*0.125, 33*0.35 + 33*0.15},
				Stand: Box{
					16 - 33*0.1625, 33 * 0.45, 16 + 33*0.1625, 33*0.45 + 2*33*0.2,
				},
				StrokeWidth: 2,
				Pole:        Box{15, 33*0.45 + 33*0.2, 17, 33 * 0.75},
				Base:        Box{16 - 33*0.1, 33 * 0.73, 16 + 33*0.1, 33 * 0.78},
				Bubble: Box{
					16 + 33*0.25 - 33*0.12, 33*0.25 - 33*0.12,
					16 + 33*0.25 + 33*0.12, 33*0.25 + 33*0.12,
				},
			},
		},
	}

	for _, tc := range cases {
		got := NewLayout(tc.size)
		if d := cmp.Diff(tc.want, got, cmpopts.EquateApprox(0, 1e-9)); d != "" {
			t.Errorf("size %d (-want +got):\n%s", tc.size, d)
		}
	}
}

func TestStrokeWidth(t *testing.T) {
	cases := []struct {
		size  int
		width float64
	}{
		{1, 2}, {16, 2}, {32, 2}, {48, 2}, {60, 3}, {128, 6}, {1000, 50},
	}
	for _, tc := range cases {
		if got := NewLayout(tc.size).StrokeWidth; got != tc.width {
			t.Errorf("size %d: got stroke width %g, want %g", tc.size, got, tc.width)
		}
	}
}

func TestBoxArea(t *testing.T) {
	b := Box{0, 0, 15, 15}
	want := rect.Rect{LLx: 0, LLy: 0, URx: 16, URy: 16}
	if got := b.Area(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestBoxPixels(t *testing.T) {
	cases := []struct {
		b    Box
		want rect.Rect
	}{
		{Box{0, 0, 15, 15}, rect.Rect{URx: 16, URy: 16}},
		{Box{6.4, 11.68, 9.6, 12.48}, rect.Rect{LLx: 6, LLy: 11, URx: 10, URy: 13}},
		{Box{51.2, 93.44, 76.8, 99.84}, rect.Rect{LLx: 51, LLy: 93, URx: 77, URy: 100}},
	}
	for _, tc := range cases {
		if got := tc.b.Pixels(); got != tc.want {
			t.Errorf("%v: got %v, want %v", tc.b, got, tc.want)
		}
	}
}

// TestForegroundPixelGrid checks that the pole and the base cover exactly
// the pixels between the truncated box coordinates.
func TestForegroundPixelGrid(t *testing.T) {
	cases := []struct {
		size    int
		painted []image.Point
		empty   []image.Point
	}{
		{
			// pole: columns 7-9, rows 10-12; base: columns 6-9, rows 11-12
			size:    16,
			painted: []image.Point{{7, 10}, {9, 10}, {6, 11}, {9, 11}, {6, 12}, {9, 12}},
			empty:   []image.Point{{6, 10}, {10, 10}, {5, 12}, {10, 11}, {10, 12}, {8, 9}, {6, 13}, {9, 13}},
		},
		{
			// pole: columns 61-67, rows 83-96; base: columns 51-76, rows 93-99
			size:    128,
			painted: []image.Point{{61, 83}, {67, 83}, {51, 93}, {76, 93}, {51, 99}, {76, 99}},
			empty:   []image.Point{{60, 85}, {68, 85}, {64, 82}, {50, 95}, {77, 95}, {52, 100}, {55, 100}, {76, 100}},
		},
	}
	for _, tc := range cases {
		l := NewLayout(tc.size)
		mask := image.NewAlpha(image.Rect(0, 0, tc.size, tc.size))
		r := raster.NewRasterizer(rect.Rect{URx: float64(tc.size), URy: float64(tc.size)})
		r.FillNonZero(l.Foreground(), raster.Into(mask, raster.Hard))

		for _, p := range tc.painted {
			if a := mask.AlphaAt(p.X, p.Y).A; a != 255 {
				t.Errorf("size %d: pixel %v has alpha %d, want 255", tc.size, p, a)
			}
		}
		for _, p := range tc.empty {
			if a := mask.AlphaAt(p.X, p.Y).A; a != 0 {
				t.Errorf("size %d: pixel %v has alpha %d, want 0", tc.size, p, a)
			}
		}
	}
}

// TestStandArc checks that the stroked stand stays inside its box.
func TestStandArc(t *testing.T) {
	for _, size := range []int{16, 32, 48, 128} {
		l := NewLayout(size)
		var coords []vec.Vec2
		for _, pts := range l.StandArc() {
			coords = append(coords, pts...)
		}
		a := l.Stand.Area()
		d := l.StrokeWidth / 2

		start := coords[0]
		end := coords[len(coords)-1]
		if math.Abs(start.X-(a.URx-d)) > 1e-9 || math.Abs(end.X-(a.LLx+d)) > 1e-9 {
			t.Errorf("size %d: arc runs from x=%g to x=%g, want %g to %g",
				size, start.X, end.X, a.URx-d, a.LLx+d)
		}
		midY := (a.LLy + a.URy) / 2
		if math.Abs(start.Y-midY) > 1e-9 || math.Abs(end.Y-midY) > 1e-9 {
			t.Errorf("size %d: arc ends at y=%g and y=%g, want %g", size, start.Y, end.Y, midY)
		}
		for _, c := range coords {
			if c.Y < midY-1e-9 || c.Y > a.URy-d+1e-9 {
				t.Errorf("size %d: point %v outside of the lower half", size, c)
			}
		}
	}
}

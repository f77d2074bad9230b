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
	"bytes"
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"
)

var iconSizes = []int{16, 32, 48, 128}

func TestRenderDimensions(t *testing.T) {
	for _, size := range []int{1, 2, 3, 5, 16, 32, 48, 128, 200} {
		img := Render(size)
		want := image.Rect(0, 0, size, size)
		if img.Bounds() != want {
			t.Errorf("size %d: got bounds %v, want %v", size, img.Bounds(), want)
		}
	}
}

func TestRenderInvalidSize(t *testing.T) {
	for _, size := range []int{0, -1, -128} {
		if img := Render(size); !img.Bounds().Empty() {
			t.Errorf("size %d: got bounds %v, want empty", size, img.Bounds())
		}
		for _, b := range Backends {
			opt := DefaultOptions()
			opt.Backend = b
			_, err := RenderWith(size, opt)
			if !errors.Is(err, ErrInvalidSize) {
				t.Errorf("%s, size %d: got error %v, want ErrInvalidSize", b.Name(), size, err)
			}
		}
	}
}

func TestCornersTransparent(t *testing.T) {
	for _, size := range iconSizes {
		img := Render(size)
		last := size - 1
		for _, p := range []image.Point{{0, 0}, {last, 0}, {0, last}, {last, last}} {
			if a := img.RGBAAt(p.X, p.Y).A; a != 0 {
				t.Errorf("size %d: corner %v has alpha %d", size, p, a)
			}
		}
	}
}

func TestTopCenter(t *testing.T) {
	want := color.RGBA{R: 99, G: 102, B: 241, A: 255}
	for _, size := range iconSizes {
		img := Render(size)
		if got := img.RGBAAt(size/2, 0); got != want {
			t.Errorf("size %d: top center is %v, want %v", size, got, want)
		}
	}
}

func TestBottomCenter(t *testing.T) {
	for _, size := range iconSizes {
		img := Render(size)
		got := img.RGBAAt(size/2, size-1)

		// top + (bottom-top)*(size-1)/size, rounded towards zero
		ratio := float64(size-1) / float64(size)
		want := color.RGBA{
			R: uint8(int(99 + (67-99)*ratio)),
			G: uint8(int(102 + (56-102)*ratio)),
			B: uint8(int(241 + (202-241)*ratio)),
			A: 255,
		}
		if got != want {
			t.Errorf("size %d: bottom center is %v, want %v", size, got, want)
		}
	}

	img := Render(16)
	if got, want := img.RGBAAt(8, 15), (color.RGBA{R: 69, G: 58, B: 204, A: 255}); got != want {
		t.Errorf("size 16: bottom center is %v, want %v", got, want)
	}
}

func TestRowColor(t *testing.T) {
	cases := []struct {
		y, size int
		want    color.RGBA
	}{
		{0, 16, color.RGBA{R: 99, G: 102, B: 241, A: 255}},
		{8, 16, color.RGBA{R: 83, G: 79, B: 221, A: 255}},
		{15, 16, color.RGBA{R: 69, G: 58, B: 204, A: 255}},
		{127, 128, color.RGBA{R: 67, G: 56, B: 202, A: 255}},
	}
	for _, tc := range cases {
		if got := DefaultStyle.RowColor(tc.y, tc.size); got != tc.want {
			t.Errorf("row %d of %d: got %v, want %v", tc.y, tc.size, got, tc.want)
		}
	}
}

func TestForeground(t *testing.T) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for _, size := range iconSizes {
		img := Render(size)
		l := NewLayout(size)

		points := map[string]image.Point{
			"head":   center(l.Head),
			"pole":   {size / 2, int(l.Pole.Y0+l.Pole.Y1) / 2},
			"base":   center(l.Base),
			"bubble": center(l.Bubble),
			"stand":  {int(l.Stand.X0 + 1), int((l.Stand.Y0+l.Stand.Y1+1)/2) + 1},
		}
		for name, p := range points {
			if got := img.RGBAAt(p.X, p.Y); got != white {
				t.Errorf("size %d: %s pixel %v is %v, want white", size, name, p, got)
			}
		}
	}

	// Between the stand and the pole, the background shows.
	img := Render(128)
	if got, want := img.RGBAAt(54, 86), DefaultStyle.RowColor(86, 128); got != want {
		t.Errorf("pixel (54,86) is %v, want %v", got, want)
	}
}

func TestHardEdges(t *testing.T) {
	for _, size := range iconSizes {
		img := Render(size)
		for i := 3; i < len(img.Pix); i += 4 {
			if a := img.Pix[i]; a != 0 && a != 255 {
				p := i / 4
				t.Fatalf("size %d: pixel (%d,%d) has alpha %d", size, p%size, p/size, a)
			}
		}
	}
}

func TestAntialias(t *testing.T) {
	opt := DefaultOptions()
	opt.Antialias = true

	for _, size := range []int{32, 48, 128} {
		img, err := RenderWith(size, opt)
		if err != nil {
			t.Fatal(err)
		}
		if a := img.RGBAAt(0, 0).A; a != 0 {
			t.Errorf("size %d: corner alpha %d", size, a)
		}
		if got, want := img.RGBAAt(size/2, 0), DefaultStyle.Top; got != want {
			t.Errorf("size %d: top center is %v, want %v", size, got, want)
		}

		partial := 0
		for i := 3; i < len(img.Pix); i += 4 {
			if a := img.Pix[i]; a != 0 && a != 255 {
				partial++
			}
		}
		if partial == 0 {
			t.Errorf("size %d: no partially transparent pixels", size)
		}
	}
}

func TestDeterministic(t *testing.T) {
	for _, b := range Backends {
		opt := DefaultOptions()
		opt.Backend = b
		for _, size := range iconSizes {
			img1, err := RenderWith(size, opt)
			if err != nil {
				t.Fatal(err)
			}
			img2, err := RenderWith(size, opt)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(img1.Pix, img2.Pix) {
				t.Errorf("%s, size %d: renders differ", b.Name(), size)
			}
		}
	}
}

func TestCustomStyle(t *testing.T) {
	opt := DefaultOptions()
	opt.Style = Style{
		Top:        color.RGBA{R: 200, G: 10, B: 10, A: 255},
		Bottom:     color.RGBA{R: 100, G: 10, B: 60, A: 255},
		Foreground: color.RGBA{R: 0, G: 0, B: 0, A: 255},
	}
	img, err := RenderWith(64, opt)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.RGBAAt(32, 0); got != opt.Style.Top {
		t.Errorf("top center is %v, want %v", got, opt.Style.Top)
	}
	head := center(NewLayout(64).Head)
	if got := img.RGBAAt(head.X, head.Y); got != opt.Style.Foreground {
		t.Errorf("head is %v, want %v", got, opt.Style.Foreground)
	}
}

func TestBackendByName(t *testing.T) {
	for _, name := range []string{"raster", "gg", "GG", "Raster"} {
		b, err := BackendByName(name)
		if err != nil {
			t.Errorf("%q: %v", name, err)
			continue
		}
		if !strings.EqualFold(b.Name(), name) {
			t.Errorf("%q: got backend %q", name, b.Name())
		}
	}

	if _, err := BackendByName("cairo"); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("got error %v, want ErrUnknownBackend", err)
	}
}

func TestGG(t *testing.T) {
	opt := DefaultOptions()
	opt.Backend = GG

	for _, size := range iconSizes {
		img, err := RenderWith(size, opt)
		if err != nil {
			t.Fatal(err)
		}
		if img.Bounds() != image.Rect(0, 0, size, size) {
			t.Fatalf("size %d: got bounds %v", size, img.Bounds())
		}

		if got := img.RGBAAt(size/2, 0); !near(got, DefaultStyle.Top, 3) {
			t.Errorf("size %d: top center is %v, want about %v", size, got, DefaultStyle.Top)
		}
		bottom := DefaultStyle.RowColor(size-1, size)
		if got := img.RGBAAt(size/2, size-1); !near(got, bottom, 3) {
			t.Errorf("size %d: bottom center is %v, want about %v", size, got, bottom)
		}
		white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
		head := center(NewLayout(size).Head)
		if got := img.RGBAAt(head.X, head.Y); !near(got, white, 3) {
			t.Errorf("size %d: head is %v, want white", size, got)
		}
	}

	img, err := RenderWith(128, opt)
	if err != nil {
		t.Fatal(err)
	}
	if a := img.RGBAAt(0, 0).A; a != 0 {
		t.Errorf("corner alpha %d", a)
	}
}

func TestDownscale(t *testing.T) {
	master := Render(128)
	for _, size := range []int{16, 32, 48} {
		img := Downscale(master, size)
		if img.Bounds() != image.Rect(0, 0, size, size) {
			t.Errorf("size %d: got bounds %v", size, img.Bounds())
		}
		if got := img.RGBAAt(size/2, 0); !near(got, DefaultStyle.Top, 8) {
			t.Errorf("size %d: top center is %v, want about %v", size, got, DefaultStyle.Top)
		}
	}
	if img := Downscale(master, 0); !img.Bounds().Empty() {
		t.Errorf("size 0: got bounds %v", img.Bounds())
	}
}

func center(b Box) image.Point {
	a := b.Area()
	return image.Point{X: int((a.LLx + a.URx) / 2), Y: int((a.LLy + a.URy) / 2)}
}

func near(a, b color.RGBA, tol int) bool {
	d := func(x, y uint8) bool {
		diff := int(x) - int(y)
		return diff >= -tol && diff <= tol
	}
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}

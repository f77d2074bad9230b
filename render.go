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

// Package casticon draws placeholder icons with a microphone motif.
//
// An icon is a square with rounded corners, filled with a vertical colour
// gradient.  On top of the gradient, a white microphone (head, stand, pole
// and base) and a round speech bubble are drawn.  All geometry is a fixed
// fraction of the icon size, so that rendering is deterministic.
package casticon

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/draw"
)

var (
	// ErrInvalidSize is returned when an icon size is not positive.
	ErrInvalidSize = errors.New("invalid icon size")

	// ErrUnknownBackend is returned by BackendByName for unknown names.
	ErrUnknownBackend = errors.New("unknown backend")
)

// Style holds the colours of an icon.
type Style struct {
	// Top and Bottom are the gradient colours of the first row and of the
	// row just below the image.
	Top, Bottom color.RGBA

	Foreground color.RGBA
}

// DefaultStyle is an indigo gradient with a white microphone.
var DefaultStyle = Style{
	Top:        color.RGBA{R: 99, G: 102, B: 241, A: 255},
	Bottom:     color.RGBA{R: 67, G: 56, B: 202, A: 255},
	Foreground: color.RGBA{R: 255, G: 255, B: 255, A: 255},
}

// RowColor returns the background colour of row y in an icon of the given
// size.  Channels are interpolated linearly and rounded towards zero.
func (s Style) RowColor(y, size int) color.RGBA {
	ratio := float64(y) / float64(size)
	mix := func(a, b uint8) uint8 {
		return uint8(int(float64(a) + (float64(b)-float64(a))*ratio))
	}
	return color.RGBA{
		R: mix(s.Top.R, s.Bottom.R),
		G: mix(s.Top.G, s.Bottom.G),
		B: mix(s.Top.B, s.Bottom.B),
		A: 255,
	}
}

// Options control how an icon is rendered.
type Options struct {
	Style Style

	// Antialias enables smooth edges.  By default, a pixel is painted if
	// at least half of its area is covered, and left unchanged otherwise.
	Antialias bool

	// Backend draws the icon.  If this is nil, Raster is used.
	Backend Backend
}

// DefaultOptions returns the options used by Render.
func DefaultOptions() Options {
	return Options{
		Style:   DefaultStyle,
		Backend: Raster,
	}
}

// A Backend draws icons.
type Backend interface {
	// Name returns the name used to select the backend on the command line.
	Name() string

	// Render draws an icon of size×size pixels.
	Render(size int, opt Options) (*image.RGBA, error)
}

// Backends lists the available backends.
var Backends = []Backend{Raster, GG}

// BackendByName returns the backend with the given name.  Names are not
// case sensitive.
func BackendByName(name string) (Backend, error) {
	for _, b := range Backends {
		if strings.EqualFold(b.Name(), name) {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownBackend, name)
}

// Render draws an icon of size×size pixels, using the default options.
// For size < 1, an empty image is returned.
func Render(size int) *image.RGBA {
	img, err := RenderWith(size, DefaultOptions())
	if err != nil {
		return image.NewRGBA(image.Rectangle{})
	}
	return img
}

// RenderWith draws an icon of size×size pixels.
func RenderWith(size int, opt Options) (*image.RGBA, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	b := opt.Backend
	if b == nil {
		b = Raster
	}
	return b.Render(size, opt)
}

// paintGradient fills every row of img with its background colour.
func paintGradient(img *image.RGBA, s Style) {
	bounds := img.Bounds()
	size := bounds.Dy()
	for y := range size {
		row := image.Rect(bounds.Min.X, bounds.Min.Y+y, bounds.Max.X, bounds.Min.Y+y+1)
		draw.Draw(img, row, image.NewUniform(s.RowColor(y, size)), image.Point{}, draw.Src)
	}
}

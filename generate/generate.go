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

// Package generate writes a set of icons as PNG files.
package generate

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/casticon"
)

// DefaultSizes are the icon sizes written by default, in pixels.
var DefaultSizes = []int{16, 32, 48, 128}

// Generator writes one PNG file per icon size.
type Generator struct {
	// Dir is the output directory.  It is created if necessary.
	Dir string

	// Sizes lists the icon sizes, in the order the files are written.
	// If this is empty, DefaultSizes is used.
	Sizes []int

	// Options are passed to the renderer.
	Options casticon.Options

	// Resample renders a single icon at the largest size and scales it
	// down for the smaller sizes, instead of rendering every size
	// separately.
	Resample bool

	// Out receives one "Created: <path>" line per file.
	Out io.Writer

	// Logger receives diagnostic messages.
	Logger *slog.Logger
}

// New returns a Generator which writes the default sizes into dir, using
// the default render options.  Progress is reported on standard output.
func New(dir string) *Generator {
	return &Generator{
		Dir:     dir,
		Sizes:   slices.Clone(DefaultSizes),
		Options: casticon.DefaultOptions(),
		Out:     os.Stdout,
		Logger:  slog.New(slog.DiscardHandler),
	}
}

// FileName returns the name of the file for the given icon size.
func FileName(size int) string {
	return fmt.Sprintf("icon-%d.png", size)
}

// Run renders and writes all icons.  The absolute paths of the written
// files are returned.  Run stops at the first error; files written before
// the error are kept and their paths are returned together with the error.
func (g *Generator) Run() ([]string, error) {
	sizes := g.Sizes
	if len(sizes) == 0 {
		sizes = DefaultSizes
	}
	for _, size := range sizes {
		if size < 1 {
			return nil, fmt.Errorf("%w: %d", casticon.ErrInvalidSize, size)
		}
	}
	out := g.Out
	if out == nil {
		out = io.Discard
	}
	logger := g.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var master *image.RGBA
	if g.Resample {
		size := slices.Max(sizes)
		img, err := casticon.RenderWith(size, g.Options)
		if err != nil {
			return nil, err
		}
		logger.Debug("master icon rendered", "size", size)
		master = img
	}

	var paths []string
	for _, size := range sizes {
		if err := os.MkdirAll(g.Dir, 0o755); err != nil {
			return paths, fmt.Errorf("create output directory: %w", err)
		}

		var img *image.RGBA
		switch {
		case master != nil && master.Bounds().Dx() == size:
			img = master
		case master != nil:
			img = casticon.Downscale(master, size)
		default:
			var err error
			img, err = casticon.RenderWith(size, g.Options)
			if err != nil {
				return paths, err
			}
		}

		path, err := filepath.Abs(filepath.Join(g.Dir, FileName(size)))
		if err != nil {
			return paths, err
		}
		if err := WriteIcon(path, img); err != nil {
			return paths, err
		}
		logger.Debug("icon written", "size", size, "path", path)
		paths = append(paths, path)

		if _, err := fmt.Fprintf(out, "Created: %s\n", path); err != nil {
			return paths, err
		}
	}
	return paths, nil
}

// WriteIcon encodes img as a PNG file with an alpha channel.  The data is
// written to a temporary file first, which then replaces the file at path.
// If an error occurs, an existing file at path is left unchanged.
func WriteIcon(path string, img image.Image) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), ".icon-*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	// Small icons have no rounded corners and are fully opaque.  Without
	// the wrapper, the encoder would drop the alpha channel.
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		img = keepAlpha{img}
	}

	w := bufio.NewWriter(f)
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	if err := enc.Encode(w, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Chmod(0o644); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return os.Rename(tmp, path)
}

// keepAlpha hides the opacity of an image from the PNG encoder.
type keepAlpha struct {
	image.Image
}

func (keepAlpha) Opaque() bool {
	return false
}

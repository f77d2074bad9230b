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

// Command genicons writes the placeholder icons icon-16.png, icon-32.png,
// icon-48.png and icon-128.png.
//
// By default, the files are written to assets/icons below the module
// root.  Run from the module root with
//
//	go run ./cmd/genicons
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/gogpu/gg"

	"seehuhn.de/go/casticon"
	"seehuhn.de/go/casticon/generate"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("genicons", flag.ContinueOnError)
	flags.SetOutput(stderr)
	dir := flags.String("dir", defaultDir(), "output directory")
	sizes := flags.String("sizes", joinSizes(generate.DefaultSizes), "comma-separated list of icon sizes")
	backend := flags.String("backend", casticon.Raster.Name(), "renderer to use (raster or gg)")
	antialias := flags.Bool("aa", false, "draw anti-aliased edges")
	resample := flags.Bool("resample", false, "render the largest size once and scale it down")
	verbose := flags.Bool("v", false, "log debug messages")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q", flags.Arg(0))
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	gg.SetLogger(logger)

	sizeList, err := parseSizes(*sizes)
	if err != nil {
		return err
	}
	b, err := casticon.BackendByName(*backend)
	if err != nil {
		return err
	}

	g := generate.New(*dir)
	g.Sizes = sizeList
	g.Options.Backend = b
	g.Options.Antialias = *antialias
	g.Resample = *resample
	g.Out = stdout
	g.Logger = logger

	logger.Debug("generating icons", "dir", g.Dir, "sizes", sizeList, "backend", b.Name())
	_, err = g.Run()
	return err
}

// defaultDir returns assets/icons below the module root.  If the module
// root cannot be located, the directory is relative to the current
// working directory.
func defaultDir() string {
	rel := filepath.Join("assets", "icons")
	_, file, _, ok := runtime.Caller(0)
	if !ok || !filepath.IsAbs(file) {
		return rel
	}
	root, ok := moduleRoot(filepath.Dir(file))
	if !ok {
		return rel
	}
	return filepath.Join(root, rel)
}

// moduleRoot walks up from dir to the first directory containing a go.mod
// file.
func moduleRoot(dir string) (string, bool) {
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// parseSizes parses a comma-separated list of positive integers.
func parseSizes(s string) ([]int, error) {
	var res []int
	for field := range strings.SplitSeq(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		size, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q", field)
		}
		if size < 1 {
			return nil, fmt.Errorf("%w: %d", casticon.ErrInvalidSize, size)
		}
		res = append(res, size)
	}
	if len(res) == 0 {
		return nil, errors.New("no icon sizes given")
	}
	return res, nil
}

func joinSizes(sizes []int) string {
	parts := make([]string, len(sizes))
	for i, size := range sizes {
		parts[i] = strconv.Itoa(size)
	}
	return strings.Join(parts, ",")
}

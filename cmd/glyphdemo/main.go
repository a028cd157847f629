// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command glyphdemo renders a sample dungeon through any registered layout.
//
// Surface layouts are written to PNG files; the term layout draws into the
// terminal until a key is pressed or the duration elapses.
//
//	glyphdemo -layouts hex,rect,tile -output demo.png
//	glyphdemo -config grid.toml -fit 1024x768
//	glyphdemo -layouts term -duration 5s
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/glyphgrid"
	"github.com/gogpu/glyphgrid/config"
	_ "github.com/gogpu/glyphgrid/hex"
	_ "github.com/gogpu/glyphgrid/rect"
	"github.com/gogpu/glyphgrid/surface"
	"github.com/gogpu/glyphgrid/term"
	_ "github.com/gogpu/glyphgrid/tile"
)

type flags struct {
	config    string
	layouts   string
	width     int
	height    int
	fontSize  int
	transpose bool
	square    bool
	fit       string
	output    string
	dump      string
	duration  time.Duration
	verbose   bool
}

func main() {
	var f flags
	flag.StringVar(&f.config, "config", "", "option file (.toml, .yaml)")
	flag.StringVar(&f.layouts, "layouts", "hex,rect,tile", "comma-separated layouts to render in turn")
	flag.IntVar(&f.width, "width", 0, "grid width in cells")
	flag.IntVar(&f.height, "height", 0, "grid height in cells")
	flag.IntVar(&f.fontSize, "font-size", 0, "font size in pixels")
	flag.BoolVar(&f.transpose, "transpose", false, "flat-top hexes")
	flag.BoolVar(&f.square, "square", false, "square rect cells")
	flag.StringVar(&f.fit, "fit", "", "fit the font to a WxH pixel box")
	flag.StringVar(&f.output, "output", "demo.png", "output file; the layout is appended when rendering several")
	flag.StringVar(&f.dump, "dump", "", "print the effective options in this format (toml, yaml) and exit")
	flag.DurationVar(&f.duration, "duration", 10*time.Second, "how long the term layout stays on screen")
	flag.BoolVar(&f.verbose, "v", false, "debug logging")
	flag.Parse()

	if f.verbose {
		glyphgrid.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	opts, err := options(f)
	if err != nil {
		log.Fatal(err)
	}

	if f.dump != "" {
		for _, o := range opts {
			data, err := config.Encode(o, config.Format(f.dump))
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("%s\n", data)
		}
		return
	}

	var b glyphgrid.Backend
	for _, o := range opts {
		if b, err = render(b, o, f, len(opts) > 1); err != nil {
			log.Fatalf("%s: %v", o.Base().Layout, err)
		}
	}
}

// options returns one option struct per requested layout, from the config
// file or the defaults, with command-line overrides applied.
func options(f flags) ([]glyphgrid.LayoutOptions, error) {
	if f.config != "" {
		o, err := config.Load(f.config)
		if err != nil {
			return nil, err
		}
		return []glyphgrid.LayoutOptions{override(o, f)}, nil
	}

	var out []glyphgrid.LayoutOptions
	for _, name := range strings.Split(f.layouts, ",") {
		l := glyphgrid.Layout(strings.TrimSpace(name))
		o, err := glyphgrid.DefaultsFor(l)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, l)
		}
		if t, ok := o.(glyphgrid.TileOptions); ok {
			t.TileWidth, t.TileHeight = 16, 16
			t.TileSet, t.TileMap = spriteSheet(t.TileWidth, t.TileHeight)
			t.TileColorize = true
			o = t
		}
		out = append(out, override(o, f))
	}
	return out, nil
}

func override(o glyphgrid.LayoutOptions, f flags) glyphgrid.LayoutOptions {
	base := func(b *glyphgrid.Options) {
		if f.width > 0 {
			b.Width = f.width
		}
		if f.height > 0 {
			b.Height = f.height
		}
	}
	text := func(t *glyphgrid.TextOptions) {
		if f.fontSize > 0 {
			t.FontSize = f.fontSize
		}
	}

	switch v := o.(type) {
	case glyphgrid.HexOptions:
		base(&v.Options)
		text(&v.TextOptions)
		v.Transpose = v.Transpose || f.transpose
		return v
	case glyphgrid.RectOptions:
		base(&v.Options)
		text(&v.TextOptions)
		v.ForceSquareRatio = v.ForceSquareRatio || f.square
		return v
	case glyphgrid.TileOptions:
		base(&v.Options)
		return v
	case glyphgrid.TermOptions:
		base(&v.Options)
		return v
	}
	return o
}

// render negotiates a backend for o, reusing prev and its surface where
// possible, draws the dungeon and writes the result.
func render(prev glyphgrid.Backend, o glyphgrid.LayoutOptions, f flags, many bool) (glyphgrid.Backend, error) {
	b, _, err := glyphgrid.Negotiate(prev, o)
	if err != nil {
		return prev, err
	}

	if f.fit != "" {
		if b, err = fit(b, f.fit); err != nil {
			return b, err
		}
	}

	base := b.Options().Base()
	buf := glyphgrid.NewBuffer(base.Width, base.Height)
	fillDungeon(buf, base.Layout == glyphgrid.LayoutHex)

	b.Clear()
	var drawErr error
	buf.Each(func(d *glyphgrid.DisplayData) {
		if drawErr == nil {
			drawErr = b.Draw(d, true)
		}
	})
	if drawErr != nil {
		return b, drawErr
	}

	if tb, ok := b.(*term.Backend); ok {
		return b, runTerm(tb, f.duration)
	}
	return b, save(b, f.output, many)
}

// fit sets the largest font that fits the WxH box.
func fit(b glyphgrid.Backend, box string) (glyphgrid.Backend, error) {
	var w, h float64
	if _, err := fmt.Sscanf(box, "%gx%g", &w, &h); err != nil {
		return b, fmt.Errorf("bad -fit %q: %w", box, err)
	}
	fs, err := b.ComputeFontSize(w, h)
	if err != nil {
		return b, err
	}

	o := b.Options()
	switch v := o.(type) {
	case glyphgrid.HexOptions:
		v.FontSize = fs
		o = v
	case glyphgrid.RectOptions:
		v.FontSize = fs
		o = v
	}
	b, _, err = glyphgrid.Negotiate(b, o)
	log.Printf("fitted font size %d for %s", fs, box)
	return b, err
}

func save(b glyphgrid.Backend, output string, many bool) error {
	if many {
		ext := filepath.Ext(output)
		output = strings.TrimSuffix(output, ext) + "-" + string(b.Layout()) + ext
	}

	s := b.Container()
	if is, ok := s.(*surface.ImageSurface); ok {
		if err := is.SavePNG(output); err != nil {
			return err
		}
	} else if err := savePNG(s.Image(), output); err != nil {
		return err
	}
	log.Printf("%s saved to %s (%dx%d)", b.Layout(), output, s.Width(), s.Height())
	return nil
}

func savePNG(img image.Image, output string) error {
	dst := surface.NewImageSurface(img.Bounds().Dx(), img.Bounds().Dy())
	dst.DrawImage(img, img.Bounds(), image.Point{})
	return dst.SavePNG(output)
}

// runTerm shows the terminal frames until a key press or d elapses.
func runTerm(b *term.Backend, d time.Duration) error {
	defer b.Close()

	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()

	screen := b.Screen()
	go func() {
		for {
			switch screen.PollEvent().(type) {
			case nil, *tcell.EventKey:
				cancel()
				return
			}
		}
	}()

	if err := b.Scheduler().Run(ctx, time.Second/60); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

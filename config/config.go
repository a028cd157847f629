// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png" // tile sets
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/glyphgrid"
)

// Format is an option file encoding.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// ErrUnknownFormat is returned for a file extension or Format that is
// neither TOML nor YAML.
var ErrUnknownFormat = errors.New("config: unknown file format")

// FormatFor picks the format from the extension of path.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// File is the flat key set of an option file.
type File struct {
	Layout string `toml:"layout" yaml:"layout"`
	Width  int    `toml:"width,omitempty" yaml:"width,omitempty"`
	Height int    `toml:"height,omitempty" yaml:"height,omitempty"`
	Fg     string `toml:"fg,omitempty" yaml:"fg,omitempty"`
	Bg     string `toml:"bg,omitempty" yaml:"bg,omitempty"`

	FontSize   int     `toml:"fontSize,omitempty" yaml:"fontSize,omitempty"`
	FontFamily string  `toml:"fontFamily,omitempty" yaml:"fontFamily,omitempty"`
	FontStyle  string  `toml:"fontStyle,omitempty" yaml:"fontStyle,omitempty"`
	Spacing    float64 `toml:"spacing,omitempty" yaml:"spacing,omitempty"`
	Border     float64 `toml:"border,omitempty" yaml:"border,omitempty"`

	Transpose        bool `toml:"transpose,omitempty" yaml:"transpose,omitempty"`
	ForceSquareRatio bool `toml:"forceSquareRatio,omitempty" yaml:"forceSquareRatio,omitempty"`

	TileWidth    int              `toml:"tileWidth,omitempty" yaml:"tileWidth,omitempty"`
	TileHeight   int              `toml:"tileHeight,omitempty" yaml:"tileHeight,omitempty"`
	TileColorize bool             `toml:"tileColorize,omitempty" yaml:"tileColorize,omitempty"`
	TileMap      map[string][]int `toml:"tileMap,omitempty" yaml:"tileMap,omitempty"`
	TileSet      string           `toml:"tileSet,omitempty" yaml:"tileSet,omitempty"`
}

// Parse decodes data in format f into a File. Unknown keys are rejected.
func Parse(data []byte, f Format) (*File, error) {
	var file File
	switch f {
	case TOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&file); err != nil {
			return nil, fmt.Errorf("config: toml: %w", err)
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("config: yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	return &file, nil
}

// Decode parses data and converts it to the option struct of its layout.
// Absent keys stay zero; the tile set is not loaded.
func Decode(data []byte, f Format) (glyphgrid.LayoutOptions, error) {
	file, err := Parse(data, f)
	if err != nil {
		return nil, err
	}
	return file.Options(nil)
}

// Load reads an option file, loads its tile set, and returns the options
// with defaults applied and validated.
func Load(path string) (glyphgrid.LayoutOptions, error) {
	f, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	file, err := Parse(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var set image.Image
	if file.TileSet != "" {
		p := file.TileSet
		if !filepath.IsAbs(p) {
			p = filepath.Join(filepath.Dir(path), p)
		}
		if set, err = loadImage(p); err != nil {
			return nil, err
		}
	}

	o, err := file.Options(set)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	o = o.Defaulted()
	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	glyphgrid.Logger().Debug("config: loaded", "path", path, "layout", o.Base().Layout)
	return o, nil
}

func loadImage(path string) (image.Image, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("config: tile set %s: %w", path, err)
	}
	return img, nil
}

// Options converts f to the option struct of its layout, with set as the
// tile set of a tile layout.
func (f *File) Options(set image.Image) (glyphgrid.LayoutOptions, error) {
	base := glyphgrid.Options{
		Width:  f.Width,
		Height: f.Height,
		Layout: glyphgrid.Layout(f.Layout),
		Fg:     f.Fg,
		Bg:     f.Bg,
	}
	text := glyphgrid.TextOptions{
		FontSize:   f.FontSize,
		FontFamily: f.FontFamily,
		FontStyle:  f.FontStyle,
		Spacing:    f.Spacing,
		Border:     f.Border,
	}

	switch base.Layout {
	case glyphgrid.LayoutHex:
		return glyphgrid.HexOptions{Options: base, TextOptions: text, Transpose: f.Transpose}, nil
	case glyphgrid.LayoutRect:
		return glyphgrid.RectOptions{Options: base, TextOptions: text, ForceSquareRatio: f.ForceSquareRatio}, nil
	case glyphgrid.LayoutTile:
		tm, err := tileMap(f.TileMap)
		if err != nil {
			return nil, err
		}
		return glyphgrid.TileOptions{
			Options:      base,
			TileWidth:    f.TileWidth,
			TileHeight:   f.TileHeight,
			TileMap:      tm,
			TileSet:      set,
			TileColorize: f.TileColorize,
		}, nil
	case glyphgrid.LayoutTerm:
		return glyphgrid.TermOptions{Options: base}, nil
	case "":
		return nil, &glyphgrid.ConfigError{Field: "layout", Value: f.Layout}
	}
	return nil, fmt.Errorf("%w: %q", glyphgrid.ErrUnknownLayout, f.Layout)
}

func tileMap(m map[string][]int) (map[string]image.Point, error) {
	if m == nil {
		return nil, nil
	}
	out := make(map[string]image.Point, len(m))
	for glyph, xy := range m {
		if len(xy) != 2 {
			return nil, &glyphgrid.ConfigError{Field: "tileMap." + glyph, Value: xy}
		}
		out[glyph] = image.Pt(xy[0], xy[1])
	}
	return out, nil
}

// FileFor is the inverse of File.Options. The tile set cannot be written
// and is left empty.
func FileFor(o glyphgrid.LayoutOptions) *File {
	b := o.Base()
	f := &File{
		Layout: string(b.Layout),
		Width:  b.Width,
		Height: b.Height,
		Fg:     b.Fg,
		Bg:     b.Bg,
	}
	setText := func(t glyphgrid.TextOptions) {
		f.FontSize = t.FontSize
		f.FontFamily = t.FontFamily
		f.FontStyle = t.FontStyle
		f.Spacing = t.Spacing
		f.Border = t.Border
	}

	switch v := o.(type) {
	case glyphgrid.HexOptions:
		setText(v.TextOptions)
		f.Transpose = v.Transpose
	case glyphgrid.RectOptions:
		setText(v.TextOptions)
		f.ForceSquareRatio = v.ForceSquareRatio
	case glyphgrid.TileOptions:
		f.TileWidth = v.TileWidth
		f.TileHeight = v.TileHeight
		f.TileColorize = v.TileColorize
		if len(v.TileMap) > 0 {
			f.TileMap = make(map[string][]int, len(v.TileMap))
			for glyph, p := range v.TileMap {
				f.TileMap[glyph] = []int{p.X, p.Y}
			}
		}
	}
	return f
}

// Encode writes o in format f.
func Encode(o glyphgrid.LayoutOptions, f Format) ([]byte, error) {
	file := FileFor(o)
	switch f {
	case TOML:
		return toml.Marshal(file)
	case YAML:
		return yaml.Marshal(file)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyphgrid

import (
	"image"
	"maps"
)

// Layout identifies a backend variant.
type Layout string

// Built-in layouts.
const (
	LayoutHex  Layout = "hex"
	LayoutRect Layout = "rect"
	LayoutTile Layout = "tile"
	LayoutTerm Layout = "term"
)

// Options is the option set every backend accepts.
//
// A zero value in any field means "absent": WithDefaults replaces it with the
// layout's default.
type Options struct {
	// Width and Height are the grid dimensions in cells.
	Width  int
	Height int

	// Layout selects the backend variant.
	Layout Layout

	// Fg and Bg are the default foreground and background colors.
	// Any string accepted by ParseColor is valid.
	Fg string
	Bg string
}

// Base returns o. It is promoted into every variant struct that embeds Options.
func (o Options) Base() Options { return o }

// Validate reports option values outside the geometrically valid domain.
func (o Options) Validate() error {
	switch {
	case o.Width <= 0:
		return &ConfigError{Field: "width", Value: o.Width}
	case o.Height <= 0:
		return &ConfigError{Field: "height", Value: o.Height}
	case o.Layout == "":
		return &ConfigError{Field: "layout", Value: o.Layout}
	}
	return nil
}

func (o Options) merge(d Options) Options {
	if o.Width == 0 {
		o.Width = d.Width
	}
	if o.Height == 0 {
		o.Height = d.Height
	}
	if o.Layout == "" {
		o.Layout = d.Layout
	}
	if o.Fg == "" {
		o.Fg = d.Fg
	}
	if o.Bg == "" {
		o.Bg = d.Bg
	}
	return o
}

// TextOptions groups the fields shared by glyph-based variants.
type TextOptions struct {
	FontSize   int
	FontFamily string

	// FontStyle is prepended to the font string, e.g. "bold" or "italic".
	FontStyle string

	// Spacing scales the cell pitch relative to the glyph size.
	Spacing float64

	// Border insets the cell background fill, in pixels.
	Border float64
}

// Validate reports text option values outside the valid domain.
func (t TextOptions) Validate() error {
	switch {
	case t.FontSize <= 0:
		return &ConfigError{Field: "fontSize", Value: t.FontSize}
	case t.FontFamily == "":
		return &ConfigError{Field: "fontFamily", Value: t.FontFamily}
	case t.Spacing <= 0:
		return &ConfigError{Field: "spacing", Value: t.Spacing}
	case t.Border < 0:
		return &ConfigError{Field: "border", Value: t.Border}
	}
	return nil
}

func (t TextOptions) merge(d TextOptions) TextOptions {
	if t.FontSize == 0 {
		t.FontSize = d.FontSize
	}
	if t.FontFamily == "" {
		t.FontFamily = d.FontFamily
	}
	if t.FontStyle == "" {
		t.FontStyle = d.FontStyle
	}
	if t.Spacing == 0 {
		t.Spacing = d.Spacing
	}
	if t.Border == 0 {
		t.Border = d.Border
	}
	return t
}

// LayoutOptions is implemented by every variant's option struct.
type LayoutOptions interface {
	// Base returns the cross-variant fields.
	Base() Options

	// Defaulted returns a copy with every absent field resolved.
	Defaulted() LayoutOptions

	// Validate reports values outside the valid domain.
	Validate() error
}

// HexOptions configures the hexagonal layout.
type HexOptions struct {
	Options
	TextOptions

	// Transpose swaps the roles of the two axes (flat-top hexes).
	Transpose bool
}

// WithDefaults returns o with absent fields taken from HexDefaults.
func (o HexOptions) WithDefaults() HexOptions {
	d := HexDefaults()
	o.Options = o.Options.merge(d.Options)
	o.TextOptions = o.TextOptions.merge(d.TextOptions)
	return o
}

// Defaulted returns o.WithDefaults() as a LayoutOptions.
func (o HexOptions) Defaulted() LayoutOptions { return o.WithDefaults() }

// Validate checks the base and text fields.
func (o HexOptions) Validate() error {
	if err := o.Options.Validate(); err != nil {
		return err
	}
	return o.TextOptions.Validate()
}

// RectOptions configures the rectangular text layout.
type RectOptions struct {
	Options
	TextOptions

	// ForceSquareRatio makes cells square using the larger of the two pitches.
	ForceSquareRatio bool
}

// WithDefaults returns o with absent fields taken from RectDefaults.
func (o RectOptions) WithDefaults() RectOptions {
	d := RectDefaults()
	o.Options = o.Options.merge(d.Options)
	o.TextOptions = o.TextOptions.merge(d.TextOptions)
	return o
}

// Defaulted returns o.WithDefaults() as a LayoutOptions.
func (o RectOptions) Defaulted() LayoutOptions { return o.WithDefaults() }

// Validate checks the base and text fields.
func (o RectOptions) Validate() error {
	if err := o.Options.Validate(); err != nil {
		return err
	}
	return o.TextOptions.Validate()
}

// TileOptions configures the sprite-tile layout.
type TileOptions struct {
	Options

	// TileWidth and TileHeight are the sprite cell size in pixels.
	TileWidth  int
	TileHeight int

	// TileMap maps a glyph to the top-left corner of its sprite in TileSet.
	TileMap map[string]image.Point

	// TileSet is the sprite sheet. It may be nil until assets are loaded.
	TileSet image.Image

	// TileColorize tints each sprite with the cell's foreground and backs it
	// with the cell's background.
	TileColorize bool
}

// WithDefaults returns o with absent fields taken from TileDefaults.
// The tile map is copied so the result does not alias the caller's map.
func (o TileOptions) WithDefaults() TileOptions {
	d := TileDefaults()
	o.Options = o.Options.merge(d.Options)
	if o.TileWidth == 0 {
		o.TileWidth = d.TileWidth
	}
	if o.TileHeight == 0 {
		o.TileHeight = d.TileHeight
	}
	if o.TileMap == nil {
		o.TileMap = d.TileMap
	} else {
		o.TileMap = maps.Clone(o.TileMap)
	}
	return o
}

// Defaulted returns o.WithDefaults() as a LayoutOptions.
func (o TileOptions) Defaulted() LayoutOptions { return o.WithDefaults() }

// Validate checks the base fields and the tile size.
func (o TileOptions) Validate() error {
	if err := o.Options.Validate(); err != nil {
		return err
	}
	if o.TileWidth <= 0 {
		return &ConfigError{Field: "tileWidth", Value: o.TileWidth}
	}
	if o.TileHeight <= 0 {
		return &ConfigError{Field: "tileHeight", Value: o.TileHeight}
	}
	return nil
}

// TermOptions configures the terminal layout. It adds nothing to Options.
type TermOptions struct {
	Options
}

// WithDefaults returns o with absent fields taken from TermDefaults.
func (o TermOptions) WithDefaults() TermOptions {
	o.Options = o.Options.merge(TermDefaults().Options)
	return o
}

// Defaulted returns o.WithDefaults() as a LayoutOptions.
func (o TermOptions) Defaulted() LayoutOptions { return o.WithDefaults() }

// BaseDefaults returns the defaults shared by every layout. Layout is left empty.
func BaseDefaults() Options {
	return Options{
		Width:  80,
		Height: 25,
		Fg:     "#ccc",
		Bg:     "#000",
	}
}

// TextDefaults returns the defaults shared by glyph-based layouts.
func TextDefaults() TextOptions {
	return TextOptions{
		FontSize:   15,
		FontFamily: "monospace",
		Spacing:    1,
	}
}

func layoutDefaults(l Layout) Options {
	o := BaseDefaults()
	o.Layout = l
	return o
}

// HexDefaults returns the defaults of the hex layout.
func HexDefaults() HexOptions {
	return HexOptions{Options: layoutDefaults(LayoutHex), TextOptions: TextDefaults()}
}

// RectDefaults returns the defaults of the rect layout.
func RectDefaults() RectOptions {
	return RectOptions{Options: layoutDefaults(LayoutRect), TextOptions: TextDefaults()}
}

// TileDefaults returns the defaults of the tile layout.
func TileDefaults() TileOptions {
	return TileOptions{
		Options:    layoutDefaults(LayoutTile),
		TileWidth:  32,
		TileHeight: 32,
		TileMap:    map[string]image.Point{},
	}
}

// TermDefaults returns the defaults of the term layout.
func TermDefaults() TermOptions {
	return TermOptions{Options: layoutDefaults(LayoutTerm)}
}

// DefaultsFor returns the defaults record of a built-in layout.
func DefaultsFor(l Layout) (LayoutOptions, error) {
	switch l {
	case LayoutHex:
		return HexDefaults(), nil
	case LayoutRect:
		return RectDefaults(), nil
	case LayoutTile:
		return TileDefaults(), nil
	case LayoutTerm:
		return TermDefaults(), nil
	}
	return nil, ErrUnknownLayout
}

// BaseChanged reports whether a change of the cross-variant fields
// invalidates rendered pixels.
func BaseChanged(prev, next Options) bool {
	return prev.Width != next.Width ||
		prev.Height != next.Height ||
		prev.Layout != next.Layout ||
		prev.Fg != next.Fg ||
		prev.Bg != next.Bg
}

// TextChanged reports whether a change of the font fields invalidates
// rendered pixels.
func TextChanged(prev, next TextOptions) bool {
	return prev != next
}

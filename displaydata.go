// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyphgrid

import (
	"golang.org/x/text/unicode/norm"
)

// DisplayData is the draw instruction of one grid cell.
//
// The raw values passed to Set or SetGlyphs are normalized into three
// parallel sequences. Glyphs holds the glyphs in rendering order (later
// entries are drawn on top); Fgs and Bgs hold the color in force for each
// glyph and always have the same length as Glyphs. A null glyph (the empty
// string) yields empty sequences.
//
// The sequences are rewritten in place, so one DisplayData per cell can be
// redrawn any number of times without allocating once its capacity is
// reached. Backends must not keep a reference past Draw.
type DisplayData struct {
	X, Y int

	Glyphs []string
	Fgs    []string
	Bgs    []string

	ch    string
	chs   []string
	multi bool
	fg    string
	bg    string
}

// Set assigns a single glyph. An empty ch is the null glyph.
func (d *DisplayData) Set(ch, fg, bg string) {
	d.ch, d.chs, d.multi = ch, d.chs[:0], false
	d.fg, d.bg = fg, bg

	d.Glyphs = d.Glyphs[:0]
	if ch != "" {
		d.Glyphs = append(d.Glyphs, norm.NFC.String(ch))
	}
	d.broadcast()
}

// SetGlyphs assigns a stack of glyphs drawn in order. A nil or empty slice
// behaves like the null glyph. chs is not retained.
func (d *DisplayData) SetGlyphs(chs []string, fg, bg string) {
	d.ch, d.multi = "", true
	d.chs = append(d.chs[:0], chs...)
	d.fg, d.bg = fg, bg

	d.Glyphs = d.Glyphs[:0]
	for _, ch := range chs {
		d.Glyphs = append(d.Glyphs, norm.NFC.String(ch))
	}
	d.broadcast()
}

func (d *DisplayData) broadcast() {
	n := len(d.Glyphs)
	d.Fgs = d.Fgs[:0]
	d.Bgs = d.Bgs[:0]
	for i := 0; i < n; i++ {
		d.Fgs = append(d.Fgs, d.fg)
		d.Bgs = append(d.Bgs, d.bg)
	}
}

// Ch returns the raw single glyph, or "" when the cell was set with a list
// or holds the null glyph.
func (d *DisplayData) Ch() string { return d.ch }

// Chs returns the raw glyph list and whether one was supplied.
func (d *DisplayData) Chs() ([]string, bool) {
	if !d.multi {
		return nil, false
	}
	return d.chs, true
}

// Fg returns the raw foreground color.
func (d *DisplayData) Fg() string { return d.fg }

// Bg returns the raw background color. It is the color used when the cell
// footprint is cleared, even when Glyphs is empty.
func (d *DisplayData) Bg() string { return d.bg }

// Empty reports whether there is nothing to draw beyond the background.
func (d *DisplayData) Empty() bool { return len(d.Glyphs) == 0 }

// Buffer is a fixed arena of one DisplayData per cell, owned by whoever
// drives a backend. Pointers returned by At stay valid until Resize.
type Buffer struct {
	cells  []DisplayData
	width  int
	height int
}

// NewBuffer creates a buffer for a width×height grid.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts the grid dimensions. Storage is reallocated only when the
// new grid needs more cells than the current capacity. All cells are reset.
func (b *Buffer) Resize(width, height int) {
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]DisplayData, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width, b.height = width, height
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := &b.cells[y*width+x]
			c.X, c.Y = x, y
			c.Set("", "", "")
		}
	}
}

// Size returns the grid dimensions.
func (b *Buffer) Size() (width, height int) { return b.width, b.height }

// At returns the cell at (x, y), or nil when out of bounds.
func (b *Buffer) At(x, y int) *DisplayData {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return nil
	}
	return &b.cells[y*b.width+x]
}

// Each calls fn for every cell in row-major order.
func (b *Buffer) Each(fn func(d *DisplayData)) {
	for i := range b.cells {
		fn(&b.cells[i])
	}
}

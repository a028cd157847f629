// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"image"

	"github.com/gogpu/gg"

	"github.com/gogpu/glyphgrid"
)

type feature struct {
	glyph  string
	fg, bg string
}

var (
	wall   = feature{"#", "#a08060", "#302820"}
	floor  = feature{".", "#606060", "#101010"}
	water  = feature{"~", "#4080ff", "#102040"}
	player = feature{"@", "yellow", "#101010"}
	goblin = feature{"g", "lime", "#101010"}
	gold   = feature{"$", "gold", "#101010"}
)

// glyphs lists every sprite of the demo tile set in sheet order.
var glyphs = []string{"#", ".", "~", "@", "g", "$"}

// fillDungeon writes a walled room with a pool and a few actors into buf.
// For hex grids only cells with an even coordinate sum are used.
func fillDungeon(buf *glyphgrid.Buffer, hex bool) {
	w, h := buf.Size()
	cx, cy := w/2, h/2

	buf.Each(func(d *glyphgrid.DisplayData) {
		if hex && (d.X+d.Y)%2 != 0 {
			d.Set("", "", "")
			return
		}

		f := floor
		switch {
		case d.X == 0 || d.Y == 0 || d.X >= w-2 || d.Y == h-1:
			f = wall
		case abs(d.X-w/4)+abs(d.Y-h/3)*2 < max(w/8, 2):
			f = water
		}
		d.Set(f.glyph, f.fg, f.bg)
	})

	put := func(x, y int, f feature) {
		if hex && (x+y)%2 != 0 {
			x++
		}
		if d := buf.At(x, y); d != nil {
			d.Set(f.glyph, f.fg, f.bg)
		}
	}
	put(cx, cy, player)
	put(cx+4, cy-2, goblin)
	put(cx-6, cy+2, goblin)
	put(w-6, h-3, gold)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// spriteSheet draws one white sprite per glyph in a single row, for
// colorizing, and returns the sheet with its tile map.
func spriteSheet(tw, th int) (image.Image, map[string]image.Point) {
	dc := gg.NewContext(tw*len(glyphs), th)
	dc.SetColor(gg.White.Color())

	w, h := float64(tw), float64(th)
	tm := make(map[string]image.Point, len(glyphs))
	for i, g := range glyphs {
		x := float64(i * tw)
		tm[g] = image.Pt(i*tw, 0)

		switch g {
		case "#":
			dc.DrawRectangle(x+1, 1, w-2, h/2-2)
			dc.DrawRectangle(x+1, h/2, w-2, h/2-1)
		case ".":
			dc.DrawCircle(x+w/2, h/2, w/10)
		case "~":
			dc.DrawRectangle(x+1, h/3, w-2, 2)
			dc.DrawRectangle(x+1, 2*h/3, w-2, 2)
		case "@":
			dc.DrawCircle(x+w/2, h/3, w/5)
			dc.DrawRectangle(x+w/4, h/2, w/2, h/2-1)
		case "g":
			dc.DrawCircle(x+w/2, h/2, w/3)
		case "$":
			dc.DrawCircle(x+w/2, h/2, w/4)
		}
		_ = dc.Fill()
	}
	return dc.Image(), tm
}

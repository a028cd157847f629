// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"testing"

	"github.com/gogpu/glyphgrid"
)

func TestOptionsOverride(t *testing.T) {
	opts, err := options(flags{layouts: "hex, tile", width: 30, fontSize: 20, transpose: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(opts) != 2 {
		t.Fatalf("options() returned %d structs, want 2", len(opts))
	}

	h := opts[0].(glyphgrid.HexOptions)
	if h.Width != 30 || h.Height != 25 || h.FontSize != 20 || !h.Transpose {
		t.Errorf("hex options = %+v", h)
	}
	tl := opts[1].(glyphgrid.TileOptions)
	if tl.Width != 30 || tl.TileSet == nil || len(tl.TileMap) != len(glyphs) {
		t.Errorf("tile options = %+v", tl)
	}
}

func TestOptionsUnknownLayout(t *testing.T) {
	if _, err := options(flags{layouts: "iso"}); err == nil {
		t.Error("options(iso) error = nil")
	}
}

func TestFillDungeonHex(t *testing.T) {
	buf := glyphgrid.NewBuffer(20, 10)
	fillDungeon(buf, true)
	buf.Each(func(d *glyphgrid.DisplayData) {
		if (d.X+d.Y)%2 != 0 && !d.Empty() {
			t.Errorf("cell %d,%d has %q on an unused hex position", d.X, d.Y, d.Glyphs)
		}
	})
	if d := buf.At(11, 5); d == nil || d.Ch() != "@" {
		t.Errorf("player cell = %+v, want @ moved to an even position", d)
	}
}

func TestSpriteSheetCoversGlyphs(t *testing.T) {
	img, tm := spriteSheet(8, 8)
	if img.Bounds().Dx() != 8*len(glyphs) || img.Bounds().Dy() != 8 {
		t.Errorf("sheet bounds = %v", img.Bounds())
	}
	for i, g := range glyphs {
		if p, ok := tm[g]; !ok || p.X != i*8 {
			t.Errorf("tile map[%q] = %v, %v", g, p, ok)
		}
	}
}

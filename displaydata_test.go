// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyphgrid

import (
	"slices"
	"testing"
)

func TestDisplayDataNormalize(t *testing.T) {
	tests := []struct {
		name   string
		set    func(d *DisplayData)
		glyphs []string
		fgs    []string
	}{
		{"scalar", func(d *DisplayData) { d.Set("a", "#fff", "#000") }, []string{"a"}, []string{"#fff"}},
		{"null", func(d *DisplayData) { d.Set("", "#fff", "#000") }, []string{}, []string{}},
		{"list", func(d *DisplayData) { d.SetGlyphs([]string{"a", "b"}, "#fff", "#000") }, []string{"a", "b"}, []string{"#fff", "#fff"}},
		{"nil list", func(d *DisplayData) { d.SetGlyphs(nil, "#fff", "#000") }, []string{}, []string{}},
		{"decomposed", func(d *DisplayData) { d.Set("e\u0301", "#fff", "#000") }, []string{"\u00e9"}, []string{"#fff"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d DisplayData
			tt.set(&d)
			if !slices.Equal(d.Glyphs, tt.glyphs) {
				t.Errorf("Glyphs = %q, want %q", d.Glyphs, tt.glyphs)
			}
			if !slices.Equal(d.Fgs, tt.fgs) {
				t.Errorf("Fgs = %q, want %q", d.Fgs, tt.fgs)
			}
			if len(d.Bgs) != len(d.Glyphs) || len(d.Fgs) != len(d.Glyphs) {
				t.Errorf("sequence lengths = %d/%d/%d, want equal", len(d.Glyphs), len(d.Fgs), len(d.Bgs))
			}
		})
	}
}

func TestDisplayDataRaw(t *testing.T) {
	var d DisplayData
	d.Set("@", "#fff", "#000")
	if d.Ch() != "@" || d.Fg() != "#fff" || d.Bg() != "#000" {
		t.Errorf("raw = %q %q %q", d.Ch(), d.Fg(), d.Bg())
	}
	if _, multi := d.Chs(); multi {
		t.Error("Chs() reports a list after Set")
	}

	in := []string{"x", "y"}
	d.SetGlyphs(in, "#f00", "#00f")
	in[0] = "z"
	chs, multi := d.Chs()
	if !multi || !slices.Equal(chs, []string{"x", "y"}) {
		t.Errorf("Chs() = %q, %v; list must not alias the caller's slice", chs, multi)
	}
	if d.Ch() != "" {
		t.Errorf("Ch() after SetGlyphs = %q, want empty", d.Ch())
	}

	d.Set("", "#fff", "#123")
	if !d.Empty() || d.Bg() != "#123" {
		t.Errorf("null glyph: Empty() = %v, Bg() = %q", d.Empty(), d.Bg())
	}
}

func TestDisplayDataRedrawDoesNotAllocate(t *testing.T) {
	var d DisplayData
	glyphs := []string{"#", "@", "+"}
	d.SetGlyphs(glyphs, "#fff", "#000")

	allocs := testing.AllocsPerRun(100, func() {
		d.Set("@", "#fff", "#000")
		d.SetGlyphs(glyphs, "#ccc", "#111")
		d.Set("", "#fff", "#000")
	})
	if allocs != 0 {
		t.Errorf("redrawing a cell allocated %v times, want 0", allocs)
	}
}

func TestBuffer(t *testing.T) {
	b := NewBuffer(4, 3)
	if w, h := b.Size(); w != 4 || h != 3 {
		t.Fatalf("Size() = %d, %d", w, h)
	}

	c := b.At(2, 1)
	if c == nil || c.X != 2 || c.Y != 1 {
		t.Fatalf("At(2, 1) = %+v", c)
	}
	c.Set("@", "#fff", "#000")
	if b.At(2, 1) != c {
		t.Error("At() should return a stable pointer")
	}

	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, 3}} {
		if b.At(p[0], p[1]) != nil {
			t.Errorf("At(%d, %d) should be nil", p[0], p[1])
		}
	}

	n := 0
	b.Each(func(*DisplayData) { n++ })
	if n != 12 {
		t.Errorf("Each visited %d cells, want 12", n)
	}

	b.Resize(2, 2)
	if got := b.At(1, 1); got.X != 1 || got.Y != 1 || !got.Empty() {
		t.Errorf("after Resize At(1, 1) = %+v, want a reset cell", got)
	}
}

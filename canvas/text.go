// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"math"

	"github.com/gogpu/glyphgrid"
	"github.com/gogpu/glyphgrid/surface"
)

// RefGlyph is the glyph whose advance sets the cell width.
const RefGlyph = "W"

// ratioSize is the font size the char ratio is measured at.
const ratioSize = 100

// Text is Base plus font handling for glyph layouts.
type Text struct {
	Base
	font      surface.Font
	charWidth float64
}

// NewText binds to s like NewBase.
func NewText(s surface.Surface) Text {
	return Text{Base: NewBase(s)}
}

// FontFor builds the surface font of o.
func FontFor(o glyphgrid.TextOptions) surface.Font {
	return surface.Font{Style: o.FontStyle, Size: float64(o.FontSize), Family: o.FontFamily}
}

// ApplyFont selects the font of o on the surface and measures the
// reference glyph, rounded up to whole pixels.
func (t *Text) ApplyFont(o glyphgrid.TextOptions) error {
	f := FontFor(o)
	if err := t.surf.SetFont(f); err != nil {
		return err
	}
	t.font = f
	t.charWidth = math.Ceil(t.surf.MeasureText(RefGlyph))
	glyphgrid.Logger().Debug("canvas: font applied", "font", f.String(), "charWidth", t.charWidth)
	return nil
}

// RestoreFont reselects f after a failed reconfiguration. A zero f, from a
// Text that never applied a font, is ignored.
func (t *Text) RestoreFont(f surface.Font) {
	if f.Size <= 0 {
		return
	}
	if err := t.surf.SetFont(f); err != nil {
		glyphgrid.Logger().Warn("canvas: font restore failed", "font", f.String(), "err", err)
		return
	}
	t.font = f
	t.charWidth = math.Ceil(t.surf.MeasureText(RefGlyph))
}

// Font returns the font in force.
func (t *Text) Font() surface.Font { return t.font }

// CharWidth returns the rounded-up advance of RefGlyph in the current font.
func (t *Text) CharWidth() float64 { return t.charWidth }

// CharRatio returns the advance of RefGlyph per pixel of font size,
// measured at 100px and rounded up to a whole pixel. The current font is
// restored afterwards.
func (t *Text) CharRatio() (float64, error) {
	if err := t.surf.SetFont(t.font.WithSize(ratioSize)); err != nil {
		return 0, err
	}
	w := math.Ceil(t.surf.MeasureText(RefGlyph))
	if err := t.surf.SetFont(t.font); err != nil {
		return 0, err
	}
	return w / ratioSize, nil
}

// FillGlyphs draws every glyph of d centered on (x, y), in order, each in
// its foreground.
func (t *Text) FillGlyphs(d *glyphgrid.DisplayData, x, y float64) error {
	for i, g := range d.Glyphs {
		fg, err := t.Color(d.Fgs[i], t.fg)
		if err != nil {
			return err
		}
		t.surf.FillText(g, x, y, fg)
	}
	return nil
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rect

import (
	"math"

	"github.com/gogpu/glyphgrid"
	"github.com/gogpu/glyphgrid/canvas"
	"github.com/gogpu/glyphgrid/surface"
)

func init() {
	glyphgrid.MustRegister(glyphgrid.LayoutRect, func(s surface.Surface) glyphgrid.Backend {
		return New(s)
	})
}

// Backend is the rectangular text layout.
//
// Backend is NOT safe for concurrent use.
type Backend struct {
	canvas.Text

	opts       glyphgrid.RectOptions
	configured bool

	spacingX, spacingY float64
}

// New returns an unconfigured rect backend drawing into s, or into a new
// image surface when s is nil.
func New(s surface.Surface) *Backend {
	return &Backend{Text: canvas.NewText(s)}
}

// Layout returns glyphgrid.LayoutRect.
func (b *Backend) Layout() glyphgrid.Layout { return glyphgrid.LayoutRect }

// CheckOptions reports whether o selects this layout.
func (b *Backend) CheckOptions(o glyphgrid.Options) bool {
	return o.Layout == glyphgrid.LayoutRect
}

// SetOptions applies o, which must be glyphgrid.RectOptions or a pointer to it.
func (b *Backend) SetOptions(lo glyphgrid.LayoutOptions) (bool, error) {
	var o glyphgrid.RectOptions
	switch v := lo.(type) {
	case glyphgrid.RectOptions:
		o = v
	case *glyphgrid.RectOptions:
		o = *v
	default:
		return false, glyphgrid.ErrOptionsMismatch
	}
	o = o.WithDefaults()
	if o.Layout != glyphgrid.LayoutRect {
		return false, glyphgrid.ErrOptionsMismatch
	}

	if b.configured &&
		!glyphgrid.BaseChanged(b.opts.Options, o.Options) &&
		!glyphgrid.TextChanged(b.opts.TextOptions, o.TextOptions) &&
		b.opts.ForceSquareRatio == o.ForceSquareRatio {
		return false, nil
	}

	fg, bg, err := b.ParseColors(o.Options)
	if err != nil {
		return false, err
	}
	prevFont := b.Font()
	if err := b.ApplyFont(o.TextOptions); err != nil {
		return false, err
	}

	sx, sy := Spacing(o, b.CharWidth())
	w, h := o.Width*int(sx), o.Height*int(sy)
	if err := b.Resize(w, h); err != nil {
		b.RestoreFont(prevFont)
		return false, err
	}
	b.SetColors(fg, bg)

	b.spacingX, b.spacingY = sx, sy
	b.opts = o
	b.configured = true
	glyphgrid.Logger().Debug("rect: geometry",
		"spacingX", sx, "spacingY", sy, "width", w, "height", h)
	return true, nil
}

// Spacing returns the whole-pixel cell pitch for o given the measured width
// of the reference glyph.
func Spacing(o glyphgrid.RectOptions, charWidth float64) (x, y float64) {
	x = math.Ceil(o.Spacing * charWidth)
	y = math.Ceil(o.Spacing * float64(o.FontSize))
	if o.ForceSquareRatio {
		x = math.Max(x, y)
		y = x
	}
	return x, y
}

// Options returns a copy of the options in force.
func (b *Backend) Options() glyphgrid.LayoutOptions { return b.opts }

// CellSize returns the cell pitch in pixels.
func (b *Backend) CellSize() (x, y float64) { return b.spacingX, b.spacingY }

// Draw renders one cell. With clearBefore the cell, inset by Border, is
// filled with the cell background first.
func (b *Backend) Draw(d *glyphgrid.DisplayData, clearBefore bool) error {
	x, y := float64(d.X), float64(d.Y)

	if clearBefore {
		bg, err := b.Color(d.Bg(), b.Bg())
		if err != nil {
			return err
		}
		border := b.opts.Border
		err = b.Container().FillRect(x*b.spacingX+border, y*b.spacingY+border,
			b.spacingX-border, b.spacingY-border, bg)
		if err != nil {
			return err
		}
	}

	if d.Empty() {
		return nil
	}
	return b.FillGlyphs(d, (x+0.5)*b.spacingX, math.Ceil((y+0.5)*b.spacingY))
}

// ComputeSize returns how many cells fit the available pixels.
func (b *Backend) ComputeSize(availWidth, availHeight float64) (int, int) {
	if b.spacingX <= 0 || b.spacingY <= 0 {
		return 0, 0
	}
	return int(math.Floor(availWidth / b.spacingX)), int(math.Floor(availHeight / b.spacingY))
}

// ComputeFontSize returns the largest font size at which the current grid
// fits the available pixels. The height of a cell bounds the font unless
// the glyph would then be wider than the cell.
func (b *Backend) ComputeFontSize(availWidth, availHeight float64) (int, error) {
	ratio, err := b.CharRatio()
	if err != nil {
		return 0, err
	}
	return FontSizeFor(availWidth, availHeight, b.opts, ratio), nil
}

// FontSizeFor is the font fit of ComputeFontSize for a known char ratio.
func FontSizeFor(availWidth, availHeight float64, o glyphgrid.RectOptions, ratio float64) int {
	boxWidth := math.Floor(availWidth / float64(o.Width))
	boxHeight := math.Floor(availHeight / float64(o.Height))
	if boxWidth <= 0 || boxHeight <= 0 {
		return 0
	}

	if widthFraction := ratio * boxHeight / boxWidth; widthFraction > 1 {
		boxHeight = math.Floor(boxHeight / widthFraction)
	}
	return int(math.Floor(boxHeight / o.Spacing))
}

// EventToPosition maps surface pixels to a cell, (-1, -1) outside.
func (b *Backend) EventToPosition(x, y float64) (int, int) {
	return b.Base.EventToPosition(x, y, b.normalize)
}

func (b *Backend) normalize(x, y float64) (int, int) {
	return int(math.Floor(x / b.spacingX)), int(math.Floor(y / b.spacingY))
}

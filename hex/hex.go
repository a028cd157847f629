// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package hex

import (
	"math"

	"github.com/gogpu/glyphgrid"
	"github.com/gogpu/glyphgrid/canvas"
	"github.com/gogpu/glyphgrid/surface"
)

func init() {
	glyphgrid.MustRegister(glyphgrid.LayoutHex, func(s surface.Surface) glyphgrid.Backend {
		return New(s)
	})
}

// Backend is the hexagonal layout.
//
// Backend is NOT safe for concurrent use.
type Backend struct {
	canvas.Text

	opts       glyphgrid.HexOptions
	configured bool
	geom       Geometry
	path       *surface.Path
}

// New returns an unconfigured hex backend drawing into s, or into a new
// image surface when s is nil.
func New(s surface.Surface) *Backend {
	return &Backend{
		Text: canvas.NewText(s),
		path: surface.NewPath(),
	}
}

// Layout returns glyphgrid.LayoutHex.
func (b *Backend) Layout() glyphgrid.Layout { return glyphgrid.LayoutHex }

// CheckOptions reports whether o selects this layout.
func (b *Backend) CheckOptions(o glyphgrid.Options) bool {
	return o.Layout == glyphgrid.LayoutHex
}

// SetOptions applies o, which must be glyphgrid.HexOptions or a pointer to it.
func (b *Backend) SetOptions(lo glyphgrid.LayoutOptions) (bool, error) {
	var o glyphgrid.HexOptions
	switch v := lo.(type) {
	case glyphgrid.HexOptions:
		o = v
	case *glyphgrid.HexOptions:
		o = *v
	default:
		return false, glyphgrid.ErrOptionsMismatch
	}
	o = o.WithDefaults()
	if o.Layout != glyphgrid.LayoutHex {
		return false, glyphgrid.ErrOptionsMismatch
	}

	if b.configured &&
		!glyphgrid.BaseChanged(b.opts.Options, o.Options) &&
		!glyphgrid.TextChanged(b.opts.TextOptions, o.TextOptions) &&
		b.opts.Transpose == o.Transpose {
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

	geom := NewGeometry(o.FontSize, o.Spacing, b.CharWidth())
	w, h := geom.SurfaceSize(o.Width, o.Height, o.Transpose)
	if err := b.Resize(w, h); err != nil {
		b.RestoreFont(prevFont)
		return false, err
	}
	b.SetColors(fg, bg)

	b.geom = geom
	b.opts = o
	b.configured = true
	glyphgrid.Logger().Debug("hex: geometry",
		"hexSize", geom.HexSize, "spacingX", geom.SpacingX, "spacingY", geom.SpacingY,
		"width", w, "height", h, "transpose", o.Transpose)
	return true, nil
}

// Options returns a copy of the options in force.
func (b *Backend) Options() glyphgrid.LayoutOptions { return b.opts }

// Geometry returns the current hex metrics.
func (b *Backend) Geometry() Geometry { return b.geom }

// Draw renders one cell. With clearBefore the hexagon is filled with the
// cell background first; a cell without glyphs draws nothing else.
func (b *Backend) Draw(d *glyphgrid.DisplayData, clearBefore bool) error {
	px, py := b.geom.Center(d.X, d.Y, b.opts.Transpose)

	if clearBefore {
		bg, err := b.Color(d.Bg(), b.Bg())
		if err != nil {
			return err
		}
		b.geom.Hexagon(b.path, px, py, b.opts.Border, b.opts.Transpose)
		if err := b.Container().FillPath(b.path, bg); err != nil {
			return err
		}
	}

	if d.Empty() {
		return nil
	}
	return b.FillGlyphs(d, px, math.Ceil(py))
}

// ComputeSize returns how many cells fit the available pixels at the
// current font.
func (b *Backend) ComputeSize(availWidth, availHeight float64) (int, int) {
	return b.geom.ComputeSize(availWidth, availHeight, b.opts.Transpose)
}

// ComputeFontSize returns the largest font size at which the current grid
// fits the available pixels.
//
// Under Transpose the result is approximate: glyphs are not rotated with the
// tiling, so the measured ratio still applies to the horizontal axis.
func (b *Backend) ComputeFontSize(availWidth, availHeight float64) (int, error) {
	ratio, err := b.CharRatio()
	if err != nil {
		return 0, err
	}
	if b.opts.Transpose {
		glyphgrid.Logger().Warn("hex: font size fit is approximate for transposed layouts")
	}

	a := FitHexSize(availWidth, availHeight, b.opts.Width, b.opts.Height, b.opts.Transpose)
	return FontSizeFor(a, b.opts.Spacing, ratio), nil
}

// EventToPosition maps surface pixels to a cell, (-1, -1) outside.
func (b *Backend) EventToPosition(x, y float64) (int, int) {
	return b.Base.EventToPosition(x, y, b.normalize)
}

func (b *Backend) normalize(x, y float64) (int, int) {
	s := b.Container()
	return b.geom.Position(x, y, s.Width(), s.Height(), b.opts.Height, b.opts.Transpose)
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tile

import (
	"image"
	"image/color"
	"maps"
	"math"
	"reflect"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/glyphgrid"
	"github.com/gogpu/glyphgrid/canvas"
	"github.com/gogpu/glyphgrid/internal/blend"
	"github.com/gogpu/glyphgrid/surface"
)

func init() {
	glyphgrid.MustRegister(glyphgrid.LayoutTile, func(s surface.Surface) glyphgrid.Backend {
		return New(s)
	})
}

// Backend is the sprite-tile layout.
//
// Backend is NOT safe for concurrent use.
type Backend struct {
	canvas.Base

	opts       glyphgrid.TileOptions
	configured bool

	// scratch holds one sprite while it is colorized.
	scratch *image.RGBA
}

// New returns an unconfigured tile backend drawing into s, or into a new
// image surface when s is nil.
func New(s surface.Surface) *Backend {
	return &Backend{Base: canvas.NewBase(s)}
}

// Layout returns glyphgrid.LayoutTile.
func (b *Backend) Layout() glyphgrid.Layout { return glyphgrid.LayoutTile }

// CheckOptions reports whether o selects this layout.
func (b *Backend) CheckOptions(o glyphgrid.Options) bool {
	return o.Layout == glyphgrid.LayoutTile
}

// SetOptions applies o, which must be glyphgrid.TileOptions or a pointer to it.
// The tile map is copied; later changes to the caller's map have no effect
// until the next SetOptions.
func (b *Backend) SetOptions(lo glyphgrid.LayoutOptions) (bool, error) {
	var o glyphgrid.TileOptions
	switch v := lo.(type) {
	case glyphgrid.TileOptions:
		o = v
	case *glyphgrid.TileOptions:
		o = *v
	default:
		return false, glyphgrid.ErrOptionsMismatch
	}
	o = o.WithDefaults()
	if o.Layout != glyphgrid.LayoutTile {
		return false, glyphgrid.ErrOptionsMismatch
	}

	if b.configured && !changed(b.opts, o) {
		return false, nil
	}

	fg, bg, err := b.ParseColors(o.Options)
	if err != nil {
		return false, err
	}
	w, h := o.Width*o.TileWidth, o.Height*o.TileHeight
	if err := b.Resize(w, h); err != nil {
		return false, err
	}
	b.SetColors(fg, bg)

	if b.scratch == nil || b.scratch.Rect.Dx() != o.TileWidth || b.scratch.Rect.Dy() != o.TileHeight {
		b.scratch = image.NewRGBA(image.Rect(0, 0, o.TileWidth, o.TileHeight))
	}

	b.opts = o
	b.configured = true
	glyphgrid.Logger().Debug("tile: geometry",
		"tileWidth", o.TileWidth, "tileHeight", o.TileHeight, "width", w, "height", h,
		"sprites", len(o.TileMap), "colorize", o.TileColorize)
	return true, nil
}

func changed(prev, next glyphgrid.TileOptions) bool {
	return glyphgrid.BaseChanged(prev.Options, next.Options) ||
		prev.TileWidth != next.TileWidth ||
		prev.TileHeight != next.TileHeight ||
		prev.TileColorize != next.TileColorize ||
		!sameImage(prev.TileSet, next.TileSet) ||
		!maps.Equal(prev.TileMap, next.TileMap)
}

// sameImage compares tile sets by identity. Values of non-comparable image
// types are always treated as different.
func sameImage(a, b image.Image) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	t := reflect.TypeOf(a)
	if t != reflect.TypeOf(b) || !t.Comparable() {
		return false
	}
	return a == b
}

// Options returns a copy of the options in force, tile map included.
func (b *Backend) Options() glyphgrid.LayoutOptions {
	o := b.opts
	o.TileMap = maps.Clone(o.TileMap)
	return o
}

// Draw renders one cell.
//
// With clearBefore the cell is filled with its background, or made
// transparent when colorizing. Every glyph must be in the tile map; an
// unmapped glyph fails with *glyphgrid.GlyphNotMappedError. Without a tile
// set only the clearing happens.
func (b *Backend) Draw(d *glyphgrid.DisplayData, clearBefore bool) error {
	tw, th := b.opts.TileWidth, b.opts.TileHeight
	at := image.Pt(d.X*tw, d.Y*th)
	surf := b.Container()

	if clearBefore {
		x, y := float64(at.X), float64(at.Y)
		if b.opts.TileColorize {
			surf.ClearRect(x, y, float64(tw), float64(th))
		} else {
			bg, err := b.Color(d.Bg(), b.Bg())
			if err != nil {
				return err
			}
			if err := surf.FillRect(x, y, float64(tw), float64(th), bg); err != nil {
				return err
			}
		}
	}

	for i, g := range d.Glyphs {
		pt, ok := b.opts.TileMap[g]
		if !ok {
			return &glyphgrid.GlyphNotMappedError{Glyph: g}
		}
		if b.opts.TileSet == nil {
			continue
		}
		src := image.Rectangle{Min: pt, Max: pt.Add(image.Pt(tw, th))}

		if !b.opts.TileColorize {
			surf.DrawImage(b.opts.TileSet, src, at)
			continue
		}

		fg, err := b.Color(d.Fgs[i], b.Fg())
		if err != nil {
			return err
		}
		bg, err := b.Color(d.Bgs[i], b.Bg())
		if err != nil {
			return err
		}
		b.colorize(src, fg, bg)
		if inv, ok := surf.(surface.ImageInvalidator); ok {
			inv.InvalidateImage(b.scratch)
		}
		surf.DrawImage(b.scratch, b.scratch.Rect, at)
	}
	return nil
}

// colorize leaves the src sprite in the scratch image tinted with fg and
// backed with bg. Fully transparent colors skip their step.
func (b *Backend) colorize(src image.Rectangle, fg, bg color.NRGBA) {
	r := b.scratch.Rect
	clear(b.scratch.Pix)
	xdraw.Copy(b.scratch, image.Point{}, b.opts.TileSet, src, xdraw.Src, nil)

	if fg.A != 0 {
		blend.Fill(b.scratch, r, fg, blend.SourceAtop)
	}
	if bg.A != 0 {
		blend.Fill(b.scratch, r, bg, blend.DestinationOver)
	}
}

// ComputeSize returns how many whole tiles fit the available pixels.
func (b *Backend) ComputeSize(availWidth, availHeight float64) (int, int) {
	if !b.configured {
		return 0, 0
	}
	return int(math.Floor(availWidth / float64(b.opts.TileWidth))),
		int(math.Floor(availHeight / float64(b.opts.TileHeight)))
}

// ComputeFontSize always fails: tiles have no font.
func (b *Backend) ComputeFontSize(availWidth, availHeight float64) (int, error) {
	return 0, glyphgrid.ErrUnsupportedOperation
}

// EventToPosition maps surface pixels to a cell, (-1, -1) outside.
func (b *Backend) EventToPosition(x, y float64) (int, int) {
	return b.Base.EventToPosition(x, y, b.normalize)
}

func (b *Backend) normalize(x, y float64) (int, int) {
	return int(math.Floor(x / float64(b.opts.TileWidth))),
		int(math.Floor(y / float64(b.opts.TileHeight)))
}

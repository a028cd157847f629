// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package term

import (
	"image/color"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/glyphgrid"
	"github.com/gogpu/glyphgrid/surface"
)

func init() {
	glyphgrid.MustRegister(glyphgrid.LayoutTerm, func(surface.Surface) glyphgrid.Backend {
		return New(nil)
	})
}

// Backend is the terminal layout.
//
// Backend is NOT safe for concurrent use.
type Backend struct {
	screen tcell.Screen
	owned  bool

	opts       glyphgrid.TermOptions
	configured bool

	offX, offY int
	fg, bg     tcell.Color
	colors     glyphgrid.ColorCache

	sched      surface.Scheduler
	showQueued bool
}

// New returns an unconfigured backend drawing to screen, which the caller
// has initialized and still owns. With a nil screen the terminal is opened on
// the first SetOptions and released by Close.
func New(screen tcell.Screen) *Backend {
	return &Backend{screen: screen}
}

// Screen returns the tcell screen, nil before a lazily opened terminal
// is set up.
func (b *Backend) Screen() tcell.Screen { return b.screen }

// Close releases a terminal opened by the backend.
func (b *Backend) Close() {
	if b.owned && b.screen != nil {
		b.screen.Fini()
		b.screen = nil
		b.owned = false
		b.configured = false
	}
}

// Layout returns glyphgrid.LayoutTerm.
func (b *Backend) Layout() glyphgrid.Layout { return glyphgrid.LayoutTerm }

// CheckOptions reports whether o selects this layout.
func (b *Backend) CheckOptions(o glyphgrid.Options) bool {
	return o.Layout == glyphgrid.LayoutTerm
}

// SetOptions applies o, which must be glyphgrid.TermOptions or a pointer to it.
// The grid is re-centered on every call; a changed offset counts as a
// repaint.
func (b *Backend) SetOptions(lo glyphgrid.LayoutOptions) (bool, error) {
	var o glyphgrid.TermOptions
	switch v := lo.(type) {
	case glyphgrid.TermOptions:
		o = v
	case *glyphgrid.TermOptions:
		o = *v
	default:
		return false, glyphgrid.ErrOptionsMismatch
	}
	o = o.WithDefaults()
	if o.Layout != glyphgrid.LayoutTerm {
		return false, glyphgrid.ErrOptionsMismatch
	}

	if b.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return false, err
		}
		if err := s.Init(); err != nil {
			return false, err
		}
		b.screen, b.owned = s, true
	}

	repaint := !b.configured || glyphgrid.BaseChanged(b.opts.Options, o.Options)
	if repaint {
		fg, err := b.termColor(o.Fg, tcell.ColorDefault)
		if err != nil {
			return false, err
		}
		bg, err := b.termColor(o.Bg, tcell.ColorDefault)
		if err != nil {
			return false, err
		}
		b.fg, b.bg = fg, bg
	}

	w, h := b.screen.Size()
	offX, offY := floorHalf(w-o.Width), floorHalf(h-o.Height)
	if offX != b.offX || offY != b.offY {
		repaint = true
	}

	b.offX, b.offY = offX, offY
	b.opts = o
	b.configured = true
	if repaint {
		glyphgrid.Logger().Debug("term: geometry",
			"screenWidth", w, "screenHeight", h, "offsetX", offX, "offsetY", offY)
	}
	return repaint, nil
}

// floorHalf is n/2 rounded toward negative infinity.
func floorHalf(n int) int {
	return n >> 1
}

// termColor converts a color string, def for the empty string. Fully
// transparent colors map to the terminal's default color.
func (b *Backend) termColor(s string, def tcell.Color) (tcell.Color, error) {
	if s == "" {
		return def, nil
	}
	c, err := b.colors.Get(s)
	if err != nil {
		return 0, err
	}
	return toTerm(c), nil
}

func toTerm(c color.NRGBA) tcell.Color {
	if c.A == 0 {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Options returns a copy of the options in force.
func (b *Backend) Options() glyphgrid.LayoutOptions { return b.opts }

// Container returns nil: a terminal has no drawing surface.
func (b *Backend) Container() surface.Surface { return nil }

// Scheduler returns the frame queue.
func (b *Backend) Scheduler() *surface.Scheduler { return &b.sched }

// Schedule queues fn for the next frame.
func (b *Backend) Schedule(fn func()) { b.sched.Schedule(fn) }

// Offset returns the screen position of cell (0, 0).
func (b *Backend) Offset() (x, y int) { return b.offX, b.offY }

// Clear fills the screen with the default background.
func (b *Backend) Clear() {
	if b.screen == nil {
		return
	}
	b.screen.Fill(' ', tcell.StyleDefault.Foreground(b.fg).Background(b.bg))
	b.queueShow()
}

// Draw writes the first glyph of d at its screen position. Cells outside the
// screen are skipped. Without clearBefore the cell keeps its background;
// with it, a cell without glyphs is blanked.
func (b *Backend) Draw(d *glyphgrid.DisplayData, clearBefore bool) error {
	if b.screen == nil {
		return nil
	}
	x, y := b.offX+d.X, b.offY+d.Y
	w, h := b.screen.Size()
	if x < 0 || x >= w || y < 0 || y >= h {
		return nil
	}

	var bg tcell.Color
	if clearBefore {
		c, err := b.termColor(d.Bg(), b.bg)
		if err != nil {
			return err
		}
		bg = c
	} else {
		_, _, style, _ := b.screen.GetContent(x, y)
		_, bg, _ = style.Decompose()
	}

	if d.Empty() {
		if clearBefore {
			b.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Foreground(b.fg).Background(bg))
			b.queueShow()
		}
		return nil
	}

	fg, err := b.termColor(d.Fgs[0], b.fg)
	if err != nil {
		return err
	}
	mainc, comb := splitGlyph(d.Glyphs[0])
	b.screen.SetContent(x, y, mainc, comb, tcell.StyleDefault.Foreground(fg).Background(bg))
	b.queueShow()
	return nil
}

// splitGlyph returns the base rune of g and its combining runes.
func splitGlyph(g string) (rune, []rune) {
	r, n := utf8.DecodeRuneInString(g)
	if n == len(g) {
		return r, nil
	}
	return r, []rune(g[n:])
}

func (b *Backend) queueShow() {
	if b.showQueued {
		return
	}
	b.showQueued = true
	b.sched.Schedule(b.show)
}

func (b *Backend) show() {
	b.showQueued = false
	if b.screen != nil {
		b.screen.Show()
	}
}

// ComputeSize returns the screen size in characters.
func (b *Backend) ComputeSize(availWidth, availHeight float64) (int, int) {
	if b.screen == nil {
		return 0, 0
	}
	return b.screen.Size()
}

// ComputeFontSize always fails: the terminal owns its font.
func (b *Backend) ComputeFontSize(availWidth, availHeight float64) (int, error) {
	return 0, glyphgrid.ErrUnsupportedOperation
}

// EventToPosition returns the character cell under (x, y) in screen
// coordinates, (-1, -1) outside the screen.
func (b *Backend) EventToPosition(x, y float64) (int, int) {
	if b.screen == nil || x < 0 || y < 0 {
		return -1, -1
	}
	w, h := b.screen.Size()
	col, row := int(x), int(y)
	if col >= w || row >= h {
		return -1, -1
	}
	return col, row
}

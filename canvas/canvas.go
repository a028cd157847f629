// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"image/color"

	"github.com/gogpu/glyphgrid"
	"github.com/gogpu/glyphgrid/surface"
)

// Base is the surface-binding half of a layout backend.
//
// Base is NOT safe for concurrent use.
type Base struct {
	surf   surface.Surface
	sched  *surface.Scheduler
	colors glyphgrid.ColorCache
	fg, bg color.NRGBA
}

// NewBase binds to s, or to a new ImageSurface when s is nil. A surface
// carrying its own frame queue keeps it, so callbacks scheduled before a
// hand-over still run.
func NewBase(s surface.Surface) Base {
	if s == nil {
		s = surface.NewImageSurface(1, 1)
	} else {
		glyphgrid.Logger().Debug("canvas: reusing surface", "width", s.Width(), "height", s.Height())
	}

	b := Base{surf: s}
	if sc, ok := s.(surface.Scheduled); ok {
		b.sched = sc.Scheduler()
	} else {
		b.sched = new(surface.Scheduler)
	}
	return b
}

// Container returns the bound surface.
func (b *Base) Container() surface.Surface { return b.surf }

// Scheduler returns the frame queue used by Schedule.
func (b *Base) Scheduler() *surface.Scheduler { return b.sched }

// Schedule queues fn for the next frame.
func (b *Base) Schedule(fn func()) { b.sched.Schedule(fn) }

// ApplyColors parses the default colors of o and makes them current.
func (b *Base) ApplyColors(o glyphgrid.Options) error {
	fg, bg, err := b.ParseColors(o)
	if err != nil {
		return err
	}
	b.SetColors(fg, bg)
	return nil
}

// ParseColors parses the default colors of o without changing b.
func (b *Base) ParseColors(o glyphgrid.Options) (fg, bg color.NRGBA, err error) {
	if fg, err = b.colors.Get(o.Fg); err != nil {
		return fg, bg, err
	}
	bg, err = b.colors.Get(o.Bg)
	return fg, bg, err
}

// SetColors makes fg and bg the default colors.
func (b *Base) SetColors(fg, bg color.NRGBA) { b.fg, b.bg = fg, bg }

// Fg returns the default foreground.
func (b *Base) Fg() color.NRGBA { return b.fg }

// Bg returns the default background.
func (b *Base) Bg() color.NRGBA { return b.bg }

// Color parses s, returning def for an empty string.
func (b *Base) Color(s string, def color.NRGBA) (color.NRGBA, error) {
	if s == "" {
		return def, nil
	}
	return b.colors.Get(s)
}

// Resize sets the surface size in pixels.
func (b *Base) Resize(width, height int) error {
	if b.surf.Width() == width && b.surf.Height() == height {
		return nil
	}
	return b.surf.Resize(width, height)
}

// Clear fills the surface with the default background.
func (b *Base) Clear() {
	b.surf.Clear(b.bg)
}

// EventToPosition returns (-1, -1) for points outside the surface and
// otherwise the cell computed by normalize.
func (b *Base) EventToPosition(x, y float64, normalize func(x, y float64) (int, int)) (int, int) {
	if x < 0 || y < 0 || x >= float64(b.surf.Width()) || y >= float64(b.surf.Height()) {
		return -1, -1
	}
	return normalize(x, y)
}

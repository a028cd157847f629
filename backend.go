// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyphgrid

import (
	"github.com/gogpu/glyphgrid/surface"
)

// Backend is a renderer for one layout.
//
// A backend starts unconfigured and becomes usable after the first
// SetOptions. SetOptions may be called again at any time; the caller must not
// interleave it with Draw or the geometry queries. A backend never changes
// its own layout: when CheckOptions reports false the caller replaces the
// backend (see Negotiate).
type Backend interface {
	// Layout returns the layout this backend renders.
	Layout() Layout

	// CheckOptions reports whether this backend can represent o,
	// i.e. whether o.Layout equals Layout().
	CheckOptions(o Options) bool

	// SetOptions applies o, filling absent fields with the layout's
	// defaults. It reports whether previously rendered pixels are now
	// invalid. The first call always reports true.
	SetOptions(o LayoutOptions) (needsRepaint bool, err error)

	// Options returns a copy of the options in force.
	Options() LayoutOptions

	// Container returns the drawing surface, or nil for layouts without one.
	Container() surface.Surface

	// Schedule runs fn at the next frame boundary, never synchronously.
	Schedule(fn func())

	// Clear fills the whole surface with the background color.
	Clear()

	// Draw renders one cell. With clearBefore the cell footprint is first
	// filled with the cell background. Empty glyph data draws nothing else.
	Draw(d *DisplayData, clearBefore bool) error

	// ComputeSize returns the largest grid fitting the available space.
	ComputeSize(availWidth, availHeight float64) (cols, rows int)

	// ComputeFontSize returns the largest font size that fits the current
	// grid into the available space, or ErrUnsupportedOperation.
	ComputeFontSize(availWidth, availHeight float64) (int, error)

	// EventToPosition maps surface coordinates to a cell, or (-1, -1)
	// outside the surface.
	EventToPosition(x, y float64) (col, row int)
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package canvas holds the pieces shared by every surface-based layout.
//
// Base binds a backend to a persistent surface: it takes over a surface
// handed from a previous backend (or creates an ImageSurface), owns the
// frame queue, parses colors and implements whole-surface Clear and the
// bounds check of EventToPosition. Text adds font handling for glyph
// layouts: it builds the font from TextOptions, applies it to the surface
// and measures the reference glyph the geometry is derived from.
//
// Layouts compose these helpers rather than inherit from them:
//
//	type Backend struct {
//	    canvas.Text
//	    opts glyphgrid.HexOptions
//	}
package canvas

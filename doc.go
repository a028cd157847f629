// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package glyphgrid renders character grids, the display of roguelike games,
// through interchangeable layout backends.
//
// # Overview
//
// A Backend draws one grid cell at a time. Each layout lives in its own
// package and registers itself on import:
//
//   - hex: hexagonal cells, optionally transposed to flat-top hexes
//   - rect: monospace text cells
//   - tile: sprites cut from a tile set, optionally colorized
//   - term: a terminal through tcell
//
// The surface-based layouts draw into a surface.Surface, by default a
// gg-backed image. All of them share one option model: Options holds the
// fields every layout understands and each layout adds its own struct
// (HexOptions, RectOptions, TileOptions, TermOptions).
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/glyphgrid"
//	    _ "github.com/gogpu/glyphgrid/hex"
//	)
//
//	b, _, err := glyphgrid.Negotiate(nil, glyphgrid.HexOptions{
//	    Options: glyphgrid.Options{Width: 40, Height: 20},
//	})
//
//	buf := glyphgrid.NewBuffer(40, 20)
//	buf.At(10, 4).Set("@", "yellow", "")
//	buf.Each(func(d *glyphgrid.DisplayData) { _ = b.Draw(d, true) })
//
// # Repaints
//
// SetOptions reports whether the new options invalidate what is on the
// surface. Negotiate keeps the current backend when it can represent the
// new options and otherwise builds one for the new layout that takes over
// the surface; a swap always needs a repaint.
//
// # Logging
//
// Nothing is logged by default. See SetLogger.
package glyphgrid

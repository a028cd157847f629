// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package hex draws the grid as a tiling of hexagons.
//
// Cells are addressed in doubled coordinates and centered on their hexagon.
// With Transpose set the whole tiling is mirrored across the diagonal, giving
// flat-top hexes stacked in columns.
//
// Importing the package registers the layout:
//
//	import _ "github.com/gogpu/glyphgrid/hex"
//
//	b, err := glyphgrid.New(glyphgrid.LayoutHex, nil)
package hex

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package tile draws the grid with sprites cut from a tile set.
//
// Each glyph is looked up in TileMap, which gives the top-left corner of its
// TileWidth×TileHeight sprite. With TileColorize the sprite is recolored:
// its opaque pixels take the cell foreground and its transparent pixels the
// cell background. The color "transparent" leaves that step out.
//
// The layout has no font, so ComputeFontSize reports
// glyphgrid.ErrUnsupportedOperation.
package tile

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package rect draws the grid as rows of monospace text cells.
//
// The cell pitch follows the font: one advance of "W" across, one font size
// down, both scaled by Spacing. ForceSquareRatio makes cells square.
package rect

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package term draws the grid into a terminal through tcell.
//
// Every cell is one terminal character and the grid is centered in the
// screen. The layout has no drawing surface, so Container returns nil and a
// backend swapped in for it creates its own. ComputeSize reports the screen
// size and ComputeFontSize is unsupported.
//
// Drawing only updates tcell's back buffer; the screen is shown once per
// frame from the backend's Scheduler, which the caller drives with Run or
// Flush.
package term

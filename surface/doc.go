// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface provides the 2D drawing surface that grid backends render into.
//
// A Surface is the small primitive set the layout geometry is written against:
// solid fills of rectangles and polygons, centered single-glyph text, text
// measurement and sprite blits, all in a pixel coordinate space with the origin
// at the top-left corner.
//
// # Implementations
//
//   - ImageSurface: rasterizes through a gg.Context (github.com/gogpu/gg)
//   - Recorder: records commands without rasterizing; measures text with a
//     fixed advance ratio so geometry is reproducible in tests
//
// Both are registered by name:
//
//	s, err := surface.New("image", 640, 480)
//
// # Fonts
//
// Fonts are described by Font, whose String form follows the CSS shorthand
// used by text grids ("bold 15px monospace"). Families resolve to the Go font
// family embedded in golang.org/x/image/font/gofont.
//
// # Frames
//
// Scheduler queues callbacks for the next frame boundary. Nothing queued runs
// synchronously; the host calls Flush once per frame, or Run to drive frames
// from a ticker.
package surface

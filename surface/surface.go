// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"image/color"
)

// Surface is a 2D drawing target owned by exactly one backend at a time.
//
// Surfaces are NOT thread-safe. A surface handed from one backend to another
// must not be used through the previous owner again.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Resize changes the surface dimensions and discards its contents.
	Resize(width, height int) error

	// Clear fills the entire surface with c.
	Clear(c color.Color)

	// FillRect fills the rectangle at (x, y) of size w×h with c.
	FillRect(x, y, w, h float64, c color.Color) error

	// ClearRect resets the rectangle to fully transparent pixels.
	ClearRect(x, y, w, h float64)

	// FillPath fills the closed polygon p with c. p is not retained.
	FillPath(p *Path, c color.Color) error

	// SetFont selects the font used by MeasureText and FillText.
	SetFont(f Font) error

	// Font returns the font last set.
	Font() Font

	// MeasureText returns the advance width of s in the current font.
	MeasureText(s string) float64

	// FillText draws s horizontally centered on x with its middle on y.
	FillText(s string, x, y float64, c color.Color)

	// DrawImage copies the src rectangle of img to dst, compositing over
	// the existing pixels.
	DrawImage(img image.Image, src image.Rectangle, dst image.Point)

	// Image returns the surface contents.
	Image() image.Image
}

// ImageInvalidator is implemented by surfaces that keep their own copy of
// blitted images. Callers that reuse an image with new pixels must
// invalidate it before the next DrawImage.
type ImageInvalidator interface {
	InvalidateImage(img image.Image)
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blend

import (
	"image"
	"image/color"
)

// Fill composites the solid color c onto the pixels of dst inside r.
func Fill(dst *image.RGBA, r image.Rectangle, c color.Color, m Mode) {
	r = r.Intersect(dst.Rect)
	if r.Empty() {
		return
	}

	p := color.RGBAModel.Convert(c).(color.RGBA)
	fn := FuncFor(m)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := dst.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			px := dst.Pix[i : i+4 : i+4]
			px[0], px[1], px[2], px[3] = fn(p.R, p.G, p.B, p.A, px[0], px[1], px[2], px[3])
			i += 4
		}
	}
}

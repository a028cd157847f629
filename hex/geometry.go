// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package hex

import (
	"math"

	"github.com/gogpu/glyphgrid/surface"
)

var sqrt3 = math.Sqrt(3)

// Geometry is the hex metrics derived from the font.
//
// Cells use doubled coordinates: on even rows only even columns are used,
// on odd rows only odd ones, so neighbors in a row are two columns apart.
// All methods take the layout's transpose flag and swap the two axes on the
// way in and out; the math itself is written for pointy-top hexes.
type Geometry struct {
	// HexSize is the circumradius in pixels.
	HexSize float64

	// SpacingX is the horizontal distance between adjacent columns,
	// HexSize·√3/2.
	SpacingX float64

	// SpacingY is the vertical distance between rows, HexSize·1.5.
	SpacingY float64
}

// NewGeometry derives the metrics from the font size, the spacing factor
// and the measured width of the reference glyph.
func NewGeometry(fontSize int, spacing, charWidth float64) Geometry {
	a := math.Floor(spacing * (float64(fontSize) + charWidth/sqrt3) / 2)
	return geometryFor(a)
}

func geometryFor(hexSize float64) Geometry {
	return Geometry{
		HexSize:  hexSize,
		SpacingX: hexSize * sqrt3 / 2,
		SpacingY: hexSize * 1.5,
	}
}

func swap[T any](transpose bool, a, b T) (T, T) {
	if transpose {
		return b, a
	}
	return a, b
}

// SurfaceSize returns the pixel size of a width×height grid.
func (g Geometry) SurfaceSize(width, height int, transpose bool) (w, h int) {
	x := int(math.Ceil(float64(width+1) * g.SpacingX))
	y := int(math.Ceil(float64(height-1)*g.SpacingY + 2*g.HexSize))
	return swap(transpose, x, y)
}

// Center returns the pixel center of cell (x, y).
func (g Geometry) Center(x, y int, transpose bool) (px, py float64) {
	cx := float64(x+1) * g.SpacingX
	cy := float64(y)*g.SpacingY + g.HexSize
	return swap(transpose, cx, cy)
}

// ComputeSize returns the largest grid that fits the available pixels.
// The first column and the last half row of the tiling are reserved for the
// offset of odd rows.
func (g Geometry) ComputeSize(availWidth, availHeight float64, transpose bool) (cols, rows int) {
	if g.HexSize <= 0 {
		return 0, 0
	}
	availWidth, availHeight = swap(transpose, availWidth, availHeight)
	cols = int(math.Floor(availWidth/g.SpacingX)) - 1
	rows = int(math.Floor((availHeight-2*g.HexSize)/g.SpacingY + 1))
	return cols, rows
}

// FitHexSize returns the largest whole circumradius for which a
// width×height grid fits the available pixels.
func FitHexSize(availWidth, availHeight float64, width, height int, transpose bool) float64 {
	availWidth, availHeight = swap(transpose, availWidth, availHeight)
	byWidth := 2*availWidth/(float64(width+1)*sqrt3) - 1
	byHeight := availHeight / (2 + 1.5*float64(height-1))
	return math.Floor(math.Min(byWidth, byHeight))
}

// FontSizeFor inverts NewGeometry: it returns the largest font size whose
// hexes are no larger than hexSize, given the reference glyph's advance per
// pixel of font size.
func FontSizeFor(hexSize, spacing, ratio float64) int {
	fs := 2 * hexSize / (spacing * (1 + ratio/sqrt3))
	return int(math.Floor(fs))
}

// Position maps a point inside a surface of surfWidth×surfHeight pixels to
// the cell containing it, for a grid of the given number of rows.
func (g Geometry) Position(x, y float64, surfWidth, surfHeight, rows int, transpose bool) (col, row int) {
	x, y = swap(transpose, x, y)
	_, nodeSize := swap(transpose, surfWidth, surfHeight)

	size := float64(nodeSize) / float64(rows)
	row = int(math.Floor(y / size))

	if row%2 != 0 {
		x -= g.SpacingX
		col = 1 + 2*int(math.Floor(x/(2*g.SpacingX)))
	} else {
		col = 2 * int(math.Floor(x/(2*g.SpacingX)))
	}
	return col, row
}

// Hexagon replaces p with the hexagon centered on (cx, cy), each vertex
// pulled toward the center by border.
func (g Geometry) Hexagon(p *surface.Path, cx, cy, border float64, transpose bool) {
	a, b, sx := g.HexSize, border, g.SpacingX
	offsets := [6][2]float64{
		{0, -a + b},
		{sx - b, -a/2 + b},
		{sx - b, a/2 - b},
		{0, a - b},
		{-sx + b, a/2 - b},
		{-sx + b, -a/2 + b},
	}

	for i, o := range offsets {
		dx, dy := swap(transpose, o[0], o[1])
		if i == 0 {
			p.MoveTo(cx+dx, cy+dy)
			continue
		}
		p.LineTo(cx+dx, cy+dy)
	}
	p.Close()
}

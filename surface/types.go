// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

// Point is a position in surface coordinates.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

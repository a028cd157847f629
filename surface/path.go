// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

// Path is a single closed polygon.
//
// Backends keep one Path and Reset it before each cell, so filling a cell
// reuses the same point storage.
//
//	p := surface.NewPath()
//	p.MoveTo(100, 100)
//	p.LineTo(200, 100)
//	p.LineTo(150, 200)
//	p.Close()
type Path struct {
	points []Point
	closed bool
}

// NewPath creates an empty path with room for a hexagon.
func NewPath() *Path {
	return &Path{points: make([]Point, 0, 8)}
}

// Reset empties the path, keeping its storage.
func (p *Path) Reset() {
	p.points = p.points[:0]
	p.closed = false
}

// MoveTo starts the polygon at (x, y), discarding any previous points.
func (p *Path) MoveTo(x, y float64) {
	p.Reset()
	p.points = append(p.points, Point{X: x, Y: y})
}

// LineTo adds a vertex. A LineTo on an empty path acts as MoveTo.
func (p *Path) LineTo(x, y float64) {
	p.points = append(p.points, Point{X: x, Y: y})
}

// Close marks the polygon closed.
func (p *Path) Close() {
	p.closed = true
}

// Points returns the vertices. The slice is reused by the next Reset.
func (p *Path) Points() []Point { return p.points }

// Closed reports whether Close was called.
func (p *Path) Closed() bool { return p.closed }

// Len returns the number of vertices.
func (p *Path) Len() int { return len(p.points) }

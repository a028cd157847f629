// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"image/color"
	"math"
	"reflect"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/glyphgrid/internal/cache"
)

// imageCacheSize bounds the converted source images kept per surface.
const imageCacheSize = 16

// ImageSurface is a CPU surface rasterized through a gg.Context.
//
// Example:
//
//	s := surface.NewImageSurface(640, 480)
//	s.Clear(color.Black)
//	_ = s.SetFont(surface.Font{Size: 15, Family: "monospace"})
//	s.FillText("@", 20, 20, color.White)
//	_ = s.SavePNG("grid.png")
type ImageSurface struct {
	dc    *gg.Context
	font  Font
	face  text.Face
	sched Scheduler

	// images holds the gg copy of each blitted source image.
	images *cache.LRU[image.Image, *imageBuf]
}

var _ ImageInvalidator = (*ImageSurface)(nil)

type imageBuf struct {
	buf   *gg.ImageBuf
	stale bool
}

// NewImageSurface creates a surface of the given size. Non-positive
// dimensions are raised to 1 until the owning backend resizes it.
func NewImageSurface(width, height int) *ImageSurface {
	return &ImageSurface{dc: gg.NewContext(max(width, 1), max(height, 1))}
}

// Width returns the surface width.
func (s *ImageSurface) Width() int { return s.dc.Width() }

// Height returns the surface height.
func (s *ImageSurface) Height() int { return s.dc.Height() }

// Resize changes the dimensions and clears the surface to transparent.
func (s *ImageSurface) Resize(width, height int) error {
	if err := s.dc.Resize(max(width, 1), max(height, 1)); err != nil {
		return err
	}
	s.dc.Clear()
	if s.face != nil {
		s.dc.SetFont(s.face)
	}
	return nil
}

// Clear fills the whole surface with c.
func (s *ImageSurface) Clear(c color.Color) {
	s.dc.ClearWithColor(gg.FromColor(c))
}

// FillRect fills a rectangle with c.
func (s *ImageSurface) FillRect(x, y, w, h float64, c color.Color) error {
	s.dc.SetColor(c)
	s.dc.DrawRectangle(x, y, w, h)
	return s.dc.Fill()
}

// ClearRect sets every pixel whose center lies in the rectangle to transparent.
func (s *ImageSurface) ClearRect(x, y, w, h float64) {
	x0, y0 := int(math.Round(x)), int(math.Round(y))
	x1, y1 := int(math.Round(x+w)), int(math.Round(y+h))
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			s.dc.SetPixel(px, py, gg.Transparent)
		}
	}
}

// FillPath fills the polygon p with c.
func (s *ImageSurface) FillPath(p *Path, c color.Color) error {
	pts := p.Points()
	if len(pts) < 3 {
		return nil
	}
	s.dc.ClearPath()
	s.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		s.dc.LineTo(pt.X, pt.Y)
	}
	s.dc.ClosePath()
	s.dc.SetColor(c)
	return s.dc.Fill()
}

// SetFont loads and selects f.
func (s *ImageSurface) SetFont(f Font) error {
	face, err := LoadFace(f)
	if err != nil {
		return err
	}
	s.font, s.face = f, face
	s.dc.SetFont(face)
	return nil
}

// Font returns the current font.
func (s *ImageSurface) Font() Font { return s.font }

// MeasureText returns the advance width of str. It is 0 before SetFont.
func (s *ImageSurface) MeasureText(str string) float64 {
	w, _ := s.dc.MeasureString(str)
	return w
}

// FillText draws str centered on (x, y).
func (s *ImageSurface) FillText(str string, x, y float64, c color.Color) {
	s.dc.SetColor(c)
	s.dc.DrawStringAnchored(str, x, y, 0.5, 0.5)
}

// DrawImage composites the src rectangle of img at dst. The converted
// copy of img is kept and reused by later blits; call InvalidateImage
// after changing its pixels.
func (s *ImageSurface) DrawImage(img image.Image, src image.Rectangle, dst image.Point) {
	r := src.Sub(img.Bounds().Min)
	s.dc.DrawImageEx(s.imageBuf(img), gg.DrawImageOptions{
		X:       float64(dst.X),
		Y:       float64(dst.Y),
		SrcRect: &r,
	})
}

// InvalidateImage marks the kept copy of img as outdated. The next
// DrawImage refreshes it, in place when the size is unchanged.
func (s *ImageSurface) InvalidateImage(img image.Image) {
	if s.images == nil || !cacheable(img) {
		return
	}
	if e, ok := s.images.Get(img); ok {
		e.stale = true
	}
}

func (s *ImageSurface) imageBuf(img image.Image) *gg.ImageBuf {
	if !cacheable(img) {
		return gg.ImageBufFromImage(img)
	}
	if s.images == nil {
		s.images = cache.New[image.Image, *imageBuf](imageCacheSize)
	}
	e, ok := s.images.Get(img)
	switch {
	case !ok:
		e = &imageBuf{buf: gg.ImageBufFromImage(img)}
		s.images.Add(img, e)
	case e.stale:
		if !refresh(e.buf, img) {
			e.buf = gg.ImageBufFromImage(img)
		}
		e.stale = false
	}
	return e.buf
}

// refresh copies the pixels of img into buf without allocating. It
// reports false when img is not a same-sized RGBA or NRGBA image.
func refresh(buf *gg.ImageBuf, img image.Image) bool {
	var pix []byte
	var stride int
	switch m := img.(type) {
	case *image.RGBA:
		pix, stride = m.Pix, m.Stride
	case *image.NRGBA:
		pix, stride = m.Pix, m.Stride
	default:
		return false
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if bw, bh := buf.Bounds(); bw != w || bh != h {
		return false
	}
	for y := range h {
		copy(buf.RowBytes(y), pix[y*stride:y*stride+w*4])
	}
	buf.InvalidatePremulCache()
	return true
}

// cacheable reports whether img can key the image cache.
func cacheable(img image.Image) bool {
	return img != nil && reflect.TypeOf(img).Comparable()
}

// Image returns a snapshot of the surface.
func (s *ImageSurface) Image() image.Image { return s.dc.Image() }

// SavePNG writes the surface to a PNG file.
func (s *ImageSurface) SavePNG(path string) error { return s.dc.SavePNG(path) }

// Scheduler returns the frame queue that travels with this surface.
func (s *ImageSurface) Scheduler() *Scheduler { return &s.sched }

// Context exposes the underlying gg.Context for drawing outside the grid.
func (s *ImageSurface) Context() *gg.Context { return s.dc }

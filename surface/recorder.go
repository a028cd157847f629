// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"image/color"
	"slices"
	"unicode/utf8"

	xdraw "golang.org/x/image/draw"
)

// CommandType identifies a recorded surface operation.
type CommandType uint8

const (
	CmdResize    CommandType = iota // Surface resized
	CmdClear                        // Whole surface filled
	CmdFillRect                     // Rectangle filled
	CmdClearRect                    // Rectangle made transparent
	CmdFillPath                     // Polygon filled
	CmdSetFont                      // Font selected
	CmdFillText                     // Glyph drawn
	CmdDrawImage                    // Sprite blitted
)

var commandTypeNames = [...]string{
	CmdResize:    "Resize",
	CmdClear:     "Clear",
	CmdFillRect:  "FillRect",
	CmdClearRect: "ClearRect",
	CmdFillPath:  "FillPath",
	CmdSetFont:   "SetFont",
	CmdFillText:  "FillText",
	CmdDrawImage: "DrawImage",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is a recorded surface operation.
type Command interface {
	Type() CommandType
}

// ResizeCommand records Resize.
type ResizeCommand struct {
	Width, Height int
}

func (ResizeCommand) Type() CommandType { return CmdResize }

// ClearCommand records Clear.
type ClearCommand struct {
	Color color.Color
}

func (ClearCommand) Type() CommandType { return CmdClear }

// FillRectCommand records FillRect.
type FillRectCommand struct {
	X, Y, W, H float64
	Color      color.Color
}

func (FillRectCommand) Type() CommandType { return CmdFillRect }

// ClearRectCommand records ClearRect.
type ClearRectCommand struct {
	X, Y, W, H float64
}

func (ClearRectCommand) Type() CommandType { return CmdClearRect }

// FillPathCommand records FillPath with a copy of the polygon.
type FillPathCommand struct {
	Points []Point
	Color  color.Color
}

func (FillPathCommand) Type() CommandType { return CmdFillPath }

// SetFontCommand records SetFont.
type SetFontCommand struct {
	Font Font
}

func (SetFontCommand) Type() CommandType { return CmdSetFont }

// FillTextCommand records FillText.
type FillTextCommand struct {
	Text  string
	X, Y  float64
	Color color.Color
}

func (FillTextCommand) Type() CommandType { return CmdFillText }

// DrawImageCommand records DrawImage.
type DrawImageCommand struct {
	Image image.Image
	Src   image.Rectangle
	Dst   image.Point
}

func (DrawImageCommand) Type() CommandType { return CmdDrawImage }

// DefaultAdvanceRatio is the glyph advance of a Recorder as a fraction of
// the font size, close to the Go Mono advance.
const DefaultAdvanceRatio = 0.6

// Recorder is a Surface that records operations instead of rasterizing.
//
// Text is measured as AdvanceRatio × font size per rune, which makes every
// geometry derived from it exact and reproducible. The recorded commands can
// be replayed onto any other Surface.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	// AdvanceRatio is the advance of one rune per pixel of font size.
	AdvanceRatio float64

	width, height int
	font          Font
	commands      []Command
	sched         Scheduler
}

// NewRecorder creates a recorder of the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		AdvanceRatio: DefaultAdvanceRatio,
		width:        width,
		height:       height,
		commands:     make([]Command, 0, 64),
	}
}

func (r *Recorder) record(c Command) { r.commands = append(r.commands, c) }

// Width returns the surface width.
func (r *Recorder) Width() int { return r.width }

// Height returns the surface height.
func (r *Recorder) Height() int { return r.height }

// Resize changes the dimensions.
func (r *Recorder) Resize(width, height int) error {
	r.width, r.height = width, height
	r.record(ResizeCommand{Width: width, Height: height})
	return nil
}

// Clear records a whole-surface fill.
func (r *Recorder) Clear(c color.Color) {
	r.record(ClearCommand{Color: c})
}

// FillRect records a rectangle fill.
func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) error {
	r.record(FillRectCommand{X: x, Y: y, W: w, H: h, Color: c})
	return nil
}

// ClearRect records a transparent rectangle.
func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.record(ClearRectCommand{X: x, Y: y, W: w, H: h})
}

// FillPath records a polygon fill.
func (r *Recorder) FillPath(p *Path, c color.Color) error {
	r.record(FillPathCommand{Points: slices.Clone(p.Points()), Color: c})
	return nil
}

// SetFont records a font change.
func (r *Recorder) SetFont(f Font) error {
	r.font = f
	r.record(SetFontCommand{Font: f})
	return nil
}

// Font returns the current font.
func (r *Recorder) Font() Font { return r.font }

// MeasureText returns AdvanceRatio × size for every rune of s.
func (r *Recorder) MeasureText(s string) float64 {
	return r.AdvanceRatio * r.font.Size * float64(utf8.RuneCountInString(s))
}

// FillText records a glyph.
func (r *Recorder) FillText(s string, x, y float64, c color.Color) {
	r.record(FillTextCommand{Text: s, X: x, Y: y, Color: c})
}

// DrawImage records a blit. The src pixels are copied, so the caller may
// reuse img afterwards.
func (r *Recorder) DrawImage(img image.Image, src image.Rectangle, dst image.Point) {
	cp := image.NewNRGBA(src)
	xdraw.Copy(cp, src.Min, img, src, xdraw.Src, nil)
	r.record(DrawImageCommand{Image: cp, Src: src, Dst: dst})
}

// Image replays the recording onto a fresh ImageSurface and returns it.
func (r *Recorder) Image() image.Image {
	s := NewImageSurface(r.width, r.height)
	_ = r.Replay(s)
	return s.Image()
}

// Scheduler returns the frame queue that travels with this surface.
func (r *Recorder) Scheduler() *Scheduler { return &r.sched }

// Commands returns the recorded commands in order.
func (r *Recorder) Commands() []Command { return r.commands }

// Count returns how many commands of type t were recorded.
func (r *Recorder) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Reset drops the recorded commands, keeping size and font.
func (r *Recorder) Reset() {
	clear(r.commands)
	r.commands = r.commands[:0]
}

// Replay applies the recorded commands to dst in order.
func (r *Recorder) Replay(dst Surface) error {
	path := NewPath()
	for _, c := range r.commands {
		switch c := c.(type) {
		case ResizeCommand:
			if err := dst.Resize(c.Width, c.Height); err != nil {
				return err
			}
		case ClearCommand:
			dst.Clear(c.Color)
		case FillRectCommand:
			if err := dst.FillRect(c.X, c.Y, c.W, c.H, c.Color); err != nil {
				return err
			}
		case ClearRectCommand:
			dst.ClearRect(c.X, c.Y, c.W, c.H)
		case FillPathCommand:
			path.Reset()
			for _, pt := range c.Points {
				path.LineTo(pt.X, pt.Y)
			}
			path.Close()
			if err := dst.FillPath(path, c.Color); err != nil {
				return err
			}
		case SetFontCommand:
			if err := dst.SetFont(c.Font); err != nil {
				return err
			}
		case FillTextCommand:
			dst.FillText(c.Text, c.X, c.Y, c.Color)
		case DrawImageCommand:
			dst.DrawImage(c.Image, c.Src, c.Dst)
		}
	}
	return nil
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package hex

import (
	"errors"
	"image/color"
	"testing"

	"github.com/gogpu/glyphgrid"
	"github.com/gogpu/glyphgrid/surface"
)

func newBackend(t *testing.T, o glyphgrid.HexOptions) (*Backend, *surface.Recorder) {
	t.Helper()
	rec := surface.NewRecorder(1, 1)
	b := New(rec)
	if _, err := b.SetOptions(o); err != nil {
		t.Fatalf("SetOptions() error = %v", err)
	}
	rec.Reset()
	return b, rec
}

func small() glyphgrid.HexOptions {
	return glyphgrid.HexOptions{Options: glyphgrid.Options{Width: 10, Height: 5}}
}

func TestRegistered(t *testing.T) {
	b, err := glyphgrid.New(glyphgrid.LayoutHex, nil)
	if err != nil {
		t.Fatalf("New(hex) error = %v", err)
	}
	if _, ok := b.(*Backend); !ok {
		t.Errorf("New(hex) = %T, want *hex.Backend", b)
	}
}

func TestSetOptionsRepaint(t *testing.T) {
	rec := surface.NewRecorder(1, 1)
	b := New(rec)

	repaint, err := b.SetOptions(small())
	if err != nil || !repaint {
		t.Fatalf("first SetOptions() = %v, %v, want true, nil", repaint, err)
	}
	if rec.Width() != 96 || rec.Height() != 80 {
		t.Errorf("surface = %dx%d, want 96x80", rec.Width(), rec.Height())
	}

	repaint, err = b.SetOptions(small())
	if err != nil || repaint {
		t.Errorf("identical SetOptions() = %v, %v, want false, nil", repaint, err)
	}

	tests := []struct {
		name   string
		mutate func(o *glyphgrid.HexOptions)
	}{
		{"fg", func(o *glyphgrid.HexOptions) { o.Fg = "red" }},
		{"bg", func(o *glyphgrid.HexOptions) { o.Bg = "#123" }},
		{"width", func(o *glyphgrid.HexOptions) { o.Width = 11 }},
		{"fontSize", func(o *glyphgrid.HexOptions) { o.FontSize = 20 }},
		{"fontStyle", func(o *glyphgrid.HexOptions) { o.FontStyle = "bold" }},
		{"border", func(o *glyphgrid.HexOptions) { o.Border = 1 }},
		{"transpose", func(o *glyphgrid.HexOptions) { o.Transpose = true }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := newBackend(t, small())
			o := small()
			tt.mutate(&o)
			repaint, err := b.SetOptions(o)
			if err != nil || !repaint {
				t.Errorf("SetOptions() = %v, %v, want true, nil", repaint, err)
			}
		})
	}
}

func TestSetOptionsTransposeSwapsSurface(t *testing.T) {
	o := small()
	o.Transpose = true
	_, rec := newBackend(t, o)
	if rec.Width() != 80 || rec.Height() != 96 {
		t.Errorf("transposed surface = %dx%d, want 80x96", rec.Width(), rec.Height())
	}
}

func TestSetOptionsMismatch(t *testing.T) {
	b := New(surface.NewRecorder(1, 1))
	if _, err := b.SetOptions(glyphgrid.RectDefaults()); !errors.Is(err, glyphgrid.ErrOptionsMismatch) {
		t.Errorf("SetOptions(rect) error = %v, want ErrOptionsMismatch", err)
	}
	o := small()
	if _, err := b.SetOptions(&o); err != nil {
		t.Errorf("SetOptions(*HexOptions) error = %v", err)
	}
}

func TestSetOptionsKeepsOwnLayout(t *testing.T) {
	b, _ := newBackend(t, small())
	o := small()
	o.Layout = glyphgrid.LayoutRect
	if _, err := b.SetOptions(o); !errors.Is(err, glyphgrid.ErrOptionsMismatch) {
		t.Fatalf("SetOptions(Layout=rect) error = %v, want ErrOptionsMismatch", err)
	}
	if got := b.Options().Base().Layout; got != glyphgrid.LayoutHex {
		t.Errorf("Options().Layout = %q, want hex", got)
	}
	if !b.CheckOptions(b.Options().Base()) {
		t.Error("CheckOptions(Options()) = false")
	}
}

var errResize = errors.New("resize refused")

// resizeFailer is a Recorder whose Resize can be made to fail.
type resizeFailer struct {
	*surface.Recorder
	fail bool
}

func (r *resizeFailer) Resize(w, h int) error {
	if r.fail {
		return errResize
	}
	return r.Recorder.Resize(w, h)
}

func TestSetOptionsFailedResizeKeepsState(t *testing.T) {
	s := &resizeFailer{Recorder: surface.NewRecorder(1, 1)}
	b := New(s)
	if _, err := b.SetOptions(small()); err != nil {
		t.Fatalf("SetOptions() error = %v", err)
	}
	wantBg, wantFont, wantCW := b.Bg(), b.Font(), b.CharWidth()

	s.fail = true
	o := small()
	o.Bg = "#123456"
	o.FontSize = 30
	if _, err := b.SetOptions(o); !errors.Is(err, errResize) {
		t.Fatalf("SetOptions() error = %v, want %v", err, errResize)
	}
	if b.Bg() != wantBg {
		t.Errorf("Bg() = %v after failed SetOptions, want %v", b.Bg(), wantBg)
	}
	if b.Font() != wantFont || b.CharWidth() != wantCW {
		t.Errorf("Font() = %v (charWidth %v), want %v (charWidth %v)",
			b.Font(), b.CharWidth(), wantFont, wantCW)
	}
	if got := b.Options().Base().Bg; got != "#000" {
		t.Errorf("Options().Bg = %q, want #000", got)
	}
}

func TestSetOptionsBadColorKeepsState(t *testing.T) {
	b, _ := newBackend(t, small())
	o := small()
	o.Fg = "not-a-color"
	if _, err := b.SetOptions(o); err == nil {
		t.Fatal("SetOptions with a bad fg should fail")
	}
	if got := b.Options().Base().Fg; got != "#ccc" {
		t.Errorf("Options().Fg = %q after failed SetOptions, want #ccc", got)
	}
}

func TestOptionsAreDefaulted(t *testing.T) {
	b, _ := newBackend(t, glyphgrid.HexOptions{})
	got, ok := b.Options().(glyphgrid.HexOptions)
	if !ok {
		t.Fatalf("Options() = %T, want HexOptions", b.Options())
	}
	if got != glyphgrid.HexDefaults() {
		t.Errorf("Options() = %+v, want %+v", got, glyphgrid.HexDefaults())
	}
}

func TestCheckOptions(t *testing.T) {
	b, rec := newBackend(t, small())
	if !b.CheckOptions(glyphgrid.Options{Layout: glyphgrid.LayoutHex}) {
		t.Error("CheckOptions(hex) = false")
	}
	if b.CheckOptions(glyphgrid.Options{Layout: glyphgrid.LayoutRect, Width: 1}) {
		t.Error("CheckOptions(rect) = true")
	}
	if n := len(rec.Commands()); n != 0 {
		t.Errorf("CheckOptions recorded %d commands, want 0", n)
	}
}

func TestClear(t *testing.T) {
	b, rec := newBackend(t, small())
	b.Clear()
	b.Clear()
	if n := rec.Count(surface.CmdClear); n != 2 {
		t.Fatalf("Clear count = %d, want 2", n)
	}
	want := color.NRGBA{A: 255}
	for _, c := range rec.Commands() {
		if cc := c.(surface.ClearCommand); cc.Color != want {
			t.Errorf("Clear color = %v, want %v", cc.Color, want)
		}
	}
}

func TestDrawEmptyCellOnlyClears(t *testing.T) {
	b, rec := newBackend(t, small())

	var d glyphgrid.DisplayData
	d.X, d.Y = 2, 0
	d.Set("", "", "#f00")
	if err := b.Draw(&d, true); err != nil {
		t.Fatal(err)
	}

	cmds := rec.Commands()
	if len(cmds) != 1 {
		t.Fatalf("recorded %d commands, want 1", len(cmds))
	}
	fp, ok := cmds[0].(surface.FillPathCommand)
	if !ok {
		t.Fatalf("command = %T, want FillPathCommand", cmds[0])
	}
	if len(fp.Points) != 6 {
		t.Errorf("hexagon has %d points, want 6", len(fp.Points))
	}
	if fp.Color != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("fill color = %v, want red", fp.Color)
	}

	rec.Reset()
	if err := b.Draw(&d, false); err != nil {
		t.Fatal(err)
	}
	if n := len(rec.Commands()); n != 0 {
		t.Errorf("Draw(empty, false) recorded %d commands, want 0", n)
	}
}

func TestDrawGlyphs(t *testing.T) {
	b, rec := newBackend(t, small())

	var d glyphgrid.DisplayData
	d.X, d.Y = 3, 1
	d.SetGlyphs([]string{"@", "/"}, "", "")
	if err := b.Draw(&d, false); err != nil {
		t.Fatal(err)
	}

	if n := rec.Count(surface.CmdFillPath); n != 0 {
		t.Errorf("FillPath count = %d, want 0 without clearBefore", n)
	}
	cmds := rec.Commands()
	if len(cmds) != 2 {
		t.Fatalf("recorded %d commands, want 2", len(cmds))
	}

	px, py := b.Geometry().Center(3, 1, false)
	fg := color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 255}
	for i, want := range []string{"@", "/"} {
		ft := cmds[i].(surface.FillTextCommand)
		if ft.Text != want || ft.X != px || ft.Y != 25 || ft.Color != fg {
			t.Errorf("FillText[%d] = %+v, want %q at (%v, 25) in %v", i, ft, want, px, fg)
		}
	}
	if py != 25 {
		t.Errorf("center y = %v, want 25", py)
	}
}

func TestDrawBadColor(t *testing.T) {
	b, _ := newBackend(t, small())
	var d glyphgrid.DisplayData
	d.Set("@", "bogus", "")
	if err := b.Draw(&d, true); err == nil {
		t.Error("Draw with a bad fg should fail")
	}
}

func TestComputeSizeMatchesSurface(t *testing.T) {
	for _, tr := range []bool{false, true} {
		o := small()
		o.Transpose = tr
		b, rec := newBackend(t, o)
		cols, rows := b.ComputeSize(float64(rec.Width()), float64(rec.Height()))
		if cols != 10 || rows != 5 {
			t.Errorf("transpose=%v: ComputeSize(surface) = %d,%d, want 10,5", tr, cols, rows)
		}
	}
}

func TestComputeFontSizeFits(t *testing.T) {
	b, rec := newBackend(t, small())

	fs, err := b.ComputeFontSize(96, 80)
	if err != nil {
		t.Fatal(err)
	}
	if fs != 13 {
		t.Errorf("ComputeFontSize(96, 80) = %d, want 13", fs)
	}
	if f := rec.Font(); f.Size != 15 {
		t.Errorf("font after ComputeFontSize = %v, want restored 15px", f)
	}

	o := small()
	o.FontSize = fs
	if _, err := b.SetOptions(o); err != nil {
		t.Fatal(err)
	}
	cols, rows := b.ComputeSize(96, 80)
	if cols < 10 || rows < 5 {
		t.Errorf("grid at fitted font = %dx%d, want at least 10x5", cols, rows)
	}
	if rec.Width() > 96 || rec.Height() > 80 {
		t.Errorf("surface at fitted font = %dx%d, want within 96x80", rec.Width(), rec.Height())
	}
}

func TestEventToPosition(t *testing.T) {
	for _, tr := range []bool{false, true} {
		o := small()
		o.Transpose = tr
		b, rec := newBackend(t, o)
		g := b.Geometry()

		for y := 0; y < 5; y++ {
			for x := y % 2; x < 10; x += 2 {
				px, py := g.Center(x, y, tr)
				if col, row := b.EventToPosition(px, py); col != x || row != y {
					t.Errorf("transpose=%v: EventToPosition(center of %d,%d) = %d,%d", tr, x, y, col, row)
				}
			}
		}

		w, h := float64(rec.Width()), float64(rec.Height())
		for _, p := range [][2]float64{{-1, 5}, {5, -0.5}, {w, 0}, {0, h}} {
			if col, row := b.EventToPosition(p[0], p[1]); col != -1 || row != -1 {
				t.Errorf("transpose=%v: EventToPosition(%v) = %d,%d, want -1,-1", tr, p, col, row)
			}
		}
	}
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyphgrid

import (
	"errors"
	"testing"

	"github.com/gogpu/glyphgrid/surface"
)

// stubBackend records SetOptions calls; it is enough to exercise negotiation.
type stubBackend struct {
	layout Layout
	s      surface.Surface
	opts   LayoutOptions
	sets   int
	closed int
}

func (b *stubBackend) Close() { b.closed++ }

func (b *stubBackend) Layout() Layout                { return b.layout }
func (b *stubBackend) CheckOptions(o Options) bool   { return o.Layout == b.layout }
func (b *stubBackend) Options() LayoutOptions        { return b.opts }
func (b *stubBackend) Container() surface.Surface    { return b.s }
func (b *stubBackend) Schedule(fn func())            {}
func (b *stubBackend) Clear()                        {}
func (b *stubBackend) Draw(*DisplayData, bool) error { return nil }
func (b *stubBackend) ComputeSize(float64, float64) (int, int) {
	return 0, 0
}
func (b *stubBackend) ComputeFontSize(float64, float64) (int, error) {
	return 0, ErrUnsupportedOperation
}
func (b *stubBackend) EventToPosition(float64, float64) (int, int) { return -1, -1 }

func (b *stubBackend) SetOptions(o LayoutOptions) (bool, error) {
	b.sets++
	first := b.opts == nil
	b.opts = o.Defaulted()
	return first, nil
}

func registerStub(t *testing.T, l Layout) {
	t.Helper()
	if err := Register(l, func(s surface.Surface) Backend { return &stubBackend{layout: l, s: s} }); err != nil {
		t.Fatalf("Register(%q) error = %v", l, err)
	}
	t.Cleanup(func() { Unregister(l) })
}

func TestRegisterUnique(t *testing.T) {
	registerStub(t, "stub-a")

	err := Register("stub-a", func(surface.Surface) Backend { return nil })
	if !errors.Is(err, ErrLayoutRegistered) {
		t.Errorf("duplicate Register() error = %v, want ErrLayoutRegistered", err)
	}
	if !IsRegistered("stub-a") {
		t.Error("IsRegistered(stub-a) = false")
	}

	found := false
	for _, l := range Layouts() {
		if l == "stub-a" {
			found = true
		}
	}
	if !found {
		t.Error("Layouts() should include stub-a")
	}

	if _, err := New("missing", nil); !errors.Is(err, ErrUnknownLayout) {
		t.Errorf("New(missing) error = %v, want ErrUnknownLayout", err)
	}
	if err := Register("", nil); err == nil {
		t.Error("Register with empty layout should fail")
	}
}

func TestNegotiate(t *testing.T) {
	registerStub(t, "stub-a")
	registerStub(t, "stub-b")

	optsA := TermOptions{Options: Options{Width: 5, Height: 5, Layout: "stub-a"}}

	b, repaint, err := Negotiate(nil, optsA)
	if err != nil {
		t.Fatalf("Negotiate() error = %v", err)
	}
	if b.Layout() != "stub-a" || !repaint {
		t.Fatalf("Negotiate() = %v, repaint %v", b.Layout(), repaint)
	}

	same, repaint, err := Negotiate(b, optsA)
	if err != nil || same != b || repaint {
		t.Errorf("Negotiate() with compatible options = %p, %v, %v; want same backend, no repaint", same, repaint, err)
	}
	if n := b.(*stubBackend).closed; n != 0 {
		t.Errorf("kept backend closed %d times, want 0", n)
	}

	rec := surface.NewRecorder(1, 1)
	b.(*stubBackend).s = rec

	optsB := optsA
	optsB.Layout = "stub-b"
	swapped, repaint, err := Negotiate(b, optsB)
	if err != nil {
		t.Fatalf("Negotiate() swap error = %v", err)
	}
	if swapped == b || swapped.Layout() != "stub-b" || !repaint {
		t.Errorf("swap returned %v, repaint %v", swapped.Layout(), repaint)
	}
	if swapped.Container() != surface.Surface(rec) {
		t.Error("swap should hand the surface over to the new backend")
	}
	if b.Layout() != "stub-a" {
		t.Error("old backend must keep its layout")
	}
	if n := b.(*stubBackend).closed; n != 1 {
		t.Errorf("replaced backend closed %d times, want 1", n)
	}

	optsB.Layout = "missing"
	kept, _, err := Negotiate(swapped, optsB)
	if !errors.Is(err, ErrUnknownLayout) || kept != swapped {
		t.Errorf("Negotiate() to unknown layout = %v, %v", kept, err)
	}
	if n := swapped.(*stubBackend).closed; n != 0 {
		t.Errorf("backend kept after a failed swap closed %d times, want 0", n)
	}
}

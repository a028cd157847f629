// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyphgrid

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/glyphgrid/surface"
)

// Factory creates an unconfigured backend. s is the surface inherited from
// a previous backend and may be nil; factories of layouts without a surface
// ignore it.
type Factory func(s surface.Surface) Backend

var (
	registryMu sync.RWMutex
	factories  = make(map[Layout]Factory)
)

// Register adds the factory for a layout. Each layout can be registered once;
// layout packages call Register from init():
//
//	import _ "github.com/gogpu/glyphgrid/hex"
func Register(l Layout, f Factory) error {
	if l == "" || f == nil {
		return &ConfigError{Field: "layout", Value: l}
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, ok := factories[l]; ok {
		return fmt.Errorf("%w: %s", ErrLayoutRegistered, l)
	}
	factories[l] = f
	return nil
}

// MustRegister is like Register but panics on error.
func MustRegister(l Layout, f Factory) {
	if err := Register(l, f); err != nil {
		panic(err)
	}
}

// Unregister removes a layout. This is useful for testing.
func Unregister(l Layout) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, l)
}

// IsRegistered reports whether a backend exists for l.
func IsRegistered(l Layout) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[l]
	return ok
}

// Layouts returns the registered layouts in sorted order.
func Layouts() []Layout {
	registryMu.RLock()
	defer registryMu.RUnlock()

	ls := make([]Layout, 0, len(factories))
	for l := range factories {
		ls = append(ls, l)
	}
	sort.Slice(ls, func(i, j int) bool { return ls[i] < ls[j] })
	return ls
}

// New creates an unconfigured backend for l on s (which may be nil).
func New(l Layout, s surface.Surface) (Backend, error) {
	registryMu.RLock()
	f, ok := factories[l]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLayout, l)
	}
	return f(s), nil
}

// Negotiate returns a backend configured with o.
//
// When current can represent o it is kept and SetOptions decides the repaint
// flag. Otherwise a backend for o's layout is created, taking over current's
// surface, and the repaint flag is true. After a successful swap current is
// closed when it has a Close method and must not be used again.
func Negotiate(current Backend, o LayoutOptions) (Backend, bool, error) {
	base := o.Base()
	if base.Layout == "" {
		o = o.Defaulted()
		base = o.Base()
	}

	if current != nil && current.CheckOptions(base) {
		repaint, err := current.SetOptions(o)
		return current, repaint, err
	}

	var s surface.Surface
	if current != nil {
		s = current.Container()
		Logger().Info("glyphgrid: swapping backend",
			"from", current.Layout(), "to", base.Layout, "surface", s != nil)
	}

	next, err := New(base.Layout, s)
	if err != nil {
		return current, false, err
	}
	if _, err := next.SetOptions(o); err != nil {
		return current, false, err
	}
	if c, ok := current.(interface{ Close() }); ok {
		c.Close()
	}
	return next, true, nil
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"sort"
	"sync"
)

// Factory creates a surface of the given size.
type Factory func(width, height int) (Surface, error)

var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
)

// Register adds a surface kind. Registering an existing name replaces it.
func Register(name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[name] = f
}

// Unregister removes a surface kind. This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// Kinds returns the registered surface kinds in sorted order.
func Kinds() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New creates a surface of the named kind.
func New(kind string, width, height int) (Surface, error) {
	registryMu.RLock()
	f, ok := factories[kind]
	registryMu.RUnlock()

	if !ok {
		return nil, &KindNotFoundError{Kind: kind}
	}
	return f(width, height)
}

// KindNotFoundError indicates a surface kind is not registered.
type KindNotFoundError struct {
	Kind string
}

func (e *KindNotFoundError) Error() string {
	return "surface: kind not found: " + e.Kind
}

func init() {
	Register("image", func(w, h int) (Surface, error) {
		return NewImageSurface(w, h), nil
	})
	Register("recorder", func(w, h int) (Surface, error) {
		return NewRecorder(w, h), nil
	})
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyphgrid

import (
	"errors"
	"fmt"
)

// Common backend errors.
var (
	// ErrUnsupportedOperation is returned by variants that lack the concept an
	// operation needs, e.g. ComputeFontSize on a sprite grid.
	ErrUnsupportedOperation = errors.New("glyphgrid: unsupported operation")

	// ErrOptionsMismatch is returned by SetOptions when the option struct does not
	// belong to the backend's layout.
	ErrOptionsMismatch = errors.New("glyphgrid: options do not match backend layout")

	// ErrUnknownLayout is returned when no backend is registered for a layout.
	ErrUnknownLayout = errors.New("glyphgrid: unknown layout")

	// ErrLayoutRegistered is returned by Register for a duplicate layout.
	ErrLayoutRegistered = errors.New("glyphgrid: layout already registered")
)

// ConfigError reports an option value outside the valid domain.
type ConfigError struct {
	Field string
	Value any
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("glyphgrid: invalid option %s: %v", e.Field, e.Value)
}

// GlyphNotMappedError is returned when a sprite grid is asked to draw a glyph
// that has no entry in its tile map.
type GlyphNotMappedError struct {
	Glyph string
}

func (e *GlyphNotMappedError) Error() string {
	return fmt.Sprintf("glyphgrid: glyph %q not found in tile map", e.Glyph)
}

// ColorError reports a color string that could not be parsed.
type ColorError struct {
	Value string
	Err   error
}

func (e *ColorError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("glyphgrid: invalid color %q: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("glyphgrid: invalid color %q", e.Value)
}

func (e *ColorError) Unwrap() error { return e.Err }

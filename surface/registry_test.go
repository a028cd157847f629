// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"slices"
	"testing"
)

func TestRegistryBuiltinKinds(t *testing.T) {
	kinds := Kinds()
	for _, want := range []string{"image", "recorder"} {
		if !slices.Contains(kinds, want) {
			t.Errorf("Kinds() = %v, missing %q", kinds, want)
		}
	}
	if !slices.IsSorted(kinds) {
		t.Errorf("Kinds() = %v, want sorted", kinds)
	}
}

func TestRegistryNew(t *testing.T) {
	s, err := New("recorder", 40, 30)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if s.Width() != 40 || s.Height() != 30 {
		t.Errorf("size = %dx%d, want 40x30", s.Width(), s.Height())
	}
	if _, ok := s.(*Recorder); !ok {
		t.Errorf("New(recorder) = %T, want *Recorder", s)
	}
}

func TestRegistryRegisterUnregister(t *testing.T) {
	Register("test", func(w, h int) (Surface, error) {
		return NewRecorder(w, h), nil
	})
	if _, err := New("test", 1, 1); err != nil {
		t.Fatalf("New(test) error = %v", err)
	}

	Unregister("test")

	_, err := New("test", 1, 1)
	var nf *KindNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("New() after Unregister error = %v, want *KindNotFoundError", err)
	}
	if nf.Kind != "test" {
		t.Errorf("Kind = %q, want test", nf.Kind)
	}
}

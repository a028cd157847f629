// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"strconv"
	"strings"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Font describes the font a text grid draws with.
type Font struct {
	// Style is a CSS font-style/weight prefix such as "bold" or "italic".
	Style string

	// Size is the font size in pixels.
	Size float64

	// Family is a CSS family name. Generic names ("monospace", "sans-serif")
	// and the Go font names are recognized; anything else falls back to
	// monospace.
	Family string
}

// String returns the CSS shorthand, e.g. "bold 15px monospace".
func (f Font) String() string {
	var b strings.Builder
	if f.Style != "" {
		b.WriteString(f.Style)
		b.WriteByte(' ')
	}
	b.WriteString(strconv.FormatFloat(f.Size, 'f', -1, 64))
	b.WriteString("px ")
	b.WriteString(f.Family)
	return b.String()
}

// WithSize returns a copy of f at another size.
func (f Font) WithSize(size float64) Font {
	f.Size = size
	return f
}

// Family groups are the embedded Go fonts a family name resolves to.
const (
	FamilyMono = "Go Mono"
	FamilySans = "Go"
)

// ResolveFamily maps a CSS family list to one of the embedded families.
// The first recognized entry of a comma-separated list wins.
func ResolveFamily(family string) string {
	for _, name := range strings.Split(family, ",") {
		name = strings.ToLower(strings.Trim(strings.TrimSpace(name), `"'`))
		switch name {
		case "monospace", "mono", "go mono", "courier", "courier new", "menlo", "consolas":
			return FamilyMono
		case "sans-serif", "sans", "serif", "go", "arial", "helvetica":
			return FamilySans
		}
	}
	return FamilyMono
}

type fontKey struct {
	family string
	bold   bool
	italic bool
}

func keyFor(f Font) fontKey {
	style := strings.ToLower(f.Style)
	return fontKey{
		family: ResolveFamily(f.Family),
		bold:   strings.Contains(style, "bold"),
		italic: strings.Contains(style, "italic") || strings.Contains(style, "oblique"),
	}
}

func (k fontKey) data() []byte {
	if k.family == FamilySans {
		switch {
		case k.bold && k.italic:
			return gobolditalic.TTF
		case k.bold:
			return gobold.TTF
		case k.italic:
			return goitalic.TTF
		}
		return goregular.TTF
	}
	switch {
	case k.bold && k.italic:
		return gomonobolditalic.TTF
	case k.bold:
		return gomonobold.TTF
	case k.italic:
		return gomonoitalic.TTF
	}
	return gomono.TTF
}

var (
	sourcesMu sync.Mutex
	sources   = make(map[fontKey]*text.FontSource)
)

// LoadFace returns a face for f. Font sources are parsed once per
// family and style and shared by every surface.
func LoadFace(f Font) (text.Face, error) {
	k := keyFor(f)

	sourcesMu.Lock()
	defer sourcesMu.Unlock()

	src, ok := sources[k]
	if !ok {
		var err error
		src, err = text.NewFontSource(k.data())
		if err != nil {
			return nil, err
		}
		sources[k] = src
	}
	return src.Face(f.Size), nil
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyphgrid

import (
	"errors"
	"image/color"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"

	"github.com/gogpu/glyphgrid/internal/cache"
)

// Transparent is the color named "transparent".
var Transparent = color.NRGBA{}

var errColorSyntax = errors.New("unrecognized syntax")

// ParseColor parses a CSS color: "#rgb", "#rgba", "#rrggbb", "#rrggbbaa",
// "rgb(r, g, b)", "rgba(r, g, b, a)", a CSS color name or "transparent".
func ParseColor(s string) (color.NRGBA, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case v == "":
		return color.NRGBA{}, &ColorError{Value: s, Err: errColorSyntax}
	case v == "transparent":
		return Transparent, nil
	case v[0] == '#':
		if !isHex(v[1:]) {
			return color.NRGBA{}, &ColorError{Value: s, Err: errColorSyntax}
		}
		return toNRGBA(gg.Hex(v)), nil
	case strings.HasPrefix(v, "rgb"):
		c, err := parseFunctional(v)
		if err != nil {
			return color.NRGBA{}, &ColorError{Value: s, Err: err}
		}
		return c, nil
	}
	if c, ok := colornames.Map[v]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	return color.NRGBA{}, &ColorError{Value: s, Err: errColorSyntax}
}

// IsTransparent reports whether s names the fully transparent color.
func IsTransparent(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "transparent")
}

func isHex(s string) bool {
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f') {
			return false
		}
	}
	return true
}

func toNRGBA(c gg.RGBA) color.NRGBA {
	return color.NRGBA{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}

// parseFunctional handles rgb() and rgba() with integer or percentage channels.
func parseFunctional(v string) (color.NRGBA, error) {
	open := strings.IndexByte(v, '(')
	if open < 0 || !strings.HasSuffix(v, ")") {
		return color.NRGBA{}, errColorSyntax
	}
	name := v[:open]
	parts := strings.Split(v[open+1:len(v)-1], ",")
	switch {
	case name == "rgb" && len(parts) == 3:
	case name == "rgba" && len(parts) == 4:
	default:
		return color.NRGBA{}, errColorSyntax
	}

	var ch [4]uint8
	ch[3] = 255
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if i == 3 {
			a, err := strconv.ParseFloat(p, 64)
			if err != nil {
				return color.NRGBA{}, err
			}
			ch[3] = clampByte(a * 255)
			continue
		}
		if pct, ok := strings.CutSuffix(p, "%"); ok {
			f, err := strconv.ParseFloat(pct, 64)
			if err != nil {
				return color.NRGBA{}, err
			}
			ch[i] = clampByte(f * 255 / 100)
			continue
		}
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return color.NRGBA{}, err
		}
		ch[i] = clampByte(f)
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

func clampByte(f float64) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 255:
		return 255
	}
	return uint8(f + 0.5)
}

// colorCacheSize bounds a ColorCache. Generated colors (gradients, fades)
// would otherwise grow it without limit.
const colorCacheSize = 512

// ColorCache memoizes ParseColor results. Cell colors repeat heavily from
// frame to frame, so backends look them up here instead of re-parsing.
// The zero value is ready to use. Not safe for concurrent use.
type ColorCache struct {
	lru *cache.LRU[string, color.NRGBA]
}

// Get returns the parsed color for s.
func (c *ColorCache) Get(s string) (color.NRGBA, error) {
	if c.lru == nil {
		c.lru = cache.New[string, color.NRGBA](colorCacheSize)
	}
	if col, ok := c.lru.Get(s); ok {
		return col, nil
	}
	col, err := ParseColor(s)
	if err != nil {
		return color.NRGBA{}, err
	}
	c.lru.Add(s, col)
	return col, nil
}

// Len returns the number of cached colors.
func (c *ColorCache) Len() int {
	if c.lru == nil {
		return 0
	}
	return c.lru.Len()
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package blend implements the Porter-Duff operators used to tint sprites.
//
// All operations work on premultiplied alpha in the range 0-255, the layout
// of image.RGBA.
package blend

// Mode is a Porter-Duff compositing operator.
type Mode uint8

const (
	SourceOver      Mode = iota // S + D*(1-Sa)
	SourceAtop                  // S*Da + D*(1-Sa)
	DestinationOver             // S*(1-Da) + D
)

var modeNames = [...]string{
	SourceOver:      "SourceOver",
	SourceAtop:      "SourceAtop",
	DestinationOver: "DestinationOver",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "Unknown"
}

// Func blends one premultiplied source pixel with one destination pixel.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// FuncFor returns the operator of m, SourceOver for unknown modes.
func FuncFor(m Mode) Func {
	switch m {
	case SourceAtop:
		return sourceAtop
	case DestinationOver:
		return destinationOver
	default:
		return sourceOver
	}
}

func sourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addClamp(sr, mulDiv255(dr, invSa)),
		addClamp(sg, mulDiv255(dg, invSa)),
		addClamp(sb, mulDiv255(db, invSa)),
		addClamp(sa, mulDiv255(da, invSa))
}

// sourceAtop keeps the destination alpha.
func sourceAtop(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addClamp(mulDiv255(sr, da), mulDiv255(dr, invSa)),
		addClamp(mulDiv255(sg, da), mulDiv255(dg, invSa)),
		addClamp(mulDiv255(sb, da), mulDiv255(db, invSa)),
		da
}

func destinationOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	return addClamp(mulDiv255(sr, invDa), dr),
		addClamp(mulDiv255(sg, invDa), dg),
		addClamp(mulDiv255(sb, invDa), db),
		addClamp(mulDiv255(sa, invDa), da)
}

// mulDiv255 returns a*b/255 using (x + 255) >> 8, which is exact when
// either factor is 0 or 255.
func mulDiv255(a, b byte) byte {
	return byte((uint16(a)*uint16(b) + 255) >> 8)
}

func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

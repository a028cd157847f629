// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package config reads layout options from TOML or YAML files.
//
// Both formats share one flat set of keys; the layout key selects which
// option struct the file decodes to, and keys that do not belong to that
// layout are ignored. Unknown keys are an error.
//
//	layout = "hex"
//	width = 40
//	height = 20
//	fontSize = 18
//	transpose = true
//
// A tile layout names its sprite sheet with tileSet, a PNG path relative to
// the file, and maps glyphs to sprite corners with tileMap:
//
//	layout: tile
//	tileWidth: 16
//	tileHeight: 16
//	tileSet: sprites.png
//	tileMap:
//	  "@": [0, 0]
//	  "#": [16, 0]
package config

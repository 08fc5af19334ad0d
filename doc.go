// Package ggicon renders the ClaudeBoard application icon.
//
// # Overview
//
// ggicon is a one-shot asset generator built on the gg 2D graphics library.
// It draws a fixed recipe onto a transparent 1024×1024 canvas: a dark
// rounded-rectangle background with a thin border, three "session" rows
// with glowing status dots, and the letters "CB". The result is written as
// an RGBA PNG, optionally together with Windows (.ico) and macOS (.icns)
// icon files derived from it.
//
// # Quick Start
//
//	go run ./cmd/ggicon            // writes icon.png in the working directory
//	go generate ./build            // writes build/icon.png
//
// # Architecture
//
// The module is organized into:
//   - internal/icon: the drawing recipe and its layout constants
//   - internal/fontload: ordered font candidates with a built-in fallback
//   - internal/export: PNG, ICO and ICNS writers
//   - internal/config: defaults, ICONGEN_* environment, validation
//   - cmd/ggicon: the command line entry point
//
// # Determinism
//
// Rendering is deterministic for a given font-resolution outcome. Two runs
// that resolve the same font produce byte-identical PNG files. When no
// candidate font is installed the built-in Go Regular face is used, which
// changes the typeface of "CB" but not its position.
package ggicon

// Version information
const (
	// Version is the current version of the generator
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)

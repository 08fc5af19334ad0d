// Package fontload resolves the face used for the icon letters.
//
// Candidates are tried in order; a candidate that cannot be read or parsed
// is skipped. When every candidate fails the built-in Go Regular face is
// used, so resolution itself never fails for lack of system fonts.
//
// Font collections (.ttc) are supported by extracting the first member
// into a standalone font before handing it to gg/text, which only parses
// single fonts.
package fontload

import (
	"fmt"
	"os"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/ggicon"
)

// DefaultCandidates are the display fonts tried before the built-in one.
var DefaultCandidates = []string{
	"/System/Library/Fonts/SFCompact.ttf",
	"/System/Library/Fonts/Menlo.ttc",
}

// BuiltinName is reported by Font.Name for the built-in face.
const BuiltinName = "Go Regular (built-in)"

// Font is a resolved face together with the source that owns it.
// Close the Font once drawing is done.
type Font struct {
	Face   text.Face
	Source *text.FontSource

	// Path is the file the font was loaded from. Empty for the built-in font.
	Path string

	// Builtin is true when no candidate could be loaded.
	Builtin bool
}

// Name returns a human-readable font name for logging.
func (f Font) Name() string {
	if f.Builtin {
		return BuiltinName
	}
	if f.Source == nil {
		return ""
	}
	return f.Source.Name()
}

// Close releases the font source. Close on a zero Font is a no-op.
func (f Font) Close() error {
	if f.Source == nil {
		return nil
	}
	return f.Source.Close()
}

// Load reads the font at path and creates a face of the given size in points.
// Collections are reduced to their first member.
func Load(path string, size float64) (Font, error) {
	// #nosec G304 -- font candidates come from the command line or defaults
	data, err := os.ReadFile(path)
	if err != nil {
		return Font{}, fmt.Errorf("fontload: read %s: %w", path, err)
	}

	if IsCollection(data) {
		data, err = ExtractCollectionMember(data, 0)
		if err != nil {
			return Font{}, fmt.Errorf("fontload: %s: %w", path, err)
		}
	}

	src, err := text.NewFontSource(data)
	if err != nil {
		return Font{}, fmt.Errorf("fontload: parse %s: %w", path, err)
	}
	return Font{Face: src.Face(size), Source: src, Path: path}, nil
}

// Builtin returns the embedded Go Regular face at the given size.
func Builtin(size float64) (Font, error) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return Font{}, fmt.Errorf("fontload: built-in font: %w", err)
	}
	return Font{Face: src.Face(size), Source: src, Builtin: true}, nil
}

// Resolve returns the first candidate that loads, or the built-in face.
// The returned error is non-nil only if the built-in font itself is unusable.
func Resolve(candidates []string, size float64) (Font, error) {
	log := ggicon.Logger()

	for _, path := range candidates {
		f, err := Load(path, size)
		if err != nil {
			log.Debug("font candidate rejected", "path", path, "err", err)
			continue
		}
		log.Info("font resolved", "path", path, "name", f.Name(), "size", size)
		return f, nil
	}

	f, err := Builtin(size)
	if err != nil {
		return Font{}, err
	}
	log.Warn("no candidate font available, using built-in font", "candidates", len(candidates))
	return f, nil
}

// Package export writes rendered icons to disk.
//
// All writers create missing parent directories and replace the target
// atomically: the encoded image goes to a temporary file in the target
// directory which is then renamed over the destination.
package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	"github.com/gogpu/ggicon"
)

// EncodePNG writes img as PNG to w.
func EncodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	if err := enc.Encode(w, img); err != nil {
		return fmt.Errorf("export: encode png: %w", err)
	}
	return nil
}

// WritePNG writes img as a PNG file at path.
func WritePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		return err
	}
	return writeFile(path, buf.Bytes())
}

// writeFile atomically replaces path with data.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: create directory %s: %w", dir, err)
	}
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}

	ggicon.Logger().Info("file written", "path", path, "bytes", len(data))
	return nil
}

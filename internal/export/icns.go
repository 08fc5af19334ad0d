package export

import (
	"bytes"
	"fmt"
	"image"

	"github.com/jackmordaunt/icns/v2"
)

// EncodeICNS encodes img as an Apple icon family. Every member the
// source is large enough for is written as PNG, so a 1024 px source
// yields the full ic07 to ic14 set.
func EncodeICNS(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := icns.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("export: encode icns: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteICNS writes img as an .icns file at path.
func WriteICNS(path string, img image.Image) error {
	data, err := EncodeICNS(img)
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

package export

import (
	"bytes"
	"fmt"
	"image"

	ico "github.com/sergeymakinen/go-ico"
)

// ICOSize is the edge length of the single image stored in an ICO file.
const ICOSize = 256

// WriteICO writes a Windows icon containing img scaled to ICOSize.
func WriteICO(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := ico.Encode(&buf, Scale(img, ICOSize)); err != nil {
		return fmt.Errorf("export: encode ico: %w", err)
	}
	return writeFile(path, buf.Bytes())
}

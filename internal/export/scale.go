package export

import (
	"image"

	"golang.org/x/image/draw"
)

// Scale resizes img to a size×size square with Catmull-Rom resampling.
// An image that already has the requested size is returned as is.
func Scale(img image.Image, size int) image.Image {
	b := img.Bounds()
	if b.Dx() == size && b.Dy() == size {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Rect, img, b, draw.Src, nil)
	return dst
}

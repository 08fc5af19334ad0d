// Package icon draws the ClaudeBoard application icon.
//
// The recipe is fixed: every coordinate, radius and colour comes from the
// constants in layout.go. Shapes are composited source-over in the order
// background, border, rows (bar, glow, dot, label), text. The glow rings and
// labels therefore tint the bar instead of replacing its pixels, so the icon
// intentionally differs from a rendition that overwrites pixels per shape.
package icon

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/ggicon"
	"github.com/gogpu/ggicon/internal/fontload"
)

// Render draws the icon onto a fresh transparent canvas and returns the
// finished image. The letters are drawn with face; a nil face selects the
// built-in font.
func Render(face text.Face) (*image.RGBA, error) {
	start := time.Now()

	if face == nil {
		builtin, err := fontload.Builtin(TextSize)
		if err != nil {
			return nil, fmt.Errorf("icon: %w", err)
		}
		defer func() { _ = builtin.Close() }()
		face = builtin.Face
	}

	dc := gg.NewContext(Size, Size)
	defer func() { _ = dc.Close() }()

	if err := drawBackground(dc); err != nil {
		return nil, fmt.Errorf("icon: background: %w", err)
	}
	for i, row := range Rows {
		if err := drawRow(dc, i, row); err != nil {
			return nil, fmt.Errorf("icon: row %d (%s): %w", i, row.Label, err)
		}
	}
	drawText(dc, face)

	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("icon: flush: %w", err)
	}
	img := toRGBA(dc.Image())

	ggicon.Logger().Debug("icon rendered", "size", Size, "rows", len(Rows), "elapsed", time.Since(start))
	return img, nil
}

// drawBackground fills the rounded background and strokes its border.
func drawBackground(dc *gg.Context) error {
	bg := Background()
	if err := fillRoundedRect(dc, bg, Radius, BackgroundFg); err != nil {
		return err
	}

	// The outline stays inside the bounds: the centre line is inset by half
	// the width on every side.
	const inset = BorderWidth / 2.0
	x, y, w, h := bg.geometry()
	setColor(dc, BorderFg)
	dc.SetLineWidth(BorderWidth)
	dc.DrawRoundedRectangle(x+inset, y+inset, w-2*inset, h-2*inset, Radius-inset)
	return dc.Stroke()
}

// drawRow draws bar, glowing status dot and label for row i.
func drawRow(dc *gg.Context, i int, row Row) error {
	if err := fillRoundedRect(dc, RowBar(i), BarRadius, BarFg); err != nil {
		return err
	}

	dx, dy := DotCenter(i)
	for _, ring := range Glow() {
		if err := fillEllipse(dc, square(dx, dy, ring.Radius), withAlpha(row.Color, ring.Alpha)); err != nil {
			return err
		}
	}
	if err := fillEllipse(dc, square(dx, dy, DotRadius), withAlpha(row.Color, 255)); err != nil {
		return err
	}

	return fillRoundedRect(dc, Label(i), LabelRadius, withAlpha(row.Color, LabelAlpha))
}

// drawText draws the letters centred on TextCenter. The vertical centre is
// the midpoint between ascent and descent, so the baseline sits below the
// anchor by half their difference.
func drawText(dc *gg.Context, face text.Face) {
	cx, cy := TextCenter()
	w, _ := text.Measure(Text, face)
	m := face.Metrics()

	dc.SetFont(face)
	setColor(dc, TextFg)
	dc.DrawString(Text, cx-w/2, cy+(m.Ascent-m.Descent)/2)
}

func fillRoundedRect(dc *gg.Context, r Rect, radius float64, c color.NRGBA) error {
	x, y, w, h := r.geometry()
	setColor(dc, c)
	dc.DrawRoundedRectangle(x, y, w, h, radius)
	return dc.Fill()
}

func fillEllipse(dc *gg.Context, r Rect, c color.NRGBA) error {
	cx, cy := r.center()
	setColor(dc, c)
	dc.DrawEllipse(cx, cy, float64(r.Dx())/2, float64(r.Dy())/2)
	return dc.Fill()
}

// setColor sets a straight-alpha colour. gg.FromColor would read the
// premultiplied components of c, which darkens translucent colours.
func setColor(dc *gg.Context, c color.NRGBA) {
	dc.SetRGBA(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, float64(c.A)/255)
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, img, b.Min, draw.Src)
	return dst
}

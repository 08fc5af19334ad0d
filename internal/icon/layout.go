package icon

import "image/color"

// Canvas geometry.
const (
	// Size is the width and height of the canvas in pixels.
	Size = 1024

	// Pad is the inset of the background from every canvas edge.
	Pad = 100

	// Radius is the corner radius of the background and border.
	Radius = 180

	// BorderWidth is the width of the border outline.
	BorderWidth = 3
)

// Row geometry. Rows are stacked from RowStartY with RowGap between bars.
const (
	BarX      = Pad + 100
	BarW      = Size - 2*Pad - 200
	BarH      = 64
	BarRadius = 16
	RowStartY = Pad + 200
	RowGap    = 100

	DotOffsetX = 44
	DotRadius  = 16
	GlowSpread = 12
	GlowAlpha  = 40

	LabelOffsetX = 40
	LabelInset   = 130
	LabelTop     = 22
	LabelBottom  = 42
	LabelRadius  = 6
	LabelAlpha   = 60
)

// Text placement.
const (
	Text     = "CB"
	TextSize = 80
	TextY    = Pad + 120
)

// Palette.
var (
	Transparent  = color.NRGBA{}
	BackgroundFg = color.NRGBA{R: 17, G: 17, B: 17, A: 255}
	BorderFg     = color.NRGBA{R: 50, G: 50, B: 50, A: 255}
	BarFg        = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
	TextFg       = color.NRGBA{R: 102, G: 102, B: 102, A: 255}

	Green = color.NRGBA{R: 74, G: 222, B: 128, A: 255}
	Red   = color.NRGBA{R: 239, G: 68, B: 68, A: 255}
)

// Rect is an inclusive pixel bounding box: both corners belong to the shape.
type Rect struct {
	X0, Y0, X1, Y1 int
}

// Dx returns the number of pixel columns covered by r.
func (r Rect) Dx() int { return r.X1 - r.X0 + 1 }

// Dy returns the number of pixel rows covered by r.
func (r Rect) Dy() int { return r.Y1 - r.Y0 + 1 }

// Contains reports whether pixel (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X0 && x <= r.X1 && y >= r.Y0 && y <= r.Y1
}

// geometry converts r to continuous coordinates (x, y, w, h).
func (r Rect) geometry() (x, y, w, h float64) {
	return float64(r.X0), float64(r.Y0), float64(r.Dx()), float64(r.Dy())
}

// center returns the continuous centre of r.
func (r Rect) center() (cx, cy float64) {
	x, y, w, h := r.geometry()
	return x + w/2, y + h/2
}

// square returns the square box of half-size n around pixel (cx, cy).
func square(cx, cy, n int) Rect {
	return Rect{X0: cx - n, Y0: cy - n, X1: cx + n, Y1: cy + n}
}

// Row is one session row.
type Row struct {
	Color color.NRGBA
	Label string
}

// Rows are the three fixed session rows, top to bottom.
var Rows = [...]Row{
	{Color: Green, Label: "idle"},
	{Color: Red, Label: "working"},
	{Color: Green, Label: "idle"},
}

// Background returns the bounds of the background and border.
func Background() Rect {
	return Rect{X0: Pad, Y0: Pad, X1: Size - Pad, Y1: Size - Pad}
}

// RowY returns the top edge of row i.
func RowY(i int) int {
	return RowStartY + i*(BarH+RowGap)
}

// RowBar returns the bounds of the bar for row i.
func RowBar(i int) Rect {
	y := RowY(i)
	return Rect{X0: BarX, Y0: y, X1: BarX + BarW, Y1: y + BarH}
}

// DotCenter returns the pixel at the centre of the status dot of row i.
func DotCenter(i int) (x, y int) {
	return BarX + DotOffsetX, RowY(i) + BarH/2
}

// Label returns the bounds of the simulated text label of row i.
func Label(i int) Rect {
	dx, _ := DotCenter(i)
	x := dx + LabelOffsetX
	y := RowY(i)
	return Rect{X0: x, Y0: y + LabelTop, X1: x + BarW - LabelInset, Y1: y + LabelBottom}
}

// GlowRing is one translucent circle of a status dot glow.
type GlowRing struct {
	Radius int
	Alpha  uint8
}

// Glow returns the glow rings of a status dot from the outermost inwards.
// The alpha falls linearly from zero at the rim to just under GlowAlpha
// next to the solid dot.
func Glow() []GlowRing {
	rings := make([]GlowRing, 0, GlowSpread)
	for gr := DotRadius + GlowSpread; gr > DotRadius; gr-- {
		alpha := int(GlowAlpha * (1 - float64(gr-DotRadius)/GlowSpread))
		rings = append(rings, GlowRing{Radius: gr, Alpha: uint8(alpha)})
	}
	return rings
}

// TextCenter returns the anchor point of the "CB" letters.
func TextCenter() (x, y float64) {
	return Size / 2, TextY
}

// withAlpha returns c with its alpha replaced.
func withAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}

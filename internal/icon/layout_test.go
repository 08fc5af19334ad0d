package icon

import "testing"

func TestBackground(t *testing.T) {
	want := Rect{X0: 100, Y0: 100, X1: 924, Y1: 924}
	if got := Background(); got != want {
		t.Errorf("Background() = %+v, want %+v", got, want)
	}
}

func TestRowPositions(t *testing.T) {
	tests := []struct {
		i     int
		wantY int
		dotY  int
	}{
		{0, 300, 332},
		{1, 464, 496},
		{2, 628, 660},
	}

	for _, tc := range tests {
		if got := RowY(tc.i); got != tc.wantY {
			t.Errorf("RowY(%d) = %d, want %d", tc.i, got, tc.wantY)
		}
		bar := RowBar(tc.i)
		if bar.X0 != 200 || bar.X1 != 824 || bar.Y0 != tc.wantY || bar.Y1 != tc.wantY+BarH {
			t.Errorf("RowBar(%d) = %+v", tc.i, bar)
		}
		dx, dy := DotCenter(tc.i)
		if dx != 244 || dy != tc.dotY {
			t.Errorf("DotCenter(%d) = (%d, %d), want (244, %d)", tc.i, dx, dy, tc.dotY)
		}
		label := Label(tc.i)
		if label.X0 != 284 || label.X1 != 284+494 || label.Y0 != tc.wantY+22 || label.Y1 != tc.wantY+42 {
			t.Errorf("Label(%d) = %+v", tc.i, label)
		}
	}
}

func TestRows(t *testing.T) {
	if len(Rows) != 3 {
		t.Fatalf("len(Rows) = %d, want 3", len(Rows))
	}
	want := []Row{
		{Color: Green, Label: "idle"},
		{Color: Red, Label: "working"},
		{Color: Green, Label: "idle"},
	}
	for i, row := range Rows {
		if row != want[i] {
			t.Errorf("Rows[%d] = %+v, want %+v", i, row, want[i])
		}
	}
}

func TestGlow(t *testing.T) {
	rings := Glow()
	if len(rings) != GlowSpread {
		t.Fatalf("len(Glow()) = %d, want %d", len(rings), GlowSpread)
	}

	first, last := rings[0], rings[len(rings)-1]
	if first.Radius != 28 || first.Alpha != 0 {
		t.Errorf("outer ring = %+v, want {28 0}", first)
	}
	if last.Radius != 17 || last.Alpha != 36 {
		t.Errorf("inner ring = %+v, want {17 36}", last)
	}

	for i := 1; i < len(rings); i++ {
		if rings[i].Radius != rings[i-1].Radius-1 {
			t.Errorf("ring %d radius %d does not follow %d", i, rings[i].Radius, rings[i-1].Radius)
		}
		if rings[i].Alpha < rings[i-1].Alpha {
			t.Errorf("ring %d alpha %d decreases inwards from %d", i, rings[i].Alpha, rings[i-1].Alpha)
		}
	}
}

func TestRect(t *testing.T) {
	r := square(10, 20, 3)
	if r.Dx() != 7 || r.Dy() != 7 {
		t.Errorf("square(10, 20, 3) size = %dx%d, want 7x7", r.Dx(), r.Dy())
	}
	cx, cy := r.center()
	if cx != 10.5 || cy != 20.5 {
		t.Errorf("center() = (%v, %v), want (10.5, 20.5)", cx, cy)
	}
	if !r.Contains(7, 23) || r.Contains(6, 20) || r.Contains(10, 24) {
		t.Error("Contains() reports wrong membership at the edges")
	}
}

func TestTextCenter(t *testing.T) {
	x, y := TextCenter()
	if x != 512 || y != 220 {
		t.Errorf("TextCenter() = (%v, %v), want (512, 220)", x, y)
	}
}

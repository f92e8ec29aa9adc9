package geometry

import "testing"

func TestRectFromLTWH(t *testing.T) {
	r := RectFromLTWH(10, 20, 100, 50)
	if r.Right != 110 || r.Bottom != 70 {
		t.Errorf("r = %+v, want Right 110 Bottom 70", r)
	}
	if r.Width() != 100 || r.Height() != 50 {
		t.Errorf("size = %vx%v, want 100x50", r.Width(), r.Height())
	}
}

func TestRectContains(t *testing.T) {
	r := RectFromLTWH(0, 0, 100, 100)
	tests := []struct {
		p    Offset
		want bool
	}{
		{Offset{X: 50, Y: 50}, true},
		{Offset{X: 0, Y: 0}, true},     // left/top inclusive
		{Offset{X: 100, Y: 50}, false}, // right exclusive
		{Offset{X: 50, Y: 100}, false}, // bottom exclusive
		{Offset{X: -1, Y: 50}, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestRectCenter(t *testing.T) {
	c := RectFromLTWH(0, 0, 100, 50).Center()
	if c.X != 50 || c.Y != 25 {
		t.Errorf("Center = %v, want (50, 25)", c)
	}
}

func TestRectTranslate(t *testing.T) {
	r := RectFromLTWH(0, 0, 10, 10).Translate(Offset{X: 5, Y: -5})
	if r.Left != 5 || r.Top != -5 || r.Right != 15 || r.Bottom != 5 {
		t.Errorf("Translate = %+v", r)
	}
}

func TestRectIntersect(t *testing.T) {
	a := RectFromLTWH(0, 0, 100, 100)
	b := RectFromLTWH(50, 50, 100, 100)
	got := a.Intersect(b)
	want := Rect{Left: 50, Top: 50, Right: 100, Bottom: 100}
	if got != want {
		t.Errorf("Intersect = %+v, want %+v", got, want)
	}

	far := RectFromLTWH(500, 500, 10, 10)
	if !a.Intersect(far).IsEmpty() {
		t.Error("disjoint rects should intersect to empty")
	}
}

func TestOffsetArithmetic(t *testing.T) {
	o := Offset{X: 1, Y: 2}.Add(Offset{X: 3, Y: 4})
	if o.X != 4 || o.Y != 6 {
		t.Errorf("Add = %v", o)
	}
	s := Offset{X: 2, Y: -3}.Scale(2)
	if s.X != 4 || s.Y != -6 {
		t.Errorf("Scale = %v", s)
	}
}

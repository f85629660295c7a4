package geom

import "testing"

func TestBoxEdges(t *testing.T) {
	tests := []struct {
		name       string
		box        Box
		wantRight  int
		wantBottom int
		wantArea   int
	}{
		{
			name:       "origin",
			box:        Box{Width: 100, Height: 50},
			wantRight:  100,
			wantBottom: 50,
			wantArea:   5000,
		},
		{
			name:       "offset",
			box:        Box{X: 10, Y: 20, Width: 30, Height: 40},
			wantRight:  40,
			wantBottom: 60,
			wantArea:   1200,
		},
		{
			name:       "zero size",
			box:        Box{X: 5, Y: 5},
			wantRight:  5,
			wantBottom: 5,
			wantArea:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.Right(); got != tt.wantRight {
				t.Errorf("Right() = %d, want %d", got, tt.wantRight)
			}
			if got := tt.box.Bottom(); got != tt.wantBottom {
				t.Errorf("Bottom() = %d, want %d", got, tt.wantBottom)
			}
			if got := tt.box.Area(); got != tt.wantArea {
				t.Errorf("Area() = %d, want %d", got, tt.wantArea)
			}
		})
	}
}

func TestBoxTranslate(t *testing.T) {
	b := Box{X: 1, Y: 2, Width: 3, Height: 4}
	got := b.Translate(10, -5)
	want := Box{X: 11, Y: -3, Width: 3, Height: 4}
	if got != want {
		t.Errorf("Translate() = %+v, want %+v", got, want)
	}
	if b.X != 1 {
		t.Error("Translate should not modify the receiver")
	}
}

func TestBoxInset(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want Box
	}{
		{"zero", 0, Box{X: 0, Y: 0, Width: 100, Height: 80}},
		{"shrink", 2, Box{X: 2, Y: 2, Width: 96, Height: 76}},
		{"grow", -1, Box{X: -1, Y: -1, Width: 102, Height: 82}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Box{Width: 100, Height: 80}.Inset(tt.n)
			if got != tt.want {
				t.Errorf("Inset(%d) = %+v, want %+v", tt.n, got, tt.want)
			}
		})
	}
}

func TestBoxIntersects(t *testing.T) {
	a := Box{X: 0, Y: 0, Width: 100, Height: 100}

	tests := []struct {
		name string
		b    Box
		want bool
	}{
		{"overlapping", Box{X: 50, Y: 50, Width: 100, Height: 100}, true},
		{"touching right edge", Box{X: 100, Y: 0, Width: 10, Height: 10}, false},
		{"touching bottom edge", Box{X: 0, Y: 100, Width: 10, Height: 10}, false},
		{"contained", Box{X: 10, Y: 10, Width: 5, Height: 5}, true},
		{"empty", Box{X: 10, Y: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects(%+v) = %v, want %v", tt.b, got, tt.want)
			}
			if got := tt.b.Intersects(a); got != tt.want {
				t.Errorf("Intersects should be symmetric for %+v", tt.b)
			}
		})
	}
}

func TestBoxContains(t *testing.T) {
	b := Box{X: 10, Y: 10, Width: 10, Height: 10}
	if !b.Contains(10, 10) {
		t.Error("top-left pixel should be inside")
	}
	if !b.Contains(19, 19) {
		t.Error("bottom-right pixel should be inside")
	}
	if b.Contains(20, 15) {
		t.Error("x == Right() should be outside")
	}
}

func TestMargins(t *testing.T) {
	m := Margins{Top: 24, Bottom: 4, Left: 8, Right: 2}
	if m.Horizontal() != 10 {
		t.Errorf("Horizontal() = %d, want 10", m.Horizontal())
	}
	if m.Vertical() != 28 {
		t.Errorf("Vertical() = %d, want 28", m.Vertical())
	}
}

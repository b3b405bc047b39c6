package geom

import "testing"

func TestRect_Encapsulate(t *testing.T) {
	r := RectAt(V2(2, 3))
	if r.HasArea() {
		t.Fatal("zero-size rect must not have area")
	}

	r = r.Encapsulate(V2(5, 1))
	r = r.Encapsulate(V2(-1, 4))

	want := Rect{Min: V2(-1, 1), Max: V2(5, 4)}
	if r != want {
		t.Errorf("Encapsulate = %+v, want %+v", r, want)
	}
	if r.Width() != 6 || r.Height() != 3 {
		t.Errorf("size = %vx%v, want 6x3", r.Width(), r.Height())
	}
}

func TestRect_HasArea(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"zero", Rect{}, false},
		{"flat", Rect{Min: V2(0, 0), Max: V2(10, 0)}, false},
		{"thin", Rect{Min: V2(0, 0), Max: V2(0, 10)}, false},
		{"box", Rect{Min: V2(0, 0), Max: V2(1, 1)}, true},
		{"inverted", Rect{Min: V2(1, 1), Max: V2(0, 0)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.HasArea(); got != tt.want {
				t.Errorf("HasArea() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{Min: V2(0, 0), Max: V2(10, 5)}

	tests := []struct {
		p    Vec2
		want bool
	}{
		{V2(0, 0), true},
		{V2(5, 2), true},
		{V2(9.99, 4.99), true},
		{V2(10, 2), false},
		{V2(5, 5), false},
		{V2(-0.01, 2), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestRect_Center(t *testing.T) {
	r := Rect{Min: V2(2, 4), Max: V2(6, 10)}
	if c := r.Center(); c != V2(4, 7) {
		t.Errorf("Center() = %v, want (4,7)", c)
	}
}

func TestBounds(t *testing.T) {
	if got := Bounds(); got != (Rect{}) {
		t.Errorf("Bounds() = %v, want zero", got)
	}
	got := Bounds(V2(1, 1), V2(3, 0), V2(2, 5))
	want := Rect{Min: V2(1, 0), Max: V2(3, 5)}
	if got != want {
		t.Errorf("Bounds = %v, want %v", got, want)
	}
}

func TestVec2_Round(t *testing.T) {
	if got := V2(1.4, -2.6).Round(); got != V2(1, -3) {
		t.Errorf("Round() = %v, want (1,-3)", got)
	}
}

package renderstate

import "testing"

func TestNewLayer(t *testing.T) {
	l := NewLayer(10, 20, 110, 70)

	if got, want := l.Bounds, RectLTRB(10, 20, 110, 70); got != want {
		t.Errorf("Bounds = %v, want %v", got, want)
	}
	if l.Alpha != 1.0 {
		t.Errorf("Alpha = %v, want 1.0", l.Alpha)
	}
	if l.Width() != 100 || l.Height() != 50 {
		t.Errorf("Width(), Height() = %v, %v, want 100, 50", l.Width(), l.Height())
	}
	if l.Texture != nil {
		t.Error("Texture != nil on a fresh layer")
	}
}

func TestLayerSetAlpha(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.5, 0.5},
		{0, 0},
		{1, 1},
		{1.5, 1},
		{-0.25, 0},
	}
	for _, tt := range tests {
		l := NewLayer(0, 0, 10, 10)
		l.SetAlpha(tt.in)
		if l.Alpha != tt.want {
			t.Errorf("SetAlpha(%v): Alpha = %v, want %v", tt.in, l.Alpha, tt.want)
		}
	}
}

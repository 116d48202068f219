package renderstate

import (
	"math"
	"testing"
)

func TestLoadTranslate(t *testing.T) {
	var tr Transform
	tr.LoadTranslate(10, -20, 5)

	x, y := tr.TransformPoint(1, 2)
	if x != 11 || y != -18 {
		t.Errorf("TransformPoint(1, 2) = (%v, %v), want (11, -18)", x, y)
	}
	if tr.TZ != 5 {
		t.Errorf("TZ = %v, want 5", tr.TZ)
	}
	if !tr.IsTranslation() {
		t.Error("IsTranslation() = false, want true")
	}
}

func TestLoadInverse(t *testing.T) {
	tests := []struct {
		name string
		src  Transform
	}{
		{"identity", IdentityTransform()},
		{"translation", Transform{A: 1, C: 10, E: 1, F: 20}},
		{"scale", Transform{A: 2, E: 4}},
		{"rotation", Transform{
			A: math.Cos(math.Pi / 3), B: -math.Sin(math.Pi / 3),
			D: math.Sin(math.Pi / 3), E: math.Cos(math.Pi / 3),
		}},
		{"translate with z", Transform{A: 1, C: 5, E: 1, F: 7, TZ: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var inv Transform
			inv.LoadInverse(tt.src)

			// src * inv must be identity.
			got := tt.src.Multiply(inv)
			const eps = 1e-9
			if math.Abs(got.A-1) > eps || math.Abs(got.B) > eps || math.Abs(got.C) > eps ||
				math.Abs(got.D) > eps || math.Abs(got.E-1) > eps || math.Abs(got.F) > eps ||
				math.Abs(got.TZ) > eps {
				t.Errorf("src * inverse = %+v, want identity", got)
			}
		})
	}
}

func TestLoadInverseSingular(t *testing.T) {
	var inv Transform
	inv.LoadInverse(Transform{})

	if !inv.IsIdentity() {
		t.Errorf("LoadInverse(singular) = %+v, want identity", inv)
	}
}

func TestMapRect(t *testing.T) {
	tests := []struct {
		name string
		tr   Transform
		r    Rect
		want Rect
	}{
		{
			name: "identity",
			tr:   IdentityTransform(),
			r:    RectLTRB(5, 5, 15, 15),
			want: RectLTRB(5, 5, 15, 15),
		},
		{
			name: "translation",
			tr:   Transform{A: 1, C: 10, E: 1, F: -5},
			r:    RectLTRB(0, 0, 10, 10),
			want: RectLTRB(10, -5, 20, 5),
		},
		{
			name: "scale",
			tr:   Transform{A: 2, E: 3},
			r:    RectLTRB(1, 1, 2, 2),
			want: RectLTRB(2, 3, 4, 6),
		},
		{
			name: "90 degree rotation keeps bounding box",
			tr:   Transform{B: -1, D: 1},
			r:    RectLTRB(0, 0, 10, 20),
			want: RectLTRB(-20, 0, 0, 10),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.r
			tt.tr.MapRect(&r)
			if r != tt.want {
				t.Errorf("MapRect(%v) = %v, want %v", tt.r, r, tt.want)
			}
		})
	}
}

func TestLoadAndLoadIdentity(t *testing.T) {
	src := Transform{A: 2, B: 1, C: 3, D: 4, E: 5, F: 6, TZ: 7}

	var dst Transform
	dst.Load(src)
	if dst != src {
		t.Errorf("Load() = %+v, want %+v", dst, src)
	}

	dst.LoadIdentity()
	if !dst.IsIdentity() {
		t.Errorf("LoadIdentity() = %+v, want identity", dst)
	}
}

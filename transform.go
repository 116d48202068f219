package renderstate

import "math"

// Transform is the coordinate mapping active at a save level.
// It is a 2D affine matrix in row-major order:
//
//	| A  B  C |
//	| D  E  F |
//
// representing
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// A translation along z is carried in TZ for layer setups that need it;
// the 2D mapping operations ignore it.
type Transform struct {
	A, B, C float64
	D, E, F float64
	TZ      float64
}

// IdentityTransform returns the identity mapping.
func IdentityTransform() Transform {
	return Transform{A: 1, E: 1}
}

// Load copies src into t.
func (t *Transform) Load(src Transform) {
	*t = src
}

// LoadIdentity resets t to the identity mapping.
func (t *Transform) LoadIdentity() {
	*t = IdentityTransform()
}

// LoadTranslate resets t to a pure translation by (x, y, z).
func (t *Transform) LoadTranslate(x, y, z float64) {
	*t = Transform{A: 1, C: x, E: 1, F: y, TZ: z}
}

// LoadInverse loads the inverse of src into t.
// If src is not invertible, t is loaded with the identity.
func (t *Transform) LoadInverse(src Transform) {
	det := src.A*src.E - src.B*src.D
	if math.Abs(det) < 1e-10 {
		t.LoadIdentity()
		return
	}

	invDet := 1.0 / det
	*t = Transform{
		A:  src.E * invDet,
		B:  -src.B * invDet,
		C:  (src.B*src.F - src.C*src.E) * invDet,
		D:  -src.D * invDet,
		E:  src.A * invDet,
		F:  (src.C*src.D - src.A*src.F) * invDet,
		TZ: -src.TZ,
	}
}

// Multiply returns the composition t * other.
func (t Transform) Multiply(other Transform) Transform {
	return Transform{
		A:  t.A*other.A + t.B*other.D,
		B:  t.A*other.B + t.B*other.E,
		C:  t.A*other.C + t.B*other.F + t.C,
		D:  t.D*other.A + t.E*other.D,
		E:  t.D*other.B + t.E*other.E,
		F:  t.D*other.C + t.E*other.F + t.F,
		TZ: t.TZ + other.TZ,
	}
}

// TransformPoint applies the mapping to a point.
func (t Transform) TransformPoint(x, y float64) (float64, float64) {
	return t.A*x + t.B*y + t.C, t.D*x + t.E*y + t.F
}

// MapRect replaces r with the axis-aligned bounding box of the
// transformed corners of r.
func (t Transform) MapRect(r *Rect) {
	x0, y0 := t.TransformPoint(r.Left, r.Top)
	x1, y1 := t.TransformPoint(r.Right, r.Top)
	x2, y2 := t.TransformPoint(r.Left, r.Bottom)
	x3, y3 := t.TransformPoint(r.Right, r.Bottom)

	r.Set(
		math.Min(math.Min(x0, x1), math.Min(x2, x3)),
		math.Min(math.Min(y0, y1), math.Min(y2, y3)),
		math.Max(math.Max(x0, x1), math.Max(x2, x3)),
		math.Max(math.Max(y0, y1), math.Max(y2, y3)),
	)
}

// IsIdentity returns true if t is the identity mapping.
func (t Transform) IsIdentity() bool {
	return t.A == 1 && t.B == 0 && t.C == 0 &&
		t.D == 0 && t.E == 1 && t.F == 0 && t.TZ == 0
}

// IsTranslation returns true if t only translates.
func (t Transform) IsTranslation() bool {
	return t.A == 1 && t.B == 0 && t.D == 0 && t.E == 1
}

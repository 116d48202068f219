package renderstate

import "math"

// Rect is an axis-aligned rectangle in device space, stored in edge form.
// A Rect is empty when Left >= Right or Top >= Bottom. Coordinates are
// not validated; malformed input flows through unchanged.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectLTRB creates a Rect from its four edges.
func RectLTRB(left, top, right, bottom float64) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Set replaces all four edges.
func (r *Rect) Set(left, top, right, bottom float64) {
	r.Left = left
	r.Top = top
	r.Right = right
	r.Bottom = bottom
}

// SetRect copies the edges of another rectangle.
func (r *Rect) SetRect(o Rect) {
	*r = o
}

// SetEmpty collapses the rectangle to the zero rectangle.
func (r *Rect) SetEmpty() {
	*r = Rect{}
}

// IsEmpty returns true if the rectangle encloses no area.
func (r Rect) IsEmpty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Contains returns true if o lies entirely inside r.
func (r Rect) Contains(o Rect) bool {
	return o.Left >= r.Left && o.Top >= r.Top &&
		o.Right <= r.Right && o.Bottom <= r.Bottom
}

// Intersects returns true if r and o overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.Left < o.Right && o.Left < r.Right &&
		r.Top < o.Bottom && o.Top < r.Bottom
}

// Intersect replaces r with the intersection of r and o.
// If the rectangles do not overlap, r is left unchanged and
// Intersect returns false.
func (r *Rect) Intersect(o Rect) bool {
	left := math.Max(r.Left, o.Left)
	top := math.Max(r.Top, o.Top)
	right := math.Min(r.Right, o.Right)
	bottom := math.Min(r.Bottom, o.Bottom)

	if left >= right || top >= bottom {
		return false
	}

	r.Set(left, top, right, bottom)
	return true
}

// UnionWith expands r to the bounding union of r and o.
// Empty operands are ignored. Returns true if r changed.
func (r *Rect) UnionWith(o Rect) bool {
	if o.IsEmpty() {
		return false
	}
	if r.IsEmpty() {
		*r = o
		return true
	}

	changed := false
	if o.Left < r.Left {
		r.Left = o.Left
		changed = true
	}
	if o.Top < r.Top {
		r.Top = o.Top
		changed = true
	}
	if o.Right > r.Right {
		r.Right = o.Right
		changed = true
	}
	if o.Bottom > r.Bottom {
		r.Bottom = o.Bottom
		changed = true
	}
	return changed
}

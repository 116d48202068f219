// Package region implements boolean algebra on axis-aligned regions.
//
// A Region is stored as a list of non-overlapping horizontal bands in
// ascending y order. Each band holds a sorted list of disjoint x spans.
// Adjacent bands with identical spans are merged, so a region that is
// exactly rectangular always normalizes to a single band with a single
// span.
package region

import "sort"

// span is a half-open horizontal interval [left, right).
type span struct {
	left, right float64
}

// band is a horizontal slab [top, bottom) covered by a set of spans.
type band struct {
	top, bottom float64
	spans       []span
}

// Region is a set of points in the plane, closed under the boolean
// operations Or, And, Xor and Subtract with rectangle operands.
// The zero value is an empty region ready to use.
type Region struct {
	bands []band
}

// SetRect replaces the region with a single rectangle.
// An empty rectangle clears the region.
func (rg *Region) SetRect(left, top, right, bottom float64) {
	if left >= right || top >= bottom {
		rg.bands = nil
		return
	}
	rg.bands = []band{{
		top:    top,
		bottom: bottom,
		spans:  []span{{left: left, right: right}},
	}}
}

// Or adds the rectangle's area to the region.
func (rg *Region) Or(left, top, right, bottom float64) {
	if left >= right || top >= bottom {
		return
	}
	rg.combine(left, top, right, bottom, func(a, b bool) bool { return a || b })
}

// And restricts the region to its overlap with the rectangle.
func (rg *Region) And(left, top, right, bottom float64) {
	if left >= right || top >= bottom {
		rg.bands = nil
		return
	}
	rg.combine(left, top, right, bottom, func(a, b bool) bool { return a && b })
}

// Xor keeps the area covered by exactly one of region and rectangle.
func (rg *Region) Xor(left, top, right, bottom float64) {
	if left >= right || top >= bottom {
		return
	}
	rg.combine(left, top, right, bottom, func(a, b bool) bool { return a != b })
}

// Subtract removes the rectangle's area from the region.
func (rg *Region) Subtract(left, top, right, bottom float64) {
	if left >= right || top >= bottom {
		return
	}
	rg.combine(left, top, right, bottom, func(a, b bool) bool { return a && !b })
}

// Bounds returns the bounding box edges, all zeros when empty.
func (rg *Region) Bounds() (left, top, right, bottom float64) {
	if len(rg.bands) == 0 {
		return 0, 0, 0, 0
	}

	top = rg.bands[0].top
	bottom = rg.bands[len(rg.bands)-1].bottom
	first := rg.bands[0].spans
	left = first[0].left
	right = first[len(first)-1].right
	for _, bd := range rg.bands[1:] {
		if l := bd.spans[0].left; l < left {
			left = l
		}
		if r := bd.spans[len(bd.spans)-1].right; r > right {
			right = r
		}
	}
	return left, top, right, bottom
}

// IsRect returns true if the region is exactly its bounding box.
// Normalization merges bands, so a rectangular region is always a
// single band with a single span.
func (rg *Region) IsRect() bool {
	return len(rg.bands) == 1 && len(rg.bands[0].spans) == 1
}

// IsEmpty returns true if the region covers no area.
func (rg *Region) IsEmpty() bool {
	return len(rg.bands) == 0
}

// Clear empties the region.
func (rg *Region) Clear() {
	rg.bands = nil
}

// Clone returns an independent deep copy of the region.
func (rg *Region) Clone() Region {
	out := Region{bands: make([]band, len(rg.bands))}
	for i, bd := range rg.bands {
		out.bands[i] = band{
			top:    bd.top,
			bottom: bd.bottom,
			spans:  append([]span(nil), bd.spans...),
		}
	}
	return out
}

// combine rebuilds the region as op(region, rect). The plane is cut into
// horizontal slabs at every band edge and rectangle edge; within a slab
// membership is constant in y, so the problem reduces to combining two
// 1D span lists per slab.
func (rg *Region) combine(left, top, right, bottom float64, op func(a, b bool) bool) {
	ys := make([]float64, 0, 2*len(rg.bands)+2)
	for _, bd := range rg.bands {
		ys = append(ys, bd.top, bd.bottom)
	}
	ys = append(ys, top, bottom)
	sort.Float64s(ys)
	ys = dedupe(ys)

	rect := []span{{left: left, right: right}}

	var out []band
	for i := 0; i+1 < len(ys); i++ {
		y0, y1 := ys[i], ys[i+1]
		if y0 >= y1 {
			continue
		}

		a := rg.spansAt(y0)
		var b []span
		if top <= y0 && y1 <= bottom {
			b = rect
		}

		spans := combineSpans(a, b, op)
		if len(spans) > 0 {
			out = appendBand(out, band{top: y0, bottom: y1, spans: spans})
		}
	}
	rg.bands = out
}

// spansAt returns the span list of the band containing y, or nil.
// Callers only pass y values that are slab tops, so a band either
// contains the whole slab or none of it.
func (rg *Region) spansAt(y float64) []span {
	for _, bd := range rg.bands {
		if bd.top <= y && y < bd.bottom {
			return bd.spans
		}
		if bd.top > y {
			break
		}
	}
	return nil
}

// combineSpans merges two sorted span lists with a pointwise boolean
// operator, sweeping over the union of their x breakpoints.
func combineSpans(a, b []span, op func(a, b bool) bool) []span {
	xs := make([]float64, 0, 2*(len(a)+len(b)))
	for _, s := range a {
		xs = append(xs, s.left, s.right)
	}
	for _, s := range b {
		xs = append(xs, s.left, s.right)
	}
	if len(xs) == 0 {
		return nil
	}
	sort.Float64s(xs)
	xs = dedupe(xs)

	var out []span
	for i := 0; i+1 < len(xs); i++ {
		x0, x1 := xs[i], xs[i+1]
		if x0 >= x1 {
			continue
		}
		if op(covers(a, x0), covers(b, x0)) {
			out = appendSpan(out, span{left: x0, right: x1})
		}
	}
	return out
}

// covers returns true if any span in the sorted list contains x.
func covers(spans []span, x float64) bool {
	for _, s := range spans {
		if s.left <= x && x < s.right {
			return true
		}
		if s.left > x {
			break
		}
	}
	return false
}

// appendSpan appends s, coalescing with the previous span when they touch.
func appendSpan(out []span, s span) []span {
	if n := len(out); n > 0 && out[n-1].right == s.left {
		out[n-1].right = s.right
		return out
	}
	return append(out, s)
}

// appendBand appends bd, coalescing with the previous band when the two
// are vertically adjacent and cover identical spans.
func appendBand(out []band, bd band) []band {
	if n := len(out); n > 0 && out[n-1].bottom == bd.top && equalSpans(out[n-1].spans, bd.spans) {
		out[n-1].bottom = bd.bottom
		return out
	}
	return append(out, bd)
}

func equalSpans(a, b []span) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func dedupe(xs []float64) []float64 {
	out := xs[:0]
	for i, x := range xs {
		if i == 0 || x != out[len(out)-1] {
			out = append(out, x)
		}
	}
	return out
}

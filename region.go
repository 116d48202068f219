package renderstate

import "github.com/gogpu/renderstate/internal/region"

// Region is the arbitrary-shape clip collaborator. A snapshot keeps the
// clip as a plain rectangle for as long as the composed clip is exactly
// rectangular, and spills into a Region only when a boolean clip
// operation produces a shape a single rectangle cannot express.
//
// All mutating operations take an axis-aligned rectangle operand in
// device space and modify the region in place.
type Region interface {
	// SetRect replaces the region with a single rectangle.
	SetRect(left, top, right, bottom float64)

	// Or adds the rectangle's area to the region.
	Or(left, top, right, bottom float64)

	// And restricts the region to its overlap with the rectangle.
	And(left, top, right, bottom float64)

	// Xor keeps the area covered by exactly one of region and rectangle.
	Xor(left, top, right, bottom float64)

	// Subtract removes the rectangle's area from the region.
	Subtract(left, top, right, bottom float64)

	// Bounds returns the region's bounding box edges.
	// All zeros when the region is empty.
	Bounds() (left, top, right, bottom float64)

	// IsRect returns true if the region is exactly its bounding box.
	IsRect() bool

	// IsEmpty returns true if the region covers no area.
	IsEmpty() bool

	// Clear empties the region.
	Clear()

	// Clone returns an independent copy of the region.
	Clone() Region
}

// RegionFactory produces empty regions for snapshots that need to spill
// out of the rectangle representation. A nil factory selects the
// rectangle-only clip engine: region-dependent clip operations report
// "did not clip" and clipping runs at rectangle precision.
type RegionFactory func() Region

// SpanRegion returns a RegionFactory backed by the built-in span-band
// region engine.
func SpanRegion() RegionFactory {
	return func() Region { return &spanRegion{} }
}

// spanRegion adapts the internal engine to the Region interface.
type spanRegion struct {
	rgn region.Region
}

func (s *spanRegion) SetRect(l, t, r, b float64) { s.rgn.SetRect(l, t, r, b) }
func (s *spanRegion) Or(l, t, r, b float64)      { s.rgn.Or(l, t, r, b) }
func (s *spanRegion) And(l, t, r, b float64)     { s.rgn.And(l, t, r, b) }
func (s *spanRegion) Xor(l, t, r, b float64)     { s.rgn.Xor(l, t, r, b) }
func (s *spanRegion) Subtract(l, t, r, b float64) {
	s.rgn.Subtract(l, t, r, b)
}
func (s *spanRegion) Bounds() (float64, float64, float64, float64) {
	return s.rgn.Bounds()
}
func (s *spanRegion) IsRect() bool  { return s.rgn.IsRect() }
func (s *spanRegion) IsEmpty() bool { return s.rgn.IsEmpty() }
func (s *spanRegion) Clear()        { s.rgn.Clear() }
func (s *spanRegion) Clone() Region {
	return &spanRegion{rgn: s.rgn.Clone()}
}

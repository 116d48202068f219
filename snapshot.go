package renderstate

// SaveFlags select what a child snapshot isolates from its parent at
// save time. Whatever is not isolated is shared by reference: mutations
// write through to the parent's storage and survive the restore.
type SaveFlags uint32

const (
	// SaveTransform materializes a private copy of the parent's
	// transform into the child, so transform mutations at this save
	// level are undone by restore.
	SaveTransform SaveFlags = 1 << iota

	// SaveClip materializes a private copy of the parent's clip
	// rectangle (and clip region, when one is active) into the child.
	SaveClip

	// SaveAll isolates both the transform and the clip.
	SaveAll = SaveTransform | SaveClip
)

// Flags describe properties of a snapshot.
type Flags uint32

const (
	// FlagClipSet records that a clip has been explicitly applied at
	// this save level.
	FlagClipSet Flags = 1 << iota

	// FlagIsLayer marks a save level that draws into an offscreen layer.
	FlagIsLayer

	// FlagFBOTarget marks a save level that targets an offscreen
	// framebuffer. Propagated to every descendant snapshot.
	FlagFBOTarget
)

// ClipOp selects the boolean operator applied by Clip and
// ClipTransformed.
type ClipOp int

const (
	// ClipIntersect restricts the clip to its overlap with the rectangle.
	ClipIntersect ClipOp = iota

	// ClipUnion extends the clip by the rectangle.
	ClipUnion

	// ClipDifference removes the rectangle from the clip.
	ClipDifference

	// ClipXor keeps the area covered by exactly one of clip and rectangle.
	ClipXor

	// ClipReplace discards the current clip and replaces it with the
	// rectangle.
	ClipReplace

	// ClipReverseDifference would keep the rectangle minus the clip.
	// It is not implemented: the operator is a no-op that reports
	// "did not clip".
	ClipReverseDifference
)

// String returns the operator name.
func (op ClipOp) String() string {
	switch op {
	case ClipIntersect:
		return "Intersect"
	case ClipUnion:
		return "Union"
	case ClipDifference:
		return "Difference"
	case ClipXor:
		return "Xor"
	case ClipReplace:
		return "Replace"
	case ClipReverseDifference:
		return "ReverseDifference"
	default:
		return "Unknown"
	}
}

// Snapshot is one save level of a rendering context: the transform,
// clip and target bookkeeping drawing primitives must respect until the
// level is restored.
//
// A snapshot created by NewSnapshotOf shares its parent's transform and
// clip storage by reference unless the save flags isolate them. Saving
// is creating a child; restoring is dropping the child and resuming at
// Previous(). The enclosing rendering context owns the "current"
// snapshot pointer; a snapshot kept alive by a deferred consumer (for
// example a layer composite) stays valid after the stack has moved past
// it.
//
// A Snapshot is confined to the single goroutine driving its rendering
// context.
type Snapshot struct {
	previous *Snapshot
	flags    Flags

	// transform points either at this snapshot's own storage or at an
	// ancestor's. transformRoot is the embedded storage it is rebound
	// to when the snapshot materializes a private transform.
	transform     *Transform
	transformRoot Transform

	// clipRect follows the same owned-or-borrowed scheme.
	clipRect     *Rect
	clipRectRoot Rect

	// clipRegion is non-nil only while the accumulated clip cannot be
	// expressed as a single rectangle.
	clipRegion Region

	regionFactory RegionFactory

	layer *Layer
	fbo   uint32

	// region is the target's region of interest, shared down the chain
	// of snapshots drawing into the same offscreen framebuffer.
	region Region

	invisible bool
	empty     bool

	viewport Rect
	height   float64
	alpha    float64
}

// NewSnapshot creates a bottom-of-stack snapshot: no parent, no layer,
// identity transform, zero clip, full opacity. Its transform and clip
// point at its own embedded storage.
func NewSnapshot(opts ...Option) *Snapshot {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Snapshot{
		alpha:         1.0,
		regionFactory: cfg.regionFactory,
		viewport:      cfg.viewport,
		height:        cfg.height,
	}
	s.transform = &s.transformRoot
	s.transform.LoadIdentity()
	s.clipRect = &s.clipRectRoot
	if !cfg.viewport.IsEmpty() {
		s.clipRect.SetRect(cfg.viewport)
	}
	return s
}

// NewSnapshotOf creates a child snapshot of parent. Scalar state (fbo,
// visibility, viewport, surface height, alpha) is copied by value;
// transform and clip are shared by reference unless saveFlags isolate
// them. The child holds a strong reference to parent for its lifetime.
func NewSnapshotOf(parent *Snapshot, saveFlags SaveFlags) *Snapshot {
	s := &Snapshot{
		previous:      parent,
		fbo:           parent.fbo,
		invisible:     parent.invisible,
		empty:         parent.empty,
		viewport:      parent.viewport,
		height:        parent.height,
		alpha:         parent.alpha,
		regionFactory: parent.regionFactory,
	}

	if saveFlags&SaveTransform != 0 {
		s.transformRoot.Load(*parent.transform)
		s.transform = &s.transformRoot
	} else {
		s.transform = parent.transform
	}

	if saveFlags&SaveClip != 0 {
		s.clipRectRoot.SetRect(*parent.clipRect)
		s.clipRect = &s.clipRectRoot
		if parent.clipRegion != nil && s.regionFactory != nil {
			s.clipRegion = parent.clipRegion.Clone()
		} else {
			s.clipRegion = parent.clipRegion
		}
	} else {
		s.clipRect = parent.clipRect
		s.clipRegion = parent.clipRegion
	}

	if parent.flags&FlagFBOTarget != 0 {
		s.flags |= FlagFBOTarget
		s.region = parent.region
	}

	return s
}

// Clip maps the rectangle through the current transform and applies the
// boolean clip operator in device space. Returns true if the operation
// modified the clip state.
func (s *Snapshot) Clip(left, top, right, bottom float64, op ClipOp) bool {
	r := RectLTRB(left, top, right, bottom)
	s.transform.MapRect(&r)
	return s.ClipTransformed(r, op)
}

// ClipTransformed applies the boolean clip operator with a rectangle
// already in device space.
//
// Intersect and Union run on the rectangle alone while the clip is
// rectangular. Difference and Xor always force the clip into its region
// representation first; without a region engine they report false and
// leave the clip unchanged. Replace resets the clip unconditionally.
func (s *Snapshot) ClipTransformed(r Rect, op ClipOp) bool {
	clipped := false

	switch op {
	case ClipDifference:
		s.ensureClipRegion()
		clipped = s.clipRegionSubtract(r)
	case ClipIntersect:
		if s.clipRegion != nil {
			clipped = s.clipRegionOr(r)
		} else {
			clipped = s.clipRect.Intersect(r)
			if !clipped {
				s.clipRect.SetEmpty()
				clipped = true
			}
		}
	case ClipUnion:
		if s.clipRegion != nil {
			clipped = s.clipRegionAnd(r)
		} else {
			clipped = s.clipRect.UnionWith(r)
		}
	case ClipXor:
		s.ensureClipRegion()
		clipped = s.clipRegionXor(r)
	case ClipReverseDifference:
		// Not implemented. Leaves the clip untouched.
		Logger().Debug("renderstate: reverse-difference clip not implemented")
	case ClipReplace:
		s.SetClip(r.Left, r.Top, r.Right, r.Bottom)
		clipped = true
	}

	if clipped {
		s.flags |= FlagClipSet
	}

	return clipped
}

// ensureClipRegion materializes a clip region seeded with the current
// clip rectangle. Without a region factory the clip stays
// rectangle-only and region-dependent operators degrade to no-ops.
func (s *Snapshot) ensureClipRegion() {
	if s.clipRegion != nil || s.regionFactory == nil {
		return
	}
	rgn := s.regionFactory()
	rgn.SetRect(s.clipRect.Left, s.clipRect.Top, s.clipRect.Right, s.clipRect.Bottom)
	s.clipRegion = rgn
	Logger().Debug("renderstate: clip region materialized",
		"left", s.clipRect.Left, "top", s.clipRect.Top,
		"right", s.clipRect.Right, "bottom", s.clipRect.Bottom)
}

// syncClipFromRegion resynchronizes the rectangle form after a region
// mutation. An empty region collapses the clip rectangle and drops the
// region; a rectangular region is demoted back to the rectangle form.
func (s *Snapshot) syncClipFromRegion() {
	if s.clipRegion.IsEmpty() {
		s.clipRect.SetEmpty()
		s.clipRegion = nil
		return
	}

	left, top, right, bottom := s.clipRegion.Bounds()
	s.clipRect.Set(left, top, right, bottom)

	if s.clipRegion.IsRect() {
		s.clipRegion.Clear()
		s.clipRegion = nil
	}
}

func (s *Snapshot) clipRegionOr(r Rect) bool {
	if s.clipRegion == nil {
		return false
	}
	s.clipRegion.Or(r.Left, r.Top, r.Right, r.Bottom)
	s.syncClipFromRegion()
	return true
}

func (s *Snapshot) clipRegionAnd(r Rect) bool {
	if s.clipRegion == nil {
		return false
	}
	s.clipRegion.And(r.Left, r.Top, r.Right, r.Bottom)
	s.syncClipFromRegion()
	return true
}

func (s *Snapshot) clipRegionXor(r Rect) bool {
	if s.clipRegion == nil {
		return false
	}
	s.clipRegion.Xor(r.Left, r.Top, r.Right, r.Bottom)
	s.syncClipFromRegion()
	return true
}

func (s *Snapshot) clipRegionSubtract(r Rect) bool {
	if s.clipRegion == nil {
		return false
	}
	s.clipRegion.Subtract(r.Left, r.Top, r.Right, r.Bottom)
	s.syncClipFromRegion()
	return true
}

// SetClip resets the clip to exactly the given device-space rectangle,
// discarding any active clip region. The write goes through the current
// clip reference: a snapshot sharing its parent's clip mutates the
// parent's storage.
func (s *Snapshot) SetClip(left, top, right, bottom float64) {
	s.clipRect.Set(left, top, right, bottom)
	if s.clipRegion != nil {
		s.clipRegion.Clear()
		s.clipRegion = nil
	}
	s.flags |= FlagClipSet
}

// ResetClip rebinds the clip rectangle to this snapshot's own embedded
// storage, breaking any inherited aliasing, then applies SetClip.
func (s *Snapshot) ResetClip(left, top, right, bottom float64) {
	s.clipRect = &s.clipRectRoot
	s.SetClip(left, top, right, bottom)
}

// LocalClip returns the current device-space clip rectangle mapped back
// into local (pre-transform) coordinates through the inverse of the
// current transform. The result is only valid until the next transform
// or clip mutation.
func (s *Snapshot) LocalClip() Rect {
	var inverse Transform
	inverse.LoadInverse(*s.transform)

	local := *s.clipRect
	inverse.MapRect(&local)
	return local
}

// ResetTransform rebinds the transform to this snapshot's own embedded
// storage, breaking any inherited aliasing, and loads a pure
// translation by (x, y, z).
func (s *Snapshot) ResetTransform(x, y, z float64) {
	s.transform = &s.transformRoot
	s.transform.LoadTranslate(x, y, z)
}

// IsIgnored returns true if drawing at this save level should be
// skipped entirely, either because the level was marked invisible or
// because the clip was reduced to nothing.
func (s *Snapshot) IsIgnored() bool {
	return s.invisible || s.empty
}

// Previous returns the parent snapshot, nil at the bottom of the stack.
func (s *Snapshot) Previous() *Snapshot {
	return s.previous
}

// Flags returns the snapshot's property flags.
func (s *Snapshot) Flags() Flags {
	return s.flags
}

// Transform returns the active transform. The pointer refers to shared
// parent storage unless this snapshot was saved with SaveTransform or
// has called ResetTransform.
func (s *Snapshot) Transform() *Transform {
	return s.transform
}

// ClipRect returns the current device-space clip rectangle.
func (s *Snapshot) ClipRect() Rect {
	return *s.clipRect
}

// ClipRegion returns the active clip region, nil while the clip is
// exactly rectangular.
func (s *Snapshot) ClipRegion() Region {
	return s.clipRegion
}

// Alpha returns the opacity accumulated at this save level.
func (s *Snapshot) Alpha() float64 {
	return s.alpha
}

// SetAlpha sets the save level's opacity, clamped to [0, 1].
func (s *Snapshot) SetAlpha(alpha float64) {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	s.alpha = alpha
}

// Viewport returns the viewport rectangle.
func (s *Snapshot) Viewport() Rect {
	return s.viewport
}

// SetViewport sets the viewport rectangle.
func (s *Snapshot) SetViewport(left, top, right, bottom float64) {
	s.viewport.Set(left, top, right, bottom)
}

// SurfaceHeight returns the height of the surface this level renders to.
func (s *Snapshot) SurfaceHeight() float64 {
	return s.height
}

// SetSurfaceHeight records the height of the surface this level renders
// to, used to flip between device and framebuffer coordinates.
func (s *Snapshot) SetSurfaceHeight(height float64) {
	s.height = height
}

// FBO returns the framebuffer this level renders into, 0 for the
// default target.
func (s *Snapshot) FBO() uint32 {
	return s.fbo
}

// SetFBO records the framebuffer this level renders into.
func (s *Snapshot) SetFBO(fbo uint32) {
	s.fbo = fbo
}

// Layer returns the offscreen layer associated with this save level,
// nil for ordinary saves.
func (s *Snapshot) Layer() *Layer {
	return s.layer
}

// SetLayer attaches an offscreen layer to this save level.
func (s *Snapshot) SetLayer(layer *Layer) {
	s.layer = layer
	if layer != nil {
		s.flags |= FlagIsLayer
	}
}

// MarkFBOTarget flags this save level as targeting an offscreen
// framebuffer and installs the region of interest shared by its
// descendants.
func (s *Snapshot) MarkFBOTarget(regionOfInterest Region) {
	s.flags |= FlagFBOTarget
	s.region = regionOfInterest
}

// TargetRegion returns the offscreen target's region of interest, nil
// unless this level or an ancestor was marked as an FBO target.
func (s *Snapshot) TargetRegion() Region {
	return s.region
}

// Invisible returns true if drawing at this level is fully suppressed.
func (s *Snapshot) Invisible() bool {
	return s.invisible
}

// MarkInvisible suppresses all drawing at this save level and its
// descendants. Visibility is only ever narrowed; restore returns to the
// parent's value.
func (s *Snapshot) MarkInvisible() {
	s.invisible = true
}

// Empty returns true if the clip at this level was reduced to nothing.
func (s *Snapshot) Empty() bool {
	return s.empty
}

// MarkEmpty records that this save level's clip covers no area.
// Like MarkInvisible, the flag is only ever narrowed.
func (s *Snapshot) MarkEmpty() {
	s.empty = true
}

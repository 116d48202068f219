// Package renderstate provides the save/restore state stack for a 2D
// rendering context.
//
// # Overview
//
// A rendering context draws under a composed transform and a composed
// clip. renderstate tracks both as a chain of snapshots: saving pushes
// a snapshot that shares its parent's transform and clip by reference,
// mutation materializes private copies as requested by the save flags,
// and restoring resumes at the parent exactly.
//
// # Quick Start
//
//	import "github.com/gogpu/renderstate"
//
//	st := renderstate.NewStack(800, 600)
//
//	count := st.Save(renderstate.SaveAll)
//	st.Current().Clip(50, 50, 150, 150, renderstate.ClipIntersect)
//	// ... emit draw commands against st.Current() ...
//	st.RestoreToCount(count)
//
// # Clip composition
//
// Clips compose against axis-aligned rectangles with Intersect, Union,
// Difference, Xor and Replace. The clip is stored as a plain rectangle
// for as long as the composed result is exactly rectangular and spills
// into an arbitrary region only when it is not, dropping back to the
// rectangle the moment the region degenerates to one. Region support is
// optional: configure it with WithRegions or WithRegionFactory, or run
// at rectangle-only precision without it.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Stack, Snapshot, Rect, Transform, Region, Layer
//   - Internal: region (span-band boolean region algebra)
//   - render: layer and render-target collaborators for compositing
//
// # Coordinate System
//
// Clip state lives in device space: post-transform coordinates with the
// origin at the top-left, x increasing right and y increasing down.
// LocalClip maps the clip back into pre-transform coordinates.
package renderstate

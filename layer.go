package renderstate

import "github.com/gogpu/gpucontext"

// Layer is the offscreen render target bookkeeping attached to a save
// level for grouped or filtered drawing. The snapshot stack only tracks
// the association; allocation and compositing belong to the render
// package and the surrounding renderer.
//
// Fields are exported so the draw-command layer can consult them
// directly per primitive.
type Layer struct {
	// Bounds is the layer's extent in device space.
	Bounds Rect

	// Alpha is the opacity applied when the layer is composited,
	// in [0, 1].
	Alpha float64

	// FBO is the framebuffer object the layer renders into,
	// 0 for the default target.
	FBO uint32

	// Texture is the GPU texture backing the layer, nil for layers
	// that have not been realized on a device.
	Texture gpucontext.Texture

	// Region tracks the area of the layer actually drawn to, used to
	// limit compositing to the dirty part of the target.
	Region Region
}

// NewLayer creates a layer covering the given device-space bounds with
// full opacity.
func NewLayer(left, top, right, bottom float64) *Layer {
	return &Layer{
		Bounds: RectLTRB(left, top, right, bottom),
		Alpha:  1.0,
	}
}

// SetAlpha sets the compositing opacity, clamped to [0, 1].
func (l *Layer) SetAlpha(alpha float64) {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	l.Alpha = alpha
}

// Width returns the layer width in device units.
func (l *Layer) Width() float64 {
	return l.Bounds.Width()
}

// Height returns the layer height in device units.
func (l *Layer) Height() float64 {
	return l.Bounds.Height()
}

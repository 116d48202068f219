// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/renderstate"
)

// ErrNoLayer is returned by PopLayer when no layer is active.
var ErrNoLayer = errors.New("render: no layer to pop")

// layerEntry pairs a save level's layer bookkeeping with the pixmap
// its drawing goes to.
type layerEntry struct {
	state *renderstate.Layer
	img   *image.RGBA
}

// LayeredPixmapTarget is a CPU-backed target supporting the deferred
// layer compositing the snapshot stack's layer bookkeeping describes:
// each save level with a layer draws into its own pixmap, composited
// onto its parent with the layer's opacity when the level is restored.
type LayeredPixmapTarget struct {
	base    *image.RGBA
	entries []layerEntry
	width   int
	height  int
}

// NewLayeredPixmapTarget creates a layered CPU target of the given size.
func NewLayeredPixmapTarget(width, height int) *LayeredPixmapTarget {
	return &LayeredPixmapTarget{
		base:   image.NewRGBA(image.Rect(0, 0, width, height)),
		width:  width,
		height: height,
	}
}

// Width returns the target width in pixels.
func (t *LayeredPixmapTarget) Width() int {
	return t.width
}

// Height returns the target height in pixels.
func (t *LayeredPixmapTarget) Height() int {
	return t.height
}

// Format returns the pixel format (RGBA8).
func (t *LayeredPixmapTarget) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Pixels returns the base pixel data. Pop all layers first to read the
// composited result.
func (t *LayeredPixmapTarget) Pixels() []byte {
	return t.base.Pix
}

// Stride returns the number of bytes per row of the base.
func (t *LayeredPixmapTarget) Stride() int {
	return t.base.Stride
}

// Image returns the base image. Pop all layers first to read the
// composited result.
func (t *LayeredPixmapTarget) Image() *image.RGBA {
	return t.base
}

// Depth returns the number of layers currently pushed.
func (t *LayeredPixmapTarget) Depth() int {
	return len(t.entries)
}

// PushLayer allocates a pixmap for the given save-level layer and makes
// it the active drawing destination. The pixmap covers the layer's
// device-space bounds.
func (t *LayeredPixmapTarget) PushLayer(layer *renderstate.Layer) (*PixmapTarget, error) {
	w := int(math.Ceil(layer.Width()))
	h := int(math.Ceil(layer.Height()))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("render: layer has no area: %gx%g", layer.Width(), layer.Height())
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	t.entries = append(t.entries, layerEntry{state: layer, img: img})
	return &PixmapTarget{img: img}, nil
}

// PopLayer composites the most recently pushed layer onto its parent
// (the previous layer, or the base) at the layer's device-space bounds,
// applying the layer's opacity. Call it when the owning save level is
// restored.
func (t *LayeredPixmapTarget) PopLayer() error {
	n := len(t.entries)
	if n == 0 {
		return ErrNoLayer
	}

	entry := t.entries[n-1]
	t.entries = t.entries[:n-1]

	parent := t.base
	if len(t.entries) > 0 {
		parent = t.entries[len(t.entries)-1].img
	}

	t.composite(parent, entry)
	return nil
}

// composite blends a layer pixmap onto dst at the layer's bounds.
// The unscaled path uses a plain masked source-over draw; when the
// bounds and pixmap sizes disagree the layer is scaled through
// golang.org/x/image/draw.
func (t *LayeredPixmapTarget) composite(dst *image.RGBA, entry layerEntry) {
	b := entry.state.Bounds
	dr := image.Rect(
		int(math.Floor(b.Left)), int(math.Floor(b.Top)),
		int(math.Ceil(b.Right)), int(math.Ceil(b.Bottom)),
	)
	sr := entry.img.Bounds()

	alpha := alphaMask(entry.state.Alpha)

	if dr.Dx() == sr.Dx() && dr.Dy() == sr.Dy() {
		draw.DrawMask(dst, dr, entry.img, sr.Min, alpha, image.Point{}, draw.Over)
		return
	}

	xdraw.ApproxBiLinear.Scale(dst, dr, entry.img, sr, xdraw.Over, &xdraw.Options{
		SrcMask: alpha,
	})
}

// alphaMask returns a uniform mask for a layer opacity in [0, 1], or
// nil for full opacity.
func alphaMask(alpha float64) image.Image {
	if alpha >= 1 {
		return nil
	}
	if alpha < 0 {
		alpha = 0
	}
	return image.NewUniform(color.Alpha{A: uint8(alpha*255 + 0.5)})
}

// Clear fills the base with the given color. Pushed layers keep their
// content.
func (t *LayeredPixmapTarget) Clear(c color.Color) {
	draw.Draw(t.base, t.base.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

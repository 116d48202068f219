// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/renderstate"
)

// ErrNilDevice is returned by NewTextureTarget when no device handle is
// available.
var ErrNilDevice = errors.New("render: device handle is nil")

// Target is a destination layer pixels can be rendered into.
//
// Targets may be CPU-backed (PixmapTarget, LayeredPixmapTarget) or
// realized on a GPU device; CPU-only targets expose their pixels
// directly, GPU targets go through the device glue in device.go.
type Target interface {
	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// Format returns the pixel format of the target.
	Format() gputypes.TextureFormat

	// Pixels returns direct access to pixel data, nil for GPU-only
	// targets. For RGBA formats each pixel is 4 bytes: R, G, B, A.
	Pixels() []byte

	// Stride returns the number of bytes per row.
	Stride() int
}

// PixmapTarget is a CPU-backed target over an *image.RGBA.
type PixmapTarget struct {
	img *image.RGBA
}

// NewPixmapTarget creates a CPU-backed target of the given size.
func NewPixmapTarget(width, height int) *PixmapTarget {
	return &PixmapTarget{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Width returns the target width in pixels.
func (t *PixmapTarget) Width() int {
	return t.img.Bounds().Dx()
}

// Height returns the target height in pixels.
func (t *PixmapTarget) Height() int {
	return t.img.Bounds().Dy()
}

// Format returns the pixel format (RGBA8).
func (t *PixmapTarget) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Pixels returns direct access to the pixel data.
func (t *PixmapTarget) Pixels() []byte {
	return t.img.Pix
}

// Stride returns the number of bytes per row.
func (t *PixmapTarget) Stride() int {
	return t.img.Stride
}

// Image returns the underlying *image.RGBA, sharing memory with the
// target.
func (t *PixmapTarget) Image() *image.RGBA {
	return t.img
}

// Clear fills the target with the given color.
func (t *PixmapTarget) Clear(c color.Color) {
	draw.Draw(t.img, t.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// TextureTarget is a GPU-backed target for a save-level layer realized
// on a device. The snapshot stack records the layer; the target binds it
// to the host's device handle and resolves the texture format against
// the surface the host presents to.
type TextureTarget struct {
	handle DeviceHandle
	layer  *renderstate.Layer
	format gputypes.TextureFormat
}

// NewTextureTarget creates a GPU texture target for the given layer.
// An undefined format resolves to the handle's surface format, falling
// back to RGBA8 when the handle has no surface either.
func NewTextureTarget(handle DeviceHandle, layer *renderstate.Layer, format gputypes.TextureFormat) (*TextureTarget, error) {
	if handle == nil {
		return nil, ErrNilDevice
	}
	if format == gputypes.TextureFormatUndefined {
		format = handle.SurfaceFormat()
	}
	if format == gputypes.TextureFormatUndefined {
		format = gputypes.TextureFormatRGBA8Unorm
	}
	return &TextureTarget{
		handle: handle,
		layer:  layer,
		format: format,
	}, nil
}

// Width returns the target width in pixels.
func (t *TextureTarget) Width() int {
	return int(math.Ceil(t.layer.Width()))
}

// Height returns the target height in pixels.
func (t *TextureTarget) Height() int {
	return int(math.Ceil(t.layer.Height()))
}

// Format returns the resolved pixel format.
func (t *TextureTarget) Format() gputypes.TextureFormat {
	return t.format
}

// Pixels returns nil as this is a GPU-only target.
func (t *TextureTarget) Pixels() []byte {
	return nil
}

// Stride returns 0 as this is a GPU-only target.
func (t *TextureTarget) Stride() int {
	return 0
}

// Handle returns the device handle the target was created with.
func (t *TextureTarget) Handle() DeviceHandle {
	return t.handle
}

// Descriptor returns the texture descriptor for allocating the target's
// texture on the device.
func (t *TextureTarget) Descriptor() gputypes.TextureDescriptor {
	return TextureDescriptorFor(t.layer, t.format)
}

// Realize uploads pixels as the layer's GPU texture through the given
// creator. See RealizeLayer.
func (t *TextureTarget) Realize(creator gpucontext.TextureCreator, pixels []byte) error {
	return RealizeLayer(creator, t.layer, pixels)
}

// Texture returns the layer's realized GPU texture, nil before Realize.
func (t *TextureTarget) Texture() gpucontext.Texture {
	return t.layer.Texture
}

// Destroy releases the layer's GPU texture, if any.
func (t *TextureTarget) Destroy() {
	if t.layer.Texture == nil {
		return
	}
	if destroyer, ok := t.layer.Texture.(interface{ Destroy() }); ok {
		destroyer.Destroy()
	}
	t.layer.Texture = nil
}

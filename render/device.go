// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/renderstate"
)

// ErrNilCreator is returned by RealizeLayer when no texture creator is
// available.
var ErrNilCreator = errors.New("render: texture creator is nil")

// DeviceHandle provides GPU device access from the host application.
//
// The host (for example a gogpu.App) implements DeviceHandle and passes
// it to integrations that realize save-level layers on the GPU. The
// snapshot stack never creates a device of its own.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, providing a
// renderstate-specific name while staying compatible with the
// gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// NullDeviceHandle is a DeviceHandle with no device behind it, used for
// CPU-only compositing where no GPU is available.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// AdapterInfo returns unknown adapter metadata for the null device.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}

// TextureDescriptorFor builds the texture descriptor for realizing a
// save-level layer on a device: a 2D render-attachment texture sized to
// the layer's bounds.
func TextureDescriptorFor(layer *renderstate.Layer, format gputypes.TextureFormat) gputypes.TextureDescriptor {
	return gputypes.TextureDescriptor{
		Label: "renderstate-layer",
		Size: gputypes.Extent3D{
			Width:              uint32(math.Ceil(layer.Width())),
			Height:             uint32(math.Ceil(layer.Height())),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        format,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageTextureBinding,
	}
}

// RealizeLayer uploads a layer's pixels as a GPU texture and records
// the texture in the layer's bookkeeping. pixels must be RGBA data
// matching the layer's integer size.
func RealizeLayer(creator gpucontext.TextureCreator, layer *renderstate.Layer, pixels []byte) error {
	if creator == nil {
		return ErrNilCreator
	}

	w := int(math.Ceil(layer.Width()))
	h := int(math.Ceil(layer.Height()))

	tex, err := creator.NewTextureFromRGBA(w, h, pixels)
	if err != nil {
		return fmt.Errorf("render: NewTextureFromRGBA failed: %w", err)
	}

	gpuTex, ok := tex.(gpucontext.Texture)
	if !ok {
		renderstate.Logger().Warn("render: created texture does not implement gpucontext.Texture; layer stays unrealized")
		return fmt.Errorf("render: creator returned %T, not a gpucontext.Texture", tex)
	}

	layer.Texture = gpuTex
	return nil
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"image/color"
	"testing"

	"github.com/gogpu/renderstate"
)

func TestLayeredPixmapTargetBasics(t *testing.T) {
	target := NewLayeredPixmapTarget(32, 16)

	if target.Width() != 32 || target.Height() != 16 {
		t.Errorf("size = %dx%d, want 32x16", target.Width(), target.Height())
	}
	if target.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0", target.Depth())
	}
	if got, want := len(target.Pixels()), 32*16*4; got != want {
		t.Errorf("len(Pixels()) = %d, want %d", got, want)
	}
}

func TestPopLayerWithoutPush(t *testing.T) {
	target := NewLayeredPixmapTarget(8, 8)

	if err := target.PopLayer(); !errors.Is(err, ErrNoLayer) {
		t.Errorf("PopLayer() on empty target = %v, want %v", err, ErrNoLayer)
	}
}

func TestPushLayerZeroArea(t *testing.T) {
	target := NewLayeredPixmapTarget(8, 8)

	if _, err := target.PushLayer(renderstate.NewLayer(0, 0, 0, 10)); err == nil {
		t.Error("PushLayer() with zero-width layer = nil, want error")
	}
	if target.Depth() != 0 {
		t.Errorf("Depth() = %d after failed push, want 0", target.Depth())
	}
}

func TestPushPopComposites(t *testing.T) {
	target := NewLayeredPixmapTarget(16, 16)
	target.Clear(color.RGBA{A: 255}) // opaque black base

	layer := renderstate.NewLayer(4, 4, 12, 12)
	pixmap, err := target.PushLayer(layer)
	if err != nil {
		t.Fatalf("PushLayer() = %v", err)
	}
	if target.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1", target.Depth())
	}

	pixmap.Clear(color.RGBA{R: 255, A: 255})
	if err := target.PopLayer(); err != nil {
		t.Fatalf("PopLayer() = %v", err)
	}
	if target.Depth() != 0 {
		t.Errorf("Depth() = %d after pop, want 0", target.Depth())
	}

	img := target.Image()
	// Inside the layer bounds: red.
	if got := img.RGBAAt(8, 8); got.R != 255 || got.A != 255 {
		t.Errorf("pixel inside layer = %+v, want opaque red", got)
	}
	// Outside the layer bounds: untouched base.
	if got := img.RGBAAt(1, 1); got.R != 0 || got.A != 255 {
		t.Errorf("pixel outside layer = %+v, want opaque black", got)
	}
}

func TestPopLayerAppliesAlpha(t *testing.T) {
	target := NewLayeredPixmapTarget(8, 8)
	target.Clear(color.RGBA{A: 255})

	layer := renderstate.NewLayer(0, 0, 8, 8)
	layer.SetAlpha(0.5)

	pixmap, err := target.PushLayer(layer)
	if err != nil {
		t.Fatalf("PushLayer() = %v", err)
	}
	pixmap.Clear(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	if err := target.PopLayer(); err != nil {
		t.Fatalf("PopLayer() = %v", err)
	}

	// Half-opacity white over black lands near mid gray.
	got := target.Image().RGBAAt(4, 4)
	if got.R < 120 || got.R > 136 {
		t.Errorf("composited pixel R = %d, want ~128", got.R)
	}
	if got.A != 255 {
		t.Errorf("composited pixel A = %d, want 255", got.A)
	}
}

func TestNestedLayersCompositeInOrder(t *testing.T) {
	target := NewLayeredPixmapTarget(16, 16)
	target.Clear(color.RGBA{A: 255})

	outerPix, err := target.PushLayer(renderstate.NewLayer(0, 0, 16, 16))
	if err != nil {
		t.Fatalf("PushLayer(outer) = %v", err)
	}
	outerPix.Clear(color.RGBA{G: 255, A: 255})

	innerPix, err := target.PushLayer(renderstate.NewLayer(4, 4, 8, 8))
	if err != nil {
		t.Fatalf("PushLayer(inner) = %v", err)
	}
	innerPix.Clear(color.RGBA{R: 255, A: 255})

	// Inner pops onto the outer layer, not the base.
	if err := target.PopLayer(); err != nil {
		t.Fatalf("PopLayer(inner) = %v", err)
	}
	if got := target.Image().RGBAAt(5, 5); got.R != 0 {
		t.Error("inner layer reached the base before the outer layer was popped")
	}
	if got := outerPix.Image().RGBAAt(5, 5); got.R != 255 {
		t.Errorf("outer layer pixel = %+v, want red from inner composite", got)
	}

	if err := target.PopLayer(); err != nil {
		t.Fatalf("PopLayer(outer) = %v", err)
	}
	img := target.Image()
	if got := img.RGBAAt(5, 5); got.R != 255 {
		t.Errorf("base pixel in inner area = %+v, want red", got)
	}
	if got := img.RGBAAt(1, 1); got.G != 255 {
		t.Errorf("base pixel in outer area = %+v, want green", got)
	}
}

func TestPopLayerScalesMismatchedBounds(t *testing.T) {
	target := NewLayeredPixmapTarget(16, 16)
	target.Clear(color.RGBA{A: 255})

	// Pixmap is allocated at 8x8 but composited over 16x16 bounds.
	layer := renderstate.NewLayer(0, 0, 8, 8)
	pixmap, err := target.PushLayer(layer)
	if err != nil {
		t.Fatalf("PushLayer() = %v", err)
	}
	pixmap.Clear(color.RGBA{B: 255, A: 255})
	layer.Bounds = renderstate.RectLTRB(0, 0, 16, 16)

	if err := target.PopLayer(); err != nil {
		t.Fatalf("PopLayer() = %v", err)
	}

	// The scaled layer covers the whole base.
	for _, p := range [][2]int{{0, 0}, {8, 8}, {15, 15}} {
		if got := target.Image().RGBAAt(p[0], p[1]); got.B != 255 {
			t.Errorf("pixel (%d, %d) = %+v, want blue", p[0], p[1], got)
		}
	}
}

func TestAlphaMask(t *testing.T) {
	if alphaMask(1) != nil {
		t.Error("alphaMask(1) != nil, want nil for full opacity")
	}
	if alphaMask(1.5) != nil {
		t.Error("alphaMask(1.5) != nil, want nil")
	}
	if alphaMask(0.5) == nil {
		t.Error("alphaMask(0.5) = nil, want uniform mask")
	}
}

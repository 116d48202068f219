// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render provides the layer and render-target collaborators the
// snapshot stack's layer bookkeeping points at.
//
// The snapshot stack (package renderstate) only records which offscreen
// layer a save level draws into. This package supplies the targets
// behind that record: a CPU-backed layered pixmap target that
// composites save-level layers with their opacity, and the device glue
// for realizing layers as GPU textures through gpucontext.
//
// renderstate receives devices from the host application; it does not
// create them. Hosts implement DeviceHandle (gpucontext.DeviceProvider)
// and pass it in, keeping GPU resources shared across the stack.
package render

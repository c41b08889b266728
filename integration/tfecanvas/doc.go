// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package tfecanvas provides seamless integration between tfe transfer
// function editing and gogpu GPU-accelerated windows.
//
// This package enables displaying an editor's composited raster directly in
// GPU-accelerated windows by managing the CPU-to-GPU pipeline automatically.
// The data flow is:
//
//	tfe.Editor (edit) -> tfe.Pixmap (CPU) -> GPU Texture -> Window
//
// # Architecture
//
// Canvas wraps a tfe.Editor and manages the texture upload pipeline:
//
//   - Edit operations use the familiar tfe API
//   - Pixmap() returns the cached raster, re-compositing only when needed
//   - Flush() uploads pixel data to a GPU texture
//   - RenderTo() draws the texture to a gogpu window
//
// # Usage
//
// Basic usage with gogpu:
//
//	editor := tfe.NewEditor()
//	editor.SetBackground(tfe.NewDefaultCheckers())
//	editor.AddFunction(tfe.NewTent())
//
//	canvas, err := tfecanvas.New(app.GPUContextProvider(), editor, 800, 600)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer canvas.Close()
//
//	// Mutate through the canvas so dirty tracking stays correct
//	canvas.AddFunction(tfe.NewPiecewiseLinear(tfe.Pt(0, 1), tfe.Pt(1, 0)))
//
//	// Render to gogpu window
//	canvas.RenderTo(dc)
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use. Create one Canvas per goroutine,
// or use external synchronization.
//
// # Performance Notes
//
//   - Texture is created lazily on first Flush()
//   - Dirty tracking avoids unnecessary re-compositing and GPU uploads
//   - Pixel data is straight (non-premultiplied) alpha RGBA8
//
// # Integration Without Circular Imports
//
// This package uses interfaces to avoid importing gogpu directly:
//
//   - gpucontext.DeviceProvider for device access
//   - gpucontext.TextureCreator and TextureDrawer for texture handling
//
// This allows tfe to provide integration without creating circular
// dependencies.
package tfecanvas

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build stress

package stress

import (
	"runtime"
	"testing"

	"github.com/gogpu/tfe"
)

// =============================================================================
// Stress Tests for the Layer Compositor
// These tests verify stability under extreme conditions
// =============================================================================

// TestStress100Functions composites a stack of 100 function layers.
func TestStress100Functions(t *testing.T) {
	editor := tfe.NewEditor()
	editor.SetBackground(tfe.NewDefaultCheckers())

	for i := 0; i < 100; i++ {
		center := float64(i) / 100
		editor.AddFunction(tfe.NewGaussian(center, 0.05, 0.9))
	}

	pm := editor.Rasterize(800, 600)
	if pm.Width() != 800 || pm.Height() != 600 {
		t.Fatalf("composite size = %dx%d, want 800x600", pm.Width(), pm.Height())
	}

	// The checkers background is opaque, so every output pixel must be too.
	for x := 0; x < 800; x += 97 {
		for y := 0; y < 600; y += 89 {
			if a := pm.GetPixel(x, y).A; a != 1 {
				t.Fatalf("pixel (%d,%d) alpha = %v, want 1", x, y, a)
			}
		}
	}
}

// TestStress1000PointPolyline evaluates a piecewise function with 1000
// control points across a wide composite.
func TestStress1000PointPolyline(t *testing.T) {
	pts := make([]tfe.Point, 1000)
	for i := range pts {
		x := float64(i) / 999
		y := 0.5 + 0.4*float64(i%2) // zigzag
		pts[i] = tfe.Pt(x, y)
	}

	f := tfe.NewPiecewiseLinear(pts...)

	editor := tfe.NewEditor()
	editor.AddFunction(f)

	pm := editor.Rasterize(4096, 256)
	if pm.Width() != 4096 {
		t.Fatalf("composite width = %d, want 4096", pm.Width())
	}

	// Every column is inside the zigzag's span, so the bottom row is filled.
	for x := 0; x < 4096; x += 511 {
		if a := pm.GetPixel(x, 0).A; a == 0 {
			t.Errorf("column %d bottom pixel empty, want fill", x)
		}
	}
}

// TestStressLargeCanvas composites at 1080p.
func TestStressLargeCanvas(t *testing.T) {
	editor := tfe.NewEditor()
	editor.SetBackground(tfe.NewCheckers(64, tfe.Black, tfe.White))
	editor.AddFunction(tfe.NewTent())
	editor.AddFunction(tfe.NewColorMap(
		tfe.ColorStop{Offset: 0, Color: tfe.RGBAf(0, 0, 1, 0.2)},
		tfe.ColorStop{Offset: 1, Color: tfe.RGBAf(1, 0, 0, 0.8)},
	))

	pm := editor.Rasterize(1920, 1080)
	if pm.Width() != 1920 || pm.Height() != 1080 {
		t.Fatalf("composite size = %dx%d, want 1920x1080", pm.Width(), pm.Height())
	}
}

// TestStressConcurrentRasterize runs independent editors in parallel
// (rasterization must not share state).
func TestStressConcurrentRasterize(t *testing.T) {
	const numGoroutines = 4
	done := make(chan bool, numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(n int) {
			defer func() { done <- true }()

			editor := tfe.NewEditor()
			editor.SetBackground(tfe.NewDefaultCheckers())
			editor.AddFunction(tfe.NewGaussian(0.1*float64(n), 0.1, 1))

			for j := 0; j < 10; j++ {
				_ = editor.Rasterize(400, 300)
			}
		}(i)
	}

	for i := 0; i < numGoroutines; i++ {
		<-done
	}
}

// TestStressRepeatedReorder moves functions to the top many times and
// re-composites after each splice.
func TestStressRepeatedReorder(t *testing.T) {
	editor := tfe.NewEditor()
	fns := make([]tfe.Function, 20)
	for i := range fns {
		fns[i] = tfe.NewBox(tfe.Interval{Lo: 0, Hi: float64(i+1) / 20}, 0.5)
		editor.AddFunction(fns[i])
	}

	for i := 0; i < 200; i++ {
		if !editor.MoveToTop(fns[i%len(fns)]) {
			t.Fatalf("iteration %d: function missing from stack", i)
		}
		if got := len(editor.Functions()); got != len(fns) {
			t.Fatalf("iteration %d: stack length = %d, want %d", i, got, len(fns))
		}
		_ = editor.Rasterize(64, 32)
	}
}

// =============================================================================
// Memory Usage Tests
// =============================================================================

// TestMemoryUsageComposite tests memory usage of a 1080p composite.
func TestMemoryUsageComposite(t *testing.T) {
	runtime.GC()
	var m1 runtime.MemStats
	runtime.ReadMemStats(&m1)

	editor := tfe.NewEditor()
	editor.SetBackground(tfe.NewDefaultCheckers())
	editor.AddFunction(tfe.NewTent())

	_ = editor.Rasterize(1920, 1080)

	runtime.GC()
	var m2 runtime.MemStats
	runtime.ReadMemStats(&m2)

	allocatedKB := (m2.TotalAlloc - m1.TotalAlloc) / 1024
	t.Logf("Composite (1080p, 2 layers): ~%d KB allocated", allocatedKB)

	// Three full-size RGBA buffers plus slack stays well under 100 MB.
	if allocatedKB > 100*1024 {
		t.Errorf("unexpected high memory usage: %d KB", allocatedKB)
	}
}

// TestMemoryUsageEval tests that pure evaluation does not allocate per call.
func TestMemoryUsageEval(t *testing.T) {
	f := tfe.NewTentShape(tfe.Pt(0.5, 1), 0.2, 0.8)

	allocs := testing.AllocsPerRun(1000, func() {
		_ = f.Eval(0.37)
	})
	if allocs != 0 {
		t.Errorf("Eval allocates %v per call, want 0", allocs)
	}
}

// Package tfe implements a 1-D transfer-function editor core.
//
// # Overview
//
// A transfer function maps a normalized coordinate in [0, 1] to an opacity
// value in [0, 1]. tfe keeps an ordered stack of such functions plus an
// optional background layer, rasterizes each into an RGBA pixel buffer, and
// composites them with the Porter-Duff over operator into a single image.
// An outline tracing the pointwise maximum of all curves can be drawn on top
// as a visual guide.
//
// # Quick Start
//
//	import "github.com/gogpu/tfe"
//
//	ed := tfe.NewEditor()
//	ed.SetBackground(tfe.NewCheckers(16, tfe.Black, tfe.White))
//	ed.AddFunction(tfe.NewPiecewiseLinear(
//		tfe.Pt(0, 1), tfe.Pt(0.3, 0.8), tfe.Pt(1, 1),
//	))
//	ed.AddFunction(tfe.NewTent())
//
//	pm := ed.Rasterize(256, 128)
//	pm.SavePNG("tf.png")
//
// # Architecture
//
// The core is a pure, synchronous computation:
//
//   - Layer: anything that rasterizes to a Pixmap (functions, backgrounds)
//   - Function: a Layer that also evaluates opacity over a bounded domain
//   - Editor: owns the function stack, the background, and the compositor
//
// Windowing, input handling, and GPU texture upload live outside the core;
// see integration/tfecanvas for a dirty-tracking texture adapter.
//
// # Coordinate System
//
// Pixmap exposes a bottom-left origin: logical y=0 is the bottom row, the
// natural orientation for plotting curves. Storage (and the Data byte
// buffer) uses top-down row order, the layout expected by texture uploads
// and image encoders.
//
// # Concurrency
//
// The core performs no locking. Rasterize is a pure function of editor
// state and the requested dimensions; callers mutating an editor from
// multiple goroutines must serialize access themselves.
package tfe

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)

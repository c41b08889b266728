package tfe

import "math"

// OutlineColor is the opaque orange used to trace the upper envelope of all
// function curves.
var OutlineColor = RGBAf(1, 0.5, 0, 1)

// Editor owns an ordered stack of transfer functions plus one optional
// background layer, and composites them into a single image.
//
// Functions are registered by reference: mutating a function after
// registration is reflected at the next Rasterize call, there are no
// snapshot semantics. The list order is the bottom-to-top stacking order
// used by Select and the outline envelope.
//
// Editor is not safe for concurrent use.
type Editor struct {
	background  Layer
	functions   []Function
	showOutline bool
}

// NewEditor creates an empty editor with the outline enabled.
func NewEditor() *Editor {
	return &Editor{showOutline: true}
}

// AddFunction appends f to the function stack. The newest function becomes
// the topmost for selection.
func (e *Editor) AddFunction(f Function) {
	e.functions = append(e.functions, f)
}

// SetBackground replaces the background layer. The background is always
// rendered bottommost. Pass nil to remove it.
func (e *Editor) SetBackground(bg Layer) {
	e.background = bg
}

// Functions returns the function stack in bottom-to-top order. The returned
// slice is shared with the editor; callers must not mutate it.
func (e *Editor) Functions() []Function {
	return e.functions
}

// SetShowOutline toggles the envelope outline drawn on top of the
// composited image. The outline is enabled by default.
func (e *Editor) SetShowOutline(show bool) {
	e.showOutline = show
}

// ShowOutline reports whether the envelope outline is enabled.
func (e *Editor) ShowOutline() bool {
	return e.showOutline
}

// MoveToTop reorders the stack so that f becomes the topmost function for
// selection and reports whether the order changed. If f is not registered,
// MoveToTop is a no-op. Functions are compared by identity.
func (e *Editor) MoveToTop(f Function) bool {
	for i, g := range e.functions {
		if g == f {
			e.functions = append(e.functions[:i], e.functions[i+1:]...)
			e.functions = append(e.functions, f)
			return true
		}
	}
	return false
}

// Select returns the topmost function whose filled area contains pos, i.e.
// the last-added function with Eval(pos.X) > pos.Y. It returns nil when no
// function contains the point.
func (e *Editor) Select(pos Point) Function {
	for i := len(e.functions) - 1; i >= 0; i-- {
		if pos.Y < e.functions[i].Eval(pos.X) {
			return e.functions[i]
		}
	}
	return nil
}

// Eval returns the pointwise maximum opacity across all registered
// functions at x, or 0 when the editor holds no functions. This is the
// envelope the outline traces.
func (e *Editor) Eval(x float64) float64 {
	res := 0.0
	for _, f := range e.functions {
		res = math.Max(res, f.Eval(x))
	}
	return res
}

// Rasterize composites the editor state into a fresh width×height pixmap:
// the function stack first, then the background underneath everything,
// then the envelope outline on top.
//
// Function layers are blended with the accumulated image as the front
// (source) operand, so functions added later end up visually beneath
// earlier ones, the opposite of the top-of-stack order Select uses. This
// operand order is part of the editor's contract; do not swap it.
func (e *Editor) Rasterize(width, height int) *Pixmap {
	pm := NewPixmap(width, height)

	for _, f := range e.functions {
		pm.BlendUnder(f.Rasterize(width, height))
	}

	if e.background != nil {
		pm.BlendUnder(e.background.Rasterize(width, height))
	}

	if e.showOutline {
		denom := float64(width - 1)
		if denom <= 0 {
			denom = 1
		}
		for x := 0; x < width; x++ {
			yf := e.Eval(float64(x) / denom)
			// Negated comparison so NaN from degenerate curves is skipped too.
			if !(yf > 0) {
				continue
			}
			y := int(yf * float64(height))
			if y >= height {
				y = height - 1
			}
			pm.SetPixel(x, y, OutlineColor)
		}
	}

	return pm
}

// SampleAlpha returns n evenly spaced evaluations of Eval over [0, 1].
// Suitable for uploading the combined opacity curve as a 1-D lookup table.
func (e *Editor) SampleAlpha(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	denom := float64(n - 1)
	if denom <= 0 {
		denom = 1
	}
	for i := range out {
		out[i] = e.Eval(float64(i) / denom)
	}
	return out
}

// SampleRGB returns n evenly spaced color samples over [0, 1], taken from
// the topmost registered ColorMap. With no ColorMap registered every sample
// is opaque white.
func (e *Editor) SampleRGB(n int) []RGBA {
	if n <= 0 {
		return nil
	}
	var cm *ColorMap
	for i := len(e.functions) - 1; i >= 0; i-- {
		if m, ok := e.functions[i].(*ColorMap); ok {
			cm = m
			break
		}
	}
	out := make([]RGBA, n)
	denom := float64(n - 1)
	if denom <= 0 {
		denom = 1
	}
	for i := range out {
		if cm == nil {
			out[i] = White
			continue
		}
		out[i] = cm.ColorAt(float64(i) / denom)
	}
	return out
}

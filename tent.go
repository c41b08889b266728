package tfe

// Tent is a trapezoid-shaped opacity curve described by a tip position, a
// flat top width, and a bottom width. It expands into four control points
//
//	(tipX - bottomWidth/2, 0)
//	(tipX - topWidth/2,    tipY)
//	(tipX + topWidth/2,    tipY)
//	(tipX + bottomWidth/2, 0)
//
// and delegates evaluation to an internal PiecewiseLinear curve. A topWidth
// of 0 collapses the shape to a triangle. Tent is immutable after
// construction.
type Tent struct {
	tip         Point
	topWidth    float64
	bottomWidth float64
	curve       *PiecewiseLinear
}

// NewTent creates the default tent: tip (0.5, 1), top width 0, bottom
// width 1. That is a unit triangle peaking in the middle of the domain.
func NewTent() *Tent {
	return NewTentShape(Pt(0.5, 1), 0, 1)
}

// NewTentShape creates a tent with the given tip position and widths.
func NewTentShape(tip Point, topWidth, bottomWidth float64) *Tent {
	t := &Tent{
		tip:         tip,
		topWidth:    topWidth,
		bottomWidth: bottomWidth,
	}
	t.curve = NewPiecewiseLinear(
		Pt(tip.X-bottomWidth/2, 0),
		Pt(tip.X-topWidth/2, tip.Y),
		Pt(tip.X+topWidth/2, tip.Y),
		Pt(tip.X+bottomWidth/2, 0),
	)
	return t
}

// Tip returns the tip position.
func (t *Tent) Tip() Point {
	return t.tip
}

// Domain returns the interval over which the tent is defined.
func (t *Tent) Domain() Interval {
	return t.curve.Domain()
}

// Eval forwards to the internal piecewise-linear curve.
func (t *Tent) Eval(x float64) float64 {
	return t.curve.Eval(x)
}

// Rasterize fills the area under the tent.
func (t *Tent) Rasterize(width, height int) *Pixmap {
	return rasterizeFunction(t, width, height)
}

package tfe

import "sort"

// PiecewiseLinear is an opacity curve defined by straight segments between
// control points. Control points are sorted ascending by X once, at
// construction time; they are not re-sorted afterwards.
type PiecewiseLinear struct {
	points []Point
	domain Interval
}

// NewPiecewiseLinear creates a curve from the given control points.
// The points are copied and sorted ascending by X. With no points the curve
// defaults to the identity ramp {(0,0), (1,1)}. The domain defaults to
// [0, 1]; use SetDomain to change it.
//
// At least 2 points are needed for non-degenerate evaluation; with fewer,
// Eval returns 0 everywhere.
func NewPiecewiseLinear(points ...Point) *PiecewiseLinear {
	if len(points) == 0 {
		points = []Point{Pt(0, 0), Pt(1, 1)}
	}
	cps := make([]Point, len(points))
	copy(cps, points)
	sort.Slice(cps, func(i, j int) bool {
		return cps[i].X < cps[j].X
	})
	return &PiecewiseLinear{
		points: cps,
		domain: UnitInterval,
	}
}

// SetDomain restricts the curve to the given interval.
// Eval returns 0 outside it.
func (f *PiecewiseLinear) SetDomain(iv Interval) {
	f.domain = iv
}

// Domain returns the interval over which the curve is defined.
func (f *PiecewiseLinear) Domain() Interval {
	return f.domain
}

// ControlPoints returns the sorted control points. The returned slice is
// shared with the curve; callers must not mutate it.
func (f *PiecewiseLinear) ControlPoints() []Point {
	return f.points
}

// Eval returns the opacity at x. It scans consecutive control-point pairs
// in ascending X order and linearly interpolates within the first pair that
// brackets x. Outside the domain, with fewer than 2 points, or in a gap not
// covered by any pair, Eval returns 0.
func (f *PiecewiseLinear) Eval(x float64) float64 {
	if len(f.points) < 2 || !f.domain.Contains(x) {
		return 0
	}

	for i := 0; i < len(f.points)-1; i++ {
		p1 := f.points[i]
		p2 := f.points[i+1]
		if p1.X > x || p2.X < x {
			continue
		}

		m := (p2.Y - p1.Y) / (p2.X - p1.X)
		return p1.Y + m*(x-p1.X)
	}

	return 0
}

// Rasterize fills the area under the curve.
func (f *PiecewiseLinear) Rasterize(width, height int) *Pixmap {
	return rasterizeFunction(f, width, height)
}

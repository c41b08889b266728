package tfe

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Verify at compile time that the curve variants satisfy Function.
var (
	_ Function = (*PiecewiseLinear)(nil)
	_ Function = (*Tent)(nil)
	_ Function = (*Box)(nil)
	_ Function = (*Gaussian)(nil)
	_ Function = (*ColorMap)(nil)
)

func TestPiecewiseLinear_EvalAtControlPoints(t *testing.T) {
	f := NewPiecewiseLinear(Pt(0, 1), Pt(0.3, 0.8), Pt(1, 1))

	tests := []struct {
		x, want float64
	}{
		{0, 1},
		{0.3, 0.8},
		{1, 1},
	}
	for _, tt := range tests {
		if got := f.Eval(tt.x); math.Abs(got-tt.want) > eps {
			t.Errorf("Eval(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestPiecewiseLinear_Interpolates(t *testing.T) {
	f := NewPiecewiseLinear(Pt(0, 1), Pt(0.3, 0.8), Pt(1, 1))

	// Halfway into the first segment: strictly between the endpoint values.
	got := f.Eval(0.15)
	if got <= 0.8 || got >= 1 {
		t.Errorf("Eval(0.15) = %v, want in (0.8, 1)", got)
	}
	if math.Abs(got-0.9) > eps {
		t.Errorf("Eval(0.15) = %v, want 0.9", got)
	}

	// Midpoint of the second segment.
	if got := f.Eval(0.65); math.Abs(got-0.9) > eps {
		t.Errorf("Eval(0.65) = %v, want 0.9", got)
	}
}

func TestPiecewiseLinear_OutsideDomain(t *testing.T) {
	f := NewPiecewiseLinear(Pt(0, 1), Pt(1, 1))
	f.SetDomain(Interval{Lo: 0.2, Hi: 0.8})

	for _, x := range []float64{-1, 0, 0.1, 0.9, 1, 2} {
		if got := f.Eval(x); got != 0 {
			t.Errorf("Eval(%v) = %v, want 0 outside domain", x, got)
		}
	}
	if got := f.Eval(0.5); math.Abs(got-1) > eps {
		t.Errorf("Eval(0.5) = %v, want 1 inside domain", got)
	}
}

func TestPiecewiseLinear_OutsideControlPoints(t *testing.T) {
	// Points cover only [0.4, 0.6]; the domain is the full [0, 1].
	f := NewPiecewiseLinear(Pt(0.4, 1), Pt(0.6, 1))

	for _, x := range []float64{0, 0.39, 0.61, 1} {
		if got := f.Eval(x); got != 0 {
			t.Errorf("Eval(%v) = %v, want 0 outside control points", x, got)
		}
	}
}

func TestPiecewiseLinear_TooFewPoints(t *testing.T) {
	f := NewPiecewiseLinear(Pt(0.5, 1))
	for _, x := range []float64{0, 0.5, 1} {
		if got := f.Eval(x); got != 0 {
			t.Errorf("Eval(%v) = %v, want 0 with a single control point", x, got)
		}
	}
}

// TestPiecewiseLinear_VerticalSegments: coincident X values are tolerated.
// A vertical step inside a spanning curve stays finite (the spanning pair
// brackets first); a curve of only coincident points yields NaN, and both
// rasterize without incident.
func TestPiecewiseLinear_VerticalSegments(t *testing.T) {
	step := NewPiecewiseLinear(Pt(0, 0), Pt(0.5, 0), Pt(0.5, 1), Pt(1, 1))
	if got := step.Eval(0.5); math.IsNaN(got) || got < 0 || got > 1 {
		t.Errorf("step Eval(0.5) = %v, want a finite value in [0, 1]", got)
	}
	if got := step.Eval(0.75); math.Abs(got-1) > eps {
		t.Errorf("step Eval(0.75) = %v, want 1 past the step", got)
	}
	_ = step.Rasterize(16, 8)

	degenerate := NewPiecewiseLinear(Pt(0.5, 0), Pt(0.5, 1))
	if got := degenerate.Eval(0.5); !math.IsNaN(got) {
		t.Errorf("degenerate Eval(0.5) = %v, want NaN", got)
	}
	if got := degenerate.Eval(0.2); got != 0 {
		t.Errorf("degenerate Eval(0.2) = %v, want 0", got)
	}

	pm := degenerate.Rasterize(11, 8)
	for y := 0; y < 8; y++ {
		if got := pm.GetPixel(5, y); got.A != 0 {
			t.Fatalf("pixel (5,%d) = %+v, want transparent", y, got)
		}
	}
}

func TestPiecewiseLinear_SortsOnConstruction(t *testing.T) {
	f := NewPiecewiseLinear(Pt(1, 1), Pt(0, 0), Pt(0.5, 0.2))

	want := []Point{Pt(0, 0), Pt(0.5, 0.2), Pt(1, 1)}
	if diff := cmp.Diff(want, f.ControlPoints()); diff != "" {
		t.Errorf("control points mismatch (-want +got):\n%s", diff)
	}
}

func TestPiecewiseLinear_DefaultRamp(t *testing.T) {
	f := NewPiecewiseLinear()

	tests := []struct {
		x, want float64
	}{
		{0, 0},
		{0.25, 0.25},
		{1, 1},
	}
	for _, tt := range tests {
		if got := f.Eval(tt.x); math.Abs(got-tt.want) > eps {
			t.Errorf("default ramp Eval(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

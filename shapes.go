package tfe

import "math"

// Box is a constant-height opacity curve over an extent: Eval returns the
// height inside the extent and 0 elsewhere.
type Box struct {
	extent Interval
	height float64
	domain Interval
}

// NewBox creates a box of the given height over extent.
func NewBox(extent Interval, height float64) *Box {
	return &Box{
		extent: extent,
		height: height,
		domain: UnitInterval,
	}
}

// Domain returns the interval over which the box is defined.
func (f *Box) Domain() Interval {
	return f.domain
}

// Eval returns the box height inside its extent, 0 elsewhere.
func (f *Box) Eval(x float64) float64 {
	if !f.domain.Contains(x) || !f.extent.Contains(x) {
		return 0
	}
	return f.height
}

// Rasterize fills the area under the box.
func (f *Box) Rasterize(width, height int) *Pixmap {
	return rasterizeFunction(f, width, height)
}

// Gaussian is a bell-shaped opacity curve.
type Gaussian struct {
	center float64
	sigma  float64
	height float64
	domain Interval
}

// NewGaussian creates a bell curve peaking at center with the given
// standard deviation and peak height. A sigma <= 0 is degenerate: the
// curve evaluates to 0 everywhere.
func NewGaussian(center, sigma, height float64) *Gaussian {
	return &Gaussian{
		center: center,
		sigma:  sigma,
		height: height,
		domain: UnitInterval,
	}
}

// Domain returns the interval over which the curve is defined.
func (f *Gaussian) Domain() Interval {
	return f.domain
}

// Eval returns height * exp(-(x-center)^2 / (2*sigma^2)), or 0 outside the
// domain or when sigma is degenerate.
func (f *Gaussian) Eval(x float64) float64 {
	if !f.domain.Contains(x) || f.sigma <= 0 {
		return 0
	}
	d := x - f.center
	return f.height * math.Exp(-(d*d)/(2*f.sigma*f.sigma))
}

// Rasterize fills the area under the bell curve.
func (f *Gaussian) Rasterize(width, height int) *Pixmap {
	return rasterizeFunction(f, width, height)
}

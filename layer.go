package tfe

// Layer is anything that can be rasterized to a pixel buffer of a requested
// size. Function variants and background patterns both satisfy it; the
// Editor composites layers back to front.
//
// Rasterize must return a freshly allocated Pixmap on every call; the
// caller owns the result.
type Layer interface {
	Rasterize(width, height int) *Pixmap
}

// Function is a 1-D opacity curve over a bounded domain, used as a
// transfer-function component. Eval maps a normalized x coordinate to an
// opacity in [0, 1]; outside the declared domain it returns 0.
//
// As a Layer, a function rasterizes by filling the area under its curve.
type Function interface {
	Layer

	// Eval returns the opacity at x, or 0 outside the domain.
	Eval(x float64) float64

	// Domain returns the interval over which the function is defined.
	Domain() Interval
}

// FillColor is the translucent gray used to fill the area under a curve.
// The composited appearance of overlapping functions comes from blending,
// not from this fixed fill.
var FillColor = RGBAf(0.6, 0.6, 0.6, 0.95)

// rasterizeFunction renders the filled area under a function's curve.
// Column x samples the function at x/(width-1) and fills rows [0, yf*height)
// from the bottom up. Shared by every Function variant's Rasterize.
func rasterizeFunction(f Function, width, height int) *Pixmap {
	return fillUnderCurve(f, width, height, func(float64) RGBA { return FillColor })
}

// fillUnderCurve is rasterizeFunction with a per-column fill color,
// letting ColorMap tint its fill while reusing the same column walk.
func fillUnderCurve(f Function, width, height int, colorAt func(x float64) RGBA) *Pixmap {
	pm := NewPixmap(width, height)
	denom := float64(width - 1)
	if denom <= 0 {
		denom = 1
	}
	for x := 0; x < width; x++ {
		yf := f.Eval(float64(x) / denom)
		// Negated comparison so NaN from degenerate curves is skipped too.
		if !(yf > 0) {
			continue
		}
		top := int(yf * float64(height))
		if top > height {
			top = height
		}
		c := colorAt(float64(x) / denom)
		for y := 0; y < top; y++ {
			pm.SetPixel(x, y, c)
		}
	}
	return pm
}

package tfe

import "sort"

// ColorStop represents a color at a specific position in a color map.
type ColorStop struct {
	Offset float64 // Position in the map, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// ColorMap is a function variant that carries color as well as opacity:
// a sequence of color stops interpolated linearly, with edge colors padded
// beyond the outermost stops. Eval returns the alpha channel of the color
// at x, so a ColorMap stacks and composites like any other function; use
// ColorAt for the full color.
type ColorMap struct {
	stops  []ColorStop
	domain Interval
}

// NewColorMap creates a color map from the given stops.
// The stops are copied and sorted ascending by offset.
func NewColorMap(stops ...ColorStop) *ColorMap {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return &ColorMap{
		stops:  sorted,
		domain: UnitInterval,
	}
}

// Domain returns the interval over which the map is defined.
func (f *ColorMap) Domain() Interval {
	return f.domain
}

// ColorAt returns the interpolated color at x. Outside the outermost stops
// the edge color is padded; with no stops the result is transparent.
func (f *ColorMap) ColorAt(x float64) RGBA {
	if len(f.stops) == 0 {
		return Transparent
	}
	if len(f.stops) == 1 {
		return f.stops[0].Color
	}

	idx := sort.Search(len(f.stops), func(i int) bool {
		return f.stops[i].Offset >= x
	})
	if idx == 0 {
		return f.stops[0].Color
	}
	if idx >= len(f.stops) {
		return f.stops[len(f.stops)-1].Color
	}

	s1 := f.stops[idx-1]
	s2 := f.stops[idx]
	if s2.Offset == s1.Offset {
		return s1.Color
	}

	t := (x - s1.Offset) / (s2.Offset - s1.Offset)
	return s1.Color.Lerp(s2.Color, t)
}

// Eval returns the alpha of the color at x, or 0 outside the domain.
func (f *ColorMap) Eval(x float64) float64 {
	if !f.domain.Contains(x) {
		return 0
	}
	return f.ColorAt(x).A
}

// Rasterize fills the area under the alpha curve with the per-column map
// color instead of the shared translucent gray.
func (f *ColorMap) Rasterize(width, height int) *Pixmap {
	return fillUnderCurve(f, width, height, f.ColorAt)
}

package tfe

// Checkers is a checkerboard background layer. The alpha of both colors is
// forced to 1 so that a checkers background is always fully opaque.
type Checkers struct {
	cellSize int
	color1   RGBA
	color2   RGBA
}

// NewCheckers creates a checkerboard with the given cell size in pixels.
// A cell size < 1 is clamped to 1.
func NewCheckers(cellSize int, c1, c2 RGBA) *Checkers {
	if cellSize < 1 {
		cellSize = 1
	}
	c1.A = 1
	c2.A = 1
	return &Checkers{
		cellSize: cellSize,
		color1:   c1,
		color2:   c2,
	}
}

// NewDefaultCheckers creates the default background: 8-pixel black and
// white cells.
func NewDefaultCheckers() *Checkers {
	return NewCheckers(8, Black, White)
}

// Rasterize paints the checkerboard. Pixel (x, y) gets color1 when the
// parities of its cell indices x/cellSize and y/cellSize match, color2
// otherwise.
func (c *Checkers) Rasterize(width, height int) *Pixmap {
	pm := NewPixmap(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			xx := x / c.cellSize
			yy := y / c.cellSize
			sel := c.color1
			if xx%2 != yy%2 {
				sel = c.color2
			}
			pm.SetPixel(x, y, sel)
		}
	}
	return pm
}

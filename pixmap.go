package tfe

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap represents a rectangular pixel buffer.
//
// Storage is 4 bytes per pixel in R,G,B,A order with row 0 at the top, the
// layout texture uploads and image encoders expect. SetPixel and GetPixel
// flip the y coordinate at the boundary, so logical y=0 addresses the
// bottom-most row.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel, top row first
}

// NewPixmap creates a new pixmap with the given dimensions.
// The backing storage is zero-initialized (transparent black).
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format, top row first).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// index returns the byte offset of the logical pixel (x, y), translating
// the bottom-left origin into top-down storage. Coordinates out of range
// are a contract violation and panic.
func (p *Pixmap) index(x, y int) int {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		panic(fmt.Sprintf("tfe: pixel (%d, %d) out of range %dx%d", x, y, p.width, p.height))
	}
	return ((p.height-1-y)*p.width + x) * 4
}

// SetPixel sets the color of a single pixel. Logical y=0 is the bottom row.
// SetPixel panics if the coordinates are out of range.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	i := p.index(x, y)
	p.data[i+0] = uint8(packByte(c.R))
	p.data[i+1] = uint8(packByte(c.G))
	p.data[i+2] = uint8(packByte(c.B))
	p.data[i+3] = uint8(packByte(c.A))
}

// GetPixel returns the color of a single pixel. Logical y=0 is the bottom
// row. GetPixel panics if the coordinates are out of range.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	i := p.index(x, y)
	return RGBA{
		R: unpackByte(uint32(p.data[i+0])),
		G: unpackByte(uint32(p.data[i+1])),
		B: unpackByte(uint32(p.data[i+2])),
		A: unpackByte(uint32(p.data[i+3])),
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	r := uint8(packByte(c.R))
	g := uint8(packByte(c.G))
	b := uint8(packByte(c.B))
	a := uint8(packByte(c.A))

	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// BlendUnder composites the receiver over bottom, pixel by pixel, storing
// the result back into the receiver. The receiver acts as the front (source)
// operand, so bottom shows through wherever the receiver is translucent.
// BlendUnder panics if the two pixmaps differ in size.
func (p *Pixmap) BlendUnder(bottom *Pixmap) {
	if p.width != bottom.width || p.height != bottom.height {
		panic(fmt.Sprintf("tfe: blend size mismatch: %dx%d vs %dx%d",
			p.width, p.height, bottom.width, bottom.height))
	}
	for i := 0; i < len(p.data); i += 4 {
		src := RGBA{
			R: unpackByte(uint32(p.data[i+0])),
			G: unpackByte(uint32(p.data[i+1])),
			B: unpackByte(uint32(p.data[i+2])),
			A: unpackByte(uint32(p.data[i+3])),
		}
		dst := RGBA{
			R: unpackByte(uint32(bottom.data[i+0])),
			G: unpackByte(uint32(bottom.data[i+1])),
			B: unpackByte(uint32(bottom.data[i+2])),
			A: unpackByte(uint32(bottom.data[i+3])),
		}
		out := src.Over(dst)
		p.data[i+0] = uint8(packByte(out.R))
		p.data[i+1] = uint8(packByte(out.G))
		p.data[i+2] = uint8(packByte(out.B))
		p.data[i+3] = uint8(packByte(out.A))
	}
}

// ToImage converts the pixmap to an image.NRGBA. The pixel bytes are
// copied verbatim; the pixmap holds straight (non-premultiplied) alpha.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}

// At implements the image.Image interface. Image coordinates are top-down,
// matching storage order.
func (p *Pixmap) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.NRGBA{}
	}
	return p.GetPixel(x, p.height-1-y).Color()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}

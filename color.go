package tfe

import "image/color"

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. Alpha is straight (not
// premultiplied); the Over operator applies the premultiplication itself.
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGBAf creates a color from RGBA components.
func RGBAf(r, g, b, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBAf(0, 0, 0, 0)
)

// packByte quantizes one channel: clamp to [0, 1], scale by 255, truncate.
// The truncation makes float→byte lossy; byte→float→byte round-trips
// exactly.
func packByte(f float64) uint32 {
	return uint32(255 * clamp01(f))
}

// unpackByte is the inverse of packByte, up to quantization.
func unpackByte(b uint32) float64 {
	return float64(b) / 255
}

// Pack encodes the color into a single 32-bit value with the channel bytes
// at bit positions 0 (R), 8 (G), 16 (B), and 24 (A). On little-endian
// storage this matches the R,G,B,A byte order of Pixmap.Data.
func (c RGBA) Pack() uint32 {
	return packByte(c.R) | packByte(c.G)<<8 | packByte(c.B)<<16 | packByte(c.A)<<24
}

// Unpack decodes a packed 32-bit value produced by Pack.
func Unpack(u uint32) RGBA {
	return RGBA{
		R: unpackByte(u & 0xff),
		G: unpackByte(u >> 8 & 0xff),
		B: unpackByte(u >> 16 & 0xff),
		A: unpackByte(u >> 24 & 0xff),
	}
}

// Over composites c in front of d using the Porter-Duff over operator:
// c + (1-c.A)*d, applied to every channel including alpha. Over is
// associative but not commutative.
func (c RGBA) Over(d RGBA) RGBA {
	t := 1 - c.A
	return RGBA{
		R: c.R + t*d.R,
		G: c.G + t*d.G,
		B: c.B + t*d.B,
		A: c.A + t*d.A,
	}
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(packByte(c.R)),
		G: uint8(packByte(c.G)),
		B: uint8(packByte(c.B)),
		A: uint8(packByte(c.A)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Transparent
	}
	// c.RGBA returns premultiplied 16-bit channels; undo the
	// premultiplication to recover straight alpha.
	return RGBA{
		R: float64(r) / float64(a),
		G: float64(g) / float64(a),
		B: float64(b) / float64(a),
		A: float64(a) / 65535,
	}
}

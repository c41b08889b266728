// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tfecanvas

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// WidgetMargin is the default inset, in pixels, between the widget border
// and the composited editor content.
const WidgetMargin = 8

// WidgetImage renders the canvas as a widget of the given outer size: the
// composited raster is scaled with bilinear filtering into the rectangle
// inset by WidgetMargin on all sides. Pixels in the margin stay transparent.
//
// The canvas raster keeps its own resolution; only the widget presentation
// is scaled. Returns error if the canvas is closed or the widget is too
// small to hold any content.
func (c *Canvas) WidgetImage(width, height int) (*image.RGBA, error) {
	if c.closed {
		return nil, ErrCanvasClosed
	}
	if width <= 2*WidgetMargin || height <= 2*WidgetMargin {
		return nil, fmt.Errorf("%w: widget %dx%d smaller than 2x margin %d",
			ErrInvalidDimensions, width, height, WidgetMargin)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	inset := image.Rect(WidgetMargin, WidgetMargin, width-WidgetMargin, height-WidgetMargin)

	src := c.Pixmap().ToImage()
	draw.ApproxBiLinear.Scale(dst, inset, src, src.Bounds(), draw.Over, nil)

	return dst, nil
}

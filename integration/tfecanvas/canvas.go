// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tfecanvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/tfe"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("tfecanvas: canvas is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("tfecanvas: invalid dimensions")

	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("tfecanvas: nil DeviceProvider")

	// ErrNilEditor is returned when a nil editor is passed.
	ErrNilEditor = errors.New("tfecanvas: nil editor")
)

// textureDestroyer is the interface for destroying textures.
// This matches the gogpu.Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// Canvas wraps tfe.Editor with gogpu integration.
// It manages the CPU-to-GPU pipeline automatically.
//
// Canvas is NOT safe for concurrent use. Create one Canvas per goroutine,
// or use external synchronization.
type Canvas struct {
	editor      *tfe.Editor
	provider    gpucontext.DeviceProvider
	pixmap      *tfe.Pixmap // Cached composite, valid while !dirty
	texture     any         // Lazy-created texture (*gogpu.Texture)
	oldTexture  any         // Previous texture awaiting deferred destruction
	dirty       bool        // Needs re-compositing and GPU upload
	sizeChanged bool        // Resize pending, texture must be recreated
	width       int
	height      int
	closed      bool
}

// New creates a Canvas for integrated mode.
// The provider should come from gogpu.App.GPUContextProvider().
//
// The canvas rasterizes the editor at width x height pixels.
// Use Editor() to access the wrapped editor directly; prefer the mutating
// wrappers (AddFunction, SetBackground, ...) or Edit so the dirty flag
// stays correct.
//
// Returns error if dimensions are invalid or provider or editor is nil.
func New(provider gpucontext.DeviceProvider, editor *tfe.Editor, width, height int) (*Canvas, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if editor == nil {
		return nil, ErrNilEditor
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	return &Canvas{
		editor:   editor,
		provider: provider,
		width:    width,
		height:   height,
		dirty:    true, // Mark dirty so first Flush composites and creates texture
	}, nil
}

// MustNew is like New but panics on error.
// Use only when errors are programming mistakes (e.g., hardcoded dimensions).
func MustNew(provider gpucontext.DeviceProvider, editor *tfe.Editor, width, height int) *Canvas {
	c, err := New(provider, editor, width, height)
	if err != nil {
		panic(err)
	}
	return c
}

// Editor returns the wrapped editor.
// Mutations made directly on the editor are not tracked; call MarkDirty()
// afterwards, or use Edit() which handles this automatically.
//
// Returns nil if the canvas is closed.
func (c *Canvas) Editor() *tfe.Editor {
	if c.closed {
		return nil
	}
	return c.editor
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Size returns width and height as a convenience.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Format returns the pixel format of the uploaded texture data.
// Canvas pixel data is straight-alpha RGBA, 8 bits per channel.
func (c *Canvas) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// MarkDirty flags the canvas for re-compositing and GPU upload.
// Call this after mutating the editor directly through Editor().
func (c *Canvas) MarkDirty() {
	c.dirty = true
}

// IsDirty returns true if the canvas has pending changes
// that need to be composited and uploaded to the GPU.
func (c *Canvas) IsDirty() bool {
	return c.dirty
}

// AddFunction appends a function layer to the editor and marks the
// canvas dirty.
func (c *Canvas) AddFunction(f tfe.Function) error {
	if c.closed {
		return ErrCanvasClosed
	}
	c.editor.AddFunction(f)
	c.dirty = true
	return nil
}

// SetBackground replaces the editor background and marks the canvas dirty.
func (c *Canvas) SetBackground(l tfe.Layer) error {
	if c.closed {
		return ErrCanvasClosed
	}
	c.editor.SetBackground(l)
	c.dirty = true
	return nil
}

// MoveToTop raises a function layer to the top of the editor's stacking
// order and marks the canvas dirty. The canvas stays clean if the function
// is not part of the editor.
func (c *Canvas) MoveToTop(f tfe.Function) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if c.editor.MoveToTop(f) {
		c.dirty = true
	}
	return nil
}

// SetShowOutline toggles the envelope outline and marks the canvas dirty.
func (c *Canvas) SetShowOutline(show bool) error {
	if c.closed {
		return ErrCanvasClosed
	}
	c.editor.SetShowOutline(show)
	c.dirty = true
	return nil
}

// Edit calls fn with the wrapped editor and marks the canvas as dirty.
// This is the recommended way to apply arbitrary editor mutations, as it
// ensures the dirty flag is set correctly for the next Flush/RenderTo.
func (c *Canvas) Edit(fn func(*tfe.Editor)) error {
	if c.closed {
		return ErrCanvasClosed
	}
	fn(c.editor)
	c.dirty = true
	return nil
}

// Resize changes canvas dimensions.
// The cached raster is discarded and the texture is recreated on next Flush.
//
// Returns error if dimensions are invalid or canvas is closed.
func (c *Canvas) Resize(width, height int) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	// No-op if dimensions haven't changed
	if c.width == width && c.height == height {
		return nil
	}

	c.width = width
	c.height = height
	c.pixmap = nil
	c.sizeChanged = true
	c.dirty = true

	return nil
}

// Pixmap returns the composited raster at the canvas size, re-running the
// editor composite only when the canvas is dirty. The returned pixmap is
// owned by the canvas; treat it as read-only.
//
// Returns nil if the canvas is closed.
func (c *Canvas) Pixmap() *tfe.Pixmap {
	if c.closed {
		return nil
	}
	if c.pixmap == nil || c.dirty {
		tfe.Logger().Debug("tfecanvas: compositing", "width", c.width, "height", c.height)
		c.pixmap = c.editor.Rasterize(c.width, c.height)
	}
	return c.pixmap
}

// Flush composites the editor if dirty and uploads the result to a GPU
// texture. Returns the texture for manual drawing if needed.
//
// The texture is created lazily on first Flush().
// Subsequent calls only upload data if the dirty flag is set.
//
// Returns error if texture creation or update fails, or if canvas is closed.
func (c *Canvas) Flush() (any, error) {
	if c.closed {
		return nil, ErrCanvasClosed
	}

	// If size changed, defer old texture destruction until after GPU is idle.
	// The old texture may still be referenced by in-flight GPU command buffers.
	// Destroying it now would free descriptor heap entries that the GPU is
	// reading, causing it to sample zeros (transparent). Instead, keep it
	// alive and destroy it in RenderToEx after the texture write (which waits
	// for the GPU internally).
	if c.sizeChanged {
		if c.texture != nil {
			// Destroy any previously deferred texture first
			if c.oldTexture != nil {
				if destroyer, ok := c.oldTexture.(textureDestroyer); ok {
					destroyer.Destroy()
				}
			}
			c.oldTexture = c.texture
			c.texture = nil
		}
		c.sizeChanged = false
	}

	// Skip if not dirty
	if !c.dirty && c.texture != nil {
		return c.texture, nil
	}

	pm := c.Pixmap()
	data := pm.Data()

	// Create texture if needed (lazy initialization)
	if c.texture == nil {
		c.texture = c.createTexture(data)
		c.dirty = false
		return c.texture, nil
	}

	// Still pending from an earlier Flush: the GPU texture does not exist
	// yet, so refresh the placeholder. Each composite is a fresh buffer;
	// stale placeholder bytes would otherwise become the texture's first
	// upload.
	if pending, ok := c.texture.(*pendingTexture); ok {
		pending.width = c.width
		pending.height = c.height
		pending.data = data
		c.dirty = false
		return c.texture, nil
	}

	// Update existing texture
	if updater, ok := c.texture.(gpucontext.TextureUpdater); ok {
		tfe.Logger().Debug("tfecanvas: texture upload", "bytes", len(data))
		if err := updater.UpdateData(data); err != nil {
			return nil, fmt.Errorf("tfecanvas: texture update failed: %w", err)
		}
	}

	c.dirty = false
	return c.texture, nil
}

// Texture returns the current GPU texture without flushing.
// Returns nil if texture hasn't been created yet.
//
// Use Flush() to ensure the texture exists and is up-to-date.
func (c *Canvas) Texture() any {
	return c.texture
}

// Close releases all resources associated with the Canvas.
// After Close, the Canvas should not be used.
// Close is idempotent - multiple calls are safe.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	// Destroy textures (current and any deferred old texture)
	if c.oldTexture != nil {
		if destroyer, ok := c.oldTexture.(textureDestroyer); ok {
			destroyer.Destroy()
		}
		c.oldTexture = nil
	}
	if c.texture != nil {
		if destroyer, ok := c.texture.(textureDestroyer); ok {
			destroyer.Destroy()
		}
		c.texture = nil
	}

	c.pixmap = nil
	c.editor = nil
	c.provider = nil
	return nil
}

// createTexture creates a pending texture placeholder from pixel data.
// This is called lazily on first Flush().
// The actual GPU texture is created during RenderTo when a renderer is available.
func (c *Canvas) createTexture(data []byte) *pendingTexture {
	// We store the creation request and let RenderTo handle it
	// when it has access to the actual texture creator.
	return &pendingTexture{
		width:  c.width,
		height: c.height,
		data:   data,
	}
}

// pendingTexture is a placeholder for texture creation.
// It holds the data needed to create a real texture when we have
// access to a TextureCreator (during RenderTo).
type pendingTexture struct {
	width  int
	height int
	data   []byte
}

// Provider returns the DeviceProvider associated with this canvas.
// Returns nil if the canvas is closed.
func (c *Canvas) Provider() gpucontext.DeviceProvider {
	if c.closed {
		return nil
	}
	return c.provider
}

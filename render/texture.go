// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	// Standard formats for background texture decoding.
	_ "image/jpeg"
	_ "image/png"

	// Extended formats from golang.org/x/image.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"golang.org/x/image/draw"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/gui"
)

// Texture errors.
var (
	// ErrEmptyData is returned when texture data is empty.
	ErrEmptyData = errors.New("render: empty texture data")

	// ErrTextureReleased is returned when operating on a fully released
	// texture.
	ErrTextureReleased = errors.New("render: texture has been released")
)

// textureDestroyer matches the Destroy method on GPU-side textures.
type textureDestroyer interface {
	Destroy()
}

// Texture is a reference-counted handle to a decoded image with a
// lazily created GPU backing.
//
// Several style sheets may share one Texture. The creating call holds
// the first reference; StyleSheet.SetBackgroundTexture retains and
// releases as handles move. When the last reference is released the
// backing GPU texture is destroyed.
type Texture struct {
	label string

	// src holds the decoded pixels. image.RGBA is premultiplied-alpha
	// by Go convention, which matches the GPU blend pipeline.
	src    *image.RGBA
	width  uint32
	height uint32

	refs atomic.Int32

	mu   sync.Mutex
	gpu  any // gpucontext texture, created on first draw
	gpuW uint32
	gpuH uint32
}

// Ensure Texture satisfies the layout core's handle interface.
var _ gui.Texture = (*Texture)(nil)

// TextureFromBytes decodes an encoded image (PNG, JPEG, BMP, TIFF,
// WebP) into a texture. The label is diagnostic only.
func (c *Context) TextureFromBytes(data []byte, label string) (*Texture, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("render: decode %q: %w", label, err)
	}
	gui.Logger().Debug("render: decoded texture",
		"label", label, "format", format)
	return c.TextureFromImage(img, label), nil
}

// TextureFromImage wraps an already decoded image as a texture. Images
// larger than the device's maximum texture size are downscaled to fit.
func (c *Context) TextureFromImage(img image.Image, label string) *Texture {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	// Clamp oversized images, preserving aspect ratio.
	if limit := int(c.maxTextureSize); w > limit || h > limit {
		if w >= h {
			h = h * limit / w
			w = limit
		} else {
			w = w * limit / h
			h = limit
		}
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		gui.Logger().Warn("render: texture downscaled to device limit",
			"label", label, "width", w, "height", h)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == bounds.Dx() && h == bounds.Dy() {
		draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	} else {
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	}

	t := &Texture{
		label:  label,
		src:    dst,
		width:  uint32(w),
		height: uint32(h),
	}
	t.refs.Store(1)
	return t
}

// TextureFromFile loads and decodes an image file as a texture.
// Unlike the panic-on-failure loaders of immediate-mode toolkits,
// decode failures are returned for the caller to handle.
func (c *Context) TextureFromFile(path string) (*Texture, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("render: read %q: %w", path, err)
	}
	return c.TextureFromBytes(data, filepath.Base(path))
}

// Label returns the diagnostic label.
func (t *Texture) Label() string {
	return t.label
}

// Size returns the decoded texture dimensions in pixels.
func (t *Texture) Size() (width, height uint32) {
	return t.width, t.height
}

// Refs returns the current reference count.
func (t *Texture) Refs() int {
	return int(t.refs.Load())
}

// Retain adds a reference.
func (t *Texture) Retain() {
	t.refs.Add(1)
}

// Release drops a reference. Releasing the last reference destroys the
// backing GPU texture and the decoded pixels.
func (t *Texture) Release() {
	if t.refs.Add(-1) > 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if d, ok := t.gpu.(textureDestroyer); ok {
		d.Destroy()
	}
	t.gpu = nil
	t.src = nil
}

// scaledCopy returns a copy of the decoded pixels at the requested
// extent. A zero extent uses the source dimensions.
func (t *Texture) scaledCopy(w, h uint32) (*image.RGBA, error) {
	if t.refs.Load() <= 0 {
		return nil, ErrTextureReleased
	}
	if w == 0 || h == 0 {
		w, h = t.width, t.height
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.src == nil {
		return nil, ErrTextureReleased
	}

	dst := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
	if w == t.width && h == t.height {
		draw.Draw(dst, dst.Bounds(), t.src, t.src.Bounds().Min, draw.Src)
	} else {
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), t.src, t.src.Bounds(), draw.Src, nil)
	}
	return dst, nil
}

// gpuTexture returns the GPU-side texture scaled to the requested
// extent, creating or recreating it as needed. A zero extent uses the
// source dimensions.
func (t *Texture) gpuTexture(creator gpucontext.TextureCreator, w, h uint32) (gpucontext.Texture, error) {
	if t.refs.Load() <= 0 {
		return nil, ErrTextureReleased
	}
	if w == 0 || h == 0 {
		w, h = t.width, t.height
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.gpu != nil && t.gpuW == w && t.gpuH == h {
		if tex, ok := t.gpu.(gpucontext.Texture); ok {
			return tex, nil
		}
	}

	pix := t.src.Pix
	if w != t.width || h != t.height {
		scaled := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
		draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), t.src, t.src.Bounds(), draw.Src, nil)
		pix = scaled.Pix
	}

	tex, err := creator.NewTextureFromRGBA(int(w), int(h), pix)
	if err != nil {
		return nil, fmt.Errorf("render: texture upload %q: %w", t.label, err)
	}
	// image.RGBA pixels are premultiplied — pick the matching blend
	// pipeline when the backend supports the hint.
	if pt, ok := tex.(interface{ SetPremultiplied(bool) }); ok {
		pt.SetPremultiplied(true)
	}

	// Safe to destroy the old texture: NewTextureFromRGBA waits for the
	// GPU, so no in-flight pass still references it.
	if d, ok := t.gpu.(textureDestroyer); ok {
		d.Destroy()
	}

	gpuTex, ok := tex.(gpucontext.Texture)
	if !ok {
		return nil, fmt.Errorf("render: creator returned non-texture for %q", t.label)
	}
	t.gpu = gpuTex
	t.gpuW = w
	t.gpuH = h
	return gpuTex, nil
}

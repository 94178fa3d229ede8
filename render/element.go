// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/draw"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/gui"
)

// Element is the GPU-side node state behind a layout element. The
// layout pass pushes resolved transforms, colors and textures here;
// Draw reads them back out.
//
// The zero value is inert: it accepts state but draws nothing until a
// transform with a positive extent arrives.
type Element struct {
	mu sync.Mutex

	transform gui.NodeTransform
	color     gui.RGBA
	texture   gui.Texture

	// solid backs color-only elements with a generated tint quad.
	solid      *Texture
	solidColor gui.RGBA
	solidW     uint32
	solidH     uint32

	// tinted backs textured elements that also carry a background
	// color, compositing the color over the texture pixels.
	tinted      *Texture
	tintedSrc   *Texture
	tintedColor gui.RGBA
	tintedW     uint32
	tintedH     uint32
}

var _ gui.Renderable = (*Element)(nil)

// NewElement returns an inert element ready to be attached to a style
// tree via gui.WithRenderable.
func NewElement() *Element {
	return &Element{}
}

// SetTransform stores the resolved node transform.
func (e *Element) SetTransform(t gui.NodeTransform) {
	e.mu.Lock()
	e.transform = t
	e.mu.Unlock()
}

// SetColor stores the background tint.
func (e *Element) SetColor(c gui.RGBA) {
	e.mu.Lock()
	e.color = c
	e.mu.Unlock()
}

// SetTexture stores the background texture. Reference counts are
// managed by the style sheet, not here.
func (e *Element) SetTexture(t gui.Texture) {
	e.mu.Lock()
	e.texture = t
	e.mu.Unlock()
}

// Transform returns the last transform pushed by layout.
func (e *Element) Transform() gui.NodeTransform {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.transform
}

// Render draws the element into the draw context. A background color
// composites over the texture when both are set; elements with neither
// draw nothing.
func (e *Element) Render(pipelines *PipelineRegistry, dc gpucontext.TextureDrawer) error {
	e.mu.Lock()
	t := e.transform
	col := e.color
	tex := e.texture
	e.mu.Unlock()

	w := uint32(t.Scale.X + 0.5)
	h := uint32(t.Scale.Y + 0.5)
	if w == 0 || h == 0 {
		return nil
	}

	bg, _ := tex.(*Texture)
	if bg == nil && col.A <= 0 {
		return nil
	}

	// Drawer positions are top-left; transforms carry the center.
	x := t.Position.X - t.Scale.X/2
	y := t.Position.Y - t.Scale.Y/2

	creator := dc.TextureCreator()
	if creator == nil {
		return ErrInvalidDrawContext
	}

	if bg != nil {
		quad := bg
		if col.A > 0 {
			// Keep the tint pipeline compiled where a HAL device exists;
			// dispatch needs buffer binding the HAL does not expose yet,
			// so the compositing itself runs on the CPU.
			if pipelines != nil && pipelines.Ready() {
				if _, err := pipelines.Tint(); err != nil {
					gui.Logger().Warn("render: tint pipeline unavailable", "error", err)
				}
			}
			tinted, err := e.tintedQuad(bg, col, w, h)
			if err != nil {
				return err
			}
			quad = tinted
		}
		gpuTex, err := quad.gpuTexture(creator, w, h)
		if err != nil {
			return err
		}
		return dc.DrawTexture(gpuTex, x, y)
	}

	solid, err := e.solidQuad(col, w, h)
	if err != nil {
		return err
	}
	gpuTex, err := solid.gpuTexture(creator, w, h)
	if err != nil {
		return err
	}
	return dc.DrawTexture(gpuTex, x, y)
}

// tintedQuad returns the background texture with the color composited
// on top, rebuilding it only when the source, color, or extent changed
// since the last frame.
func (e *Element) tintedQuad(bg *Texture, col gui.RGBA, w, h uint32) (*Texture, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.tinted != nil && e.tintedSrc == bg && e.tintedColor == col && e.tintedW == w && e.tintedH == h {
		return e.tinted, nil
	}

	dst, err := bg.scaledCopy(w, h)
	if err != nil {
		return nil, err
	}
	tintPixels(dst.Pix, col)

	tinted := &Texture{
		label:  "gui_tinted",
		src:    dst,
		width:  w,
		height: h,
	}
	tinted.refs.Store(1)

	if e.tinted != nil {
		e.tinted.Release()
	}
	e.tinted = tinted
	e.tintedSrc = bg
	e.tintedColor = col
	e.tintedW = w
	e.tintedH = h
	return tinted, nil
}

// tintPixels composites a premultiplied tint over premultiplied RGBA
// pixels: out = src*(1-a) + tint, the same blend the tint compute
// shader applies.
func tintPixels(pix []uint8, col gui.RGBA) {
	pm := col.Premultiply()
	inv := 1 - pm.A
	tr := pm.R * 255
	tg := pm.G * 255
	tb := pm.B * 255
	ta := pm.A * 255
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i] = blend8(pix[i], inv, tr)
		pix[i+1] = blend8(pix[i+1], inv, tg)
		pix[i+2] = blend8(pix[i+2], inv, tb)
		pix[i+3] = blend8(pix[i+3], inv, ta)
	}
}

func blend8(src uint8, inv, tint float64) uint8 {
	v := float64(src)*inv + tint
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v + 0.5)
	}
}

// solidQuad returns a uniform tint texture, rebuilding it only when
// the color or extent changed since the last frame.
func (e *Element) solidQuad(col gui.RGBA, w, h uint32) (*Texture, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.solid != nil && e.solidColor == col && e.solidW == w && e.solidH == h {
		return e.solid, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
	src := image.NewUniform(color.NRGBA{
		R: clamp8(col.R),
		G: clamp8(col.G),
		B: clamp8(col.B),
		A: clamp8(col.A),
	})
	draw.Draw(dst, dst.Bounds(), src, image.Point{}, draw.Src)

	solid := &Texture{
		label:  "gui_solid",
		src:    dst,
		width:  w,
		height: h,
	}
	solid.refs.Store(1)

	if e.solid != nil {
		e.solid.Release()
	}
	e.solid = solid
	e.solidColor = col
	e.solidW = w
	e.solidH = h
	return solid, nil
}

// Close releases GPU resources held by generated quads. Background
// textures belong to the style sheet and are untouched.
func (e *Element) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.solid != nil {
		e.solid.Release()
		e.solid = nil
	}
	if e.tinted != nil {
		e.tinted.Release()
		e.tinted = nil
		e.tintedSrc = nil
	}
}

func clamp8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}

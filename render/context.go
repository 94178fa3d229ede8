// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gpucontext"
	types "github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/gui"
)

// Common errors returned by Context operations.
var (
	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("render: nil DeviceProvider")

	// ErrInvalidDimensions is returned when width or height is zero.
	ErrInvalidDimensions = errors.New("render: invalid dimensions")

	// ErrInvalidDrawContext is returned when Draw is given a nil drawer.
	ErrInvalidDrawContext = errors.New("render: nil TextureDrawer")

	// ErrNilTree is returned when Sync or Draw is given a nil tree.
	ErrNilTree = errors.New("render: nil tree")
)

// defaultMaxTextureSize bounds decoded images when the device does not
// report a limit. Matches the WebGPU guaranteed minimum.
const defaultMaxTextureSize = 8192

// Context is the GPU-bound resource context for one element tree.
//
// It holds the device provider, the pipeline registry, and the
// dimensions uniform consumed once per render pass before any element
// is drawn. Context implements gui.Target, so a tree created with
// gui.WithTarget(ctx) keeps the GPU side in step with viewport resizes.
//
// Context is NOT safe for concurrent use; drive it from the thread that
// owns the tree.
type Context struct {
	provider  DeviceHandle
	pipelines *PipelineRegistry

	width  uint32
	height uint32

	// dimsData is the little-endian float32 viewport extent uniform.
	dimsData   [8]byte
	dimsBuffer hal.Buffer
	dimsDirty  bool

	maxTextureSize uint32
}

// Ensure Context implements the tree's resize boundary.
var _ gui.Target = (*Context)(nil)

// New creates a GPU-bound context for the given provider and initial
// viewport dimensions. The provider should come from the host
// application (e.g., gogpu.App.GPUContextProvider()); pass
// NullDeviceHandle{} for layout-only operation.
func New(provider DeviceHandle, width, height uint32) (*Context, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	c := &Context{
		provider:       provider,
		pipelines:      NewPipelineRegistry(provider),
		width:          width,
		height:         height,
		dimsDirty:      true,
		maxTextureSize: defaultMaxTextureSize,
	}
	c.encodeDimensions()
	return c, nil
}

// Resize updates the stored viewport dimensions and marks the
// dimensions uniform for re-upload on the next pass.
//
// Resize implements gui.Target and is invoked by Tree.Resize.
func (c *Context) Resize(width, height uint32) {
	if width == 0 || height == 0 {
		gui.Logger().Warn("render: ignoring zero-sized resize",
			"width", width, "height", height)
		return
	}
	c.width = width
	c.height = height
	c.encodeDimensions()
	c.dimsDirty = true
}

// Size returns the current viewport dimensions.
func (c *Context) Size() (width, height uint32) {
	return c.width, c.height
}

// Provider returns the device provider the context was created with.
func (c *Context) Provider() DeviceHandle {
	return c.provider
}

// Pipelines returns the context's pipeline registry.
func (c *Context) Pipelines() *PipelineRegistry {
	return c.pipelines
}

// encodeDimensions packs the viewport extent into the uniform bytes.
func (c *Context) encodeDimensions() {
	binary.LittleEndian.PutUint32(c.dimsData[0:4], math.Float32bits(float32(c.width)))
	binary.LittleEndian.PutUint32(c.dimsData[4:8], math.Float32bits(float32(c.height)))
}

// bindDimensions uploads the dimensions uniform if it changed since the
// last pass. Without HAL access the uniform stays CPU-side; the drawer
// path does not need it.
func (c *Context) bindDimensions() {
	if !c.dimsDirty {
		return
	}
	device, ok := halDevice(c.provider)
	if !ok {
		c.dimsDirty = false
		return
	}
	queue, ok := halQueue(c.provider)
	if !ok {
		c.dimsDirty = false
		return
	}

	if c.dimsBuffer == nil {
		buffer, err := device.CreateBuffer(&hal.BufferDescriptor{
			Label: "gui_dimensions",
			Size:  uint64(len(c.dimsData)),
			Usage: types.BufferUsageUniform | types.BufferUsageCopyDst,
		})
		if err != nil {
			gui.Logger().Warn("render: dimensions buffer creation failed", "err", err)
			c.dimsDirty = false
			return
		}
		c.dimsBuffer = buffer
	}

	queue.WriteBuffer(c.dimsBuffer, 0, c.dimsData[:])
	c.dimsDirty = false
}

// Sync consumes dirty style flags for every element reachable from the
// tree's entry and pushes the changed state into the elements'
// renderable representations.
//
// Only the flags this backend actually consumes are cleared: color,
// texture, and the transform/recalc pair. Gradient, text, and border
// flags stay set for collaborators that render those aspects.
func (c *Context) Sync(t *gui.Tree) error {
	if t == nil {
		return ErrNilTree
	}
	entry, ok := t.Entry()
	if !ok {
		return nil
	}

	// A declared-transform change anywhere re-resolves the whole
	// visible tree; resolution pushes the new transforms itself.
	var layoutErr error
	if c.needsLayout(t, entry, make(map[gui.ElementKey]struct{})) {
		layoutErr = t.Layout()
	}

	c.syncElement(t, entry, make(map[gui.ElementKey]struct{}))
	return layoutErr
}

// needsLayout reports whether any reachable element has RecalcTransform
// set.
func (c *Context) needsLayout(t *gui.Tree, key gui.ElementKey, visited map[gui.ElementKey]struct{}) bool {
	if _, ok := visited[key]; ok {
		return false
	}
	visited[key] = struct{}{}

	el, ok := t.Node(key)
	if !ok {
		return false
	}
	if el.Style().Dirty().RecalcTransform {
		return true
	}
	for _, child := range el.Children().Keys {
		if c.needsLayout(t, child, visited) {
			return true
		}
	}
	return false
}

// syncElement pushes dirty state for one element and recurses.
func (c *Context) syncElement(t *gui.Tree, key gui.ElementKey, visited map[gui.ElementKey]struct{}) {
	if _, ok := visited[key]; ok {
		return
	}
	visited[key] = struct{}{}

	el, ok := t.Node(key)
	if !ok {
		return
	}

	style := el.Style()
	flags := style.Dirty()
	if re, ok := el.Renderable().(*Element); ok && re != nil {
		if flags.DirtyColor {
			re.SetColor(style.BackgroundColor())
			flags.DirtyColor = false
		}
		if flags.DirtyTexture {
			re.SetTexture(style.BackgroundTexture())
			flags.DirtyTexture = false
		}
		if flags.DirtyTransform || flags.RecalcTransform {
			flags.DirtyTransform = false
			flags.RecalcTransform = false
		}
	}

	for _, child := range el.Children().Keys {
		c.syncElement(t, child, visited)
	}
}

// Draw renders the visible tree through a gpucontext.TextureDrawer.
// The dimensions binding is consumed once before any element draws.
// Elements are drawn in pre-order, parents under children; an invisible
// element hides its whole subtree.
func (c *Context) Draw(t *gui.Tree, dc gpucontext.TextureDrawer) error {
	if t == nil {
		return ErrNilTree
	}
	if dc == nil {
		return ErrInvalidDrawContext
	}

	entry, ok := t.Entry()
	if !ok {
		return nil
	}

	c.bindDimensions()
	return c.drawElement(t, entry, dc, make(map[gui.ElementKey]struct{}))
}

// Close releases GPU resources owned by the context: compiled
// pipelines and the dimensions uniform. Textures created through the
// context are reference-counted separately and are not touched.
func (c *Context) Close() {
	c.pipelines.Destroy()
	if c.dimsBuffer != nil {
		if device, ok := halDevice(c.provider); ok {
			device.DestroyBuffer(c.dimsBuffer)
		}
		c.dimsBuffer = nil
	}
}

// drawElement draws one element and recurses into its children.
func (c *Context) drawElement(t *gui.Tree, key gui.ElementKey, dc gpucontext.TextureDrawer, visited map[gui.ElementKey]struct{}) error {
	if _, ok := visited[key]; ok {
		return nil
	}
	visited[key] = struct{}{}

	el, ok := t.Node(key)
	if !ok {
		return nil
	}
	if !el.Style().Visible() {
		return nil
	}

	if re, ok := el.Renderable().(*Element); ok && re != nil {
		if err := re.Render(c.pipelines, dc); err != nil {
			return fmt.Errorf("render: draw %s: %w", key, err)
		}
	}

	for _, child := range el.Children().Keys {
		if err := c.drawElement(t, child, dc, visited); err != nil {
			return err
		}
	}
	return nil
}

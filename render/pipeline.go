// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/gui"
)

// Pipeline errors.
var (
	// ErrNoHALDevice is returned when the provider exposes no HAL device
	// and a GPU pipeline is requested.
	ErrNoHALDevice = errors.New("render: provider has no HAL device")
)

// tintShaderSource composites a premultiplied tint over a packed RGBA
// pixel buffer. It backs color overlays on elements that carry both a
// texture and a background color.
const tintShaderSource = `
struct Params {
    size: vec2<f32>,
    _pad: vec2<f32>,
    tint: vec4<f32>,
}

@group(0) @binding(0) var<uniform> params: Params;
@group(0) @binding(1) var<storage, read_write> pixels: array<u32>;

@compute @workgroup_size(8, 8, 1)
fn main(@builtin(global_invocation_id) gid: vec3<u32>) {
    let w = u32(params.size.x);
    let h = u32(params.size.y);
    if (gid.x >= w || gid.y >= h) {
        return;
    }
    let idx = gid.y * w + gid.x;
    let src = unpack4x8unorm(pixels[idx]);
    let out = src * (1.0 - params.tint.a) + params.tint;
    pixels[idx] = pack4x8unorm(clamp(out, vec4<f32>(0.0), vec4<f32>(1.0)));
}
`

// ComputePipeline bundles a compiled compute pipeline with the HAL
// objects it owns.
type ComputePipeline struct {
	shader     hal.ShaderModule
	bindLayout hal.BindGroupLayout
	layout     hal.PipelineLayout
	pipeline   hal.ComputePipeline
}

// Raw returns the underlying HAL compute pipeline.
func (p *ComputePipeline) Raw() hal.ComputePipeline {
	return p.pipeline
}

// BindLayout returns the bind group layout used by the pipeline.
func (p *ComputePipeline) BindLayout() hal.BindGroupLayout {
	return p.bindLayout
}

func (p *ComputePipeline) destroy(device hal.Device) {
	if p.pipeline != nil {
		device.DestroyComputePipeline(p.pipeline)
	}
	if p.layout != nil {
		device.DestroyPipelineLayout(p.layout)
	}
	if p.bindLayout != nil {
		device.DestroyBindGroupLayout(p.bindLayout)
	}
	if p.shader != nil {
		device.DestroyShaderModule(p.shader)
	}
}

// PipelineRegistry caches compiled compute pipelines per shader.
//
// Compilation goes WGSL -> SPIR-V through naga and is expensive, so
// pipelines are created once and reused for the lifetime of the
// registry. The registry is safe for concurrent use: the lookup uses
// double-check locking so concurrent first requests compile once.
//
// Providers without a HAL device get an inert registry; lookups then
// return ErrNoHALDevice and drawing falls back to the texture path.
type PipelineRegistry struct {
	device hal.Device
	queue  hal.Queue

	mu    sync.RWMutex
	cache map[uint64]*ComputePipeline
}

// NewPipelineRegistry builds a registry for the provider's device.
func NewPipelineRegistry(provider DeviceHandle) *PipelineRegistry {
	r := &PipelineRegistry{
		cache: make(map[uint64]*ComputePipeline),
	}
	if dev, ok := halDevice(provider); ok {
		r.device = dev
	}
	if q, ok := halQueue(provider); ok {
		r.queue = q
	}
	if r.device == nil {
		gui.Logger().Debug("render: no HAL device, pipeline registry inert")
	}
	return r
}

// Ready reports whether the registry can compile pipelines.
func (r *PipelineRegistry) Ready() bool {
	return r.device != nil
}

// Size returns the number of compiled pipelines.
func (r *PipelineRegistry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cache)
}

// Tint returns the tint compositing pipeline, compiling it on first
// use.
func (r *PipelineRegistry) Tint() (*ComputePipeline, error) {
	return r.compute("gui_tint", tintShaderSource, "main")
}

// compute returns a cached pipeline for the shader, creating it on a
// miss.
func (r *PipelineRegistry) compute(label, wgsl, entry string) (*ComputePipeline, error) {
	if r.device == nil {
		return nil, ErrNoHALDevice
	}

	key := hashShader(label, wgsl, entry)

	r.mu.RLock()
	if p, ok := r.cache[key]; ok {
		r.mu.RUnlock()
		return p, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.cache[key]; ok {
		return p, nil
	}

	p, err := r.create(label, wgsl, entry)
	if err != nil {
		return nil, err
	}
	r.cache[key] = p
	gui.Logger().Debug("render: compiled pipeline", "label", label)
	return p, nil
}

func (r *PipelineRegistry) create(label, wgsl, entry string) (*ComputePipeline, error) {
	spirv, err := compileWGSL(wgsl)
	if err != nil {
		return nil, fmt.Errorf("render: compile %s: %w", label, err)
	}

	p := &ComputePipeline{}

	p.shader, err = r.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  label,
		Source: hal.ShaderSource{SPIRV: spirv},
	})
	if err != nil {
		return nil, fmt.Errorf("render: shader module %s: %w", label, err)
	}

	p.bindLayout, err = r.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: label + "_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{Binding: 0, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform}},
			{Binding: 1, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeStorage}},
		},
	})
	if err != nil {
		p.destroy(r.device)
		return nil, fmt.Errorf("render: bind group layout %s: %w", label, err)
	}

	p.layout, err = r.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            label + "_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.bindLayout},
	})
	if err != nil {
		p.destroy(r.device)
		return nil, fmt.Errorf("render: pipeline layout %s: %w", label, err)
	}

	p.pipeline, err = r.device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label:   label + "_pipeline",
		Layout:  p.layout,
		Compute: hal.ComputeState{Module: p.shader, EntryPoint: entry},
	})
	if err != nil {
		p.destroy(r.device)
		return nil, fmt.Errorf("render: compute pipeline %s: %w", label, err)
	}

	return p, nil
}

// Destroy releases all compiled pipelines. The registry is reusable
// afterwards.
func (r *PipelineRegistry) Destroy() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.device != nil {
		for _, p := range r.cache {
			p.destroy(r.device)
		}
	}
	r.cache = make(map[uint64]*ComputePipeline)
}

// compileWGSL compiles WGSL source to SPIR-V words.
func compileWGSL(source string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, err
	}
	// SPIR-V is little-endian 32-bit words.
	code := make([]uint32, len(spirvBytes)/4)
	for i := range code {
		code[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return code, nil
}

func hashShader(label, wgsl, entry string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(label))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(wgsl))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(entry))
	return h.Sum64()
}

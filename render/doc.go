// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render bridges resolved gui state to GPU-bound resources.
//
// The layout core in the parent package is pure Go: it resolves boxes
// and pushes transforms, colors, and texture handles into Renderable
// representations. This package provides the concrete GPU side of that
// boundary for the GoGPU ecosystem:
//
//   - Context: the per-tree GPU-bound resource context, constructed
//     from a gpucontext.DeviceProvider with the initial viewport
//     dimensions. It owns the dimensions uniform consumed once per
//     render pass and implements gui.Target so viewport resizes reach
//     the GPU side.
//   - Element: the per-element renderable representation, drawable
//     through a gpucontext.TextureDrawer.
//   - Texture: a reference-counted decoded-image handle whose backing
//     GPU texture is created lazily and destroyed when the last
//     reference is released.
//   - PipelineRegistry: naga-compiled element shaders cached per
//     descriptor hash, created through wgpu/hal when the provider
//     exposes HAL access.
//
// Hosts drive drawing explicitly:
//
//	ctx, _ := render.New(provider, 800, 600)
//	tree := gui.NewTree(800, 600, gui.WithTarget(ctx))
//	// ... build elements, set entry ...
//	ctx.Sync(tree)                       // consume dirty flags
//	ctx.Draw(tree, dc.AsTextureDrawer()) // draw the visible tree
package render

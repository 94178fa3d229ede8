// Package gui provides a retained-mode UI layout and styling engine for Go.
//
// # Overview
//
// gui resolves a tree of visual elements, each with declarative size and
// position rules, into absolute on-screen boxes. It is designed to integrate
// with the GoGPU ecosystem: the layout core is pure Go, and the render/
// sub-package bridges resolved state to GPU-bound resources.
//
// # Quick Start
//
//	import "github.com/gogpu/gui"
//
//	// Create a tree sized to the viewport
//	tree := gui.NewTree(800, 600)
//
//	// Build an element with style rules
//	panel := gui.NewElement().WithLabel("panel")
//	panel.Style().TransformMut().Width = gui.Percent(50)
//	key := tree.Add(panel)
//
//	// Designate the root; this resolves every transform
//	tree.SetEntry(key)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Tree, Element, StyleSheet, Size, Position, Arrangement
//   - Layout: pure size/position algebra plus a depth-first propagation pass
//   - render/: GPU-bound boundary (device handle, textures, pipelines)
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left of the viewport
//   - X increases right
//   - Y increases down
//   - A node's resolved position is the center of its box
//
// # Concurrency
//
// A Tree is single-threaded: every operation executes to completion on the
// calling thread. Hosts embedding gui in a multi-threaded program must
// serialize all calls into one tree behind their own synchronization.
package gui

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)

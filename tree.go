package gui

import (
	"errors"
	"fmt"
)

// ErrCycle is returned when a layout pass encounters an element twice.
// Arrangements must form a tree; a cyclic reference is a configuration
// fault in the host, not a recoverable layout state.
var ErrCycle = errors.New("gui: cycle in element arrangement")

// ElementKey addresses an element in a tree. Keys are issued
// monotonically by [Tree.Add] and never reused within a tree's
// lifetime, so a stale key can never alias a newer element.
type ElementKey struct {
	id uint64
}

// String returns the key in a diagnostic form.
func (k ElementKey) String() string {
	return fmt.Sprintf("element(%d)", k.id)
}

// Target is the render-bound collaborator notified when the tree's
// viewport changes. render.Context implements it.
type Target interface {
	// Resize is called with the new viewport dimensions in pixels.
	Resize(width, height uint32)
}

// Tree owns an arena of elements, a designated entry element, and the
// current viewport dimensions. Setting or replacing the entry and
// resizing the viewport both trigger a full transform-propagation pass
// over the visible tree.
//
// Tree is not safe for concurrent use. Hosts must serialize all calls
// into one tree.
type Tree struct {
	nodes    map[ElementKey]*Element
	entry    ElementKey
	hasEntry bool
	nextKey  uint64
	width    uint32
	height   uint32
	target   Target
}

// NewTree creates an empty tree with the given viewport dimensions.
func NewTree(width, height uint32, opts ...TreeOption) *Tree {
	options := defaultTreeOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return &Tree{
		nodes:  make(map[ElementKey]*Element),
		width:  width,
		height: height,
		target: options.target,
	}
}

// Add inserts an element and returns its freshly issued key.
func (t *Tree) Add(el *Element) ElementKey {
	key := ElementKey{id: t.nextKey}
	t.nextKey++
	t.nodes[key] = el
	return key
}

// Node returns the element for a key. A missing key is a normal
// "not found" result, not an error.
func (t *Tree) Node(key ElementKey) (*Element, bool) {
	el, ok := t.nodes[key]
	return el, ok
}

// Remove deletes an element and its entire subtree. Background texture
// references held by removed style sheets are released. Removing a key
// that is not present is a no-op.
func (t *Tree) Remove(key ElementKey) {
	t.removeSubtree(key, make(map[ElementKey]struct{}))
	if t.hasEntry && key == t.entry {
		t.hasEntry = false
	}
}

// removeSubtree deletes key and everything reachable from it. The
// visited set guards against cyclic arrangements during teardown.
func (t *Tree) removeSubtree(key ElementKey, visited map[ElementKey]struct{}) {
	if _, ok := visited[key]; ok {
		return
	}
	visited[key] = struct{}{}

	el, ok := t.nodes[key]
	if !ok {
		return
	}
	for _, child := range el.children.Keys {
		t.removeSubtree(child, visited)
	}
	if tex := el.style.background.Texture; tex != nil {
		tex.Release()
		el.style.background.Texture = nil
	}
	delete(t.nodes, key)
}

// Entry returns the designated root key, if one is set.
func (t *Tree) Entry() (ElementKey, bool) {
	return t.entry, t.hasEntry
}

// SetEntry designates the tree's visible root and runs a full layout
// pass from a viewport-sized box. A previously designated entry is
// removed together with its subtree; elements reachable from the new
// entry survive the cascade, so promoting a descendant of the current
// entry keeps its branch intact.
//
// Returns ErrCycle (wrapped with the offending key) if the new tree
// contains a cyclic arrangement; sibling branches are still resolved.
func (t *Tree) SetEntry(key ElementKey) error {
	if t.hasEntry && t.entry != key {
		keep := make(map[ElementKey]struct{})
		t.collectSubtree(key, keep)
		t.removeSubtree(t.entry, keep)
	}
	t.entry = key
	t.hasEntry = true
	return t.Layout()
}

// collectSubtree records key and everything reachable from it.
func (t *Tree) collectSubtree(key ElementKey, out map[ElementKey]struct{}) {
	if _, ok := out[key]; ok {
		return
	}
	el, ok := t.nodes[key]
	if !ok {
		return
	}
	out[key] = struct{}{}
	for _, child := range el.children.Keys {
		t.collectSubtree(child, out)
	}
}

// ClearEntry removes the designated entry and its subtree, leaving the
// tree without a visible root.
func (t *Tree) ClearEntry() {
	if !t.hasEntry {
		return
	}
	t.removeSubtree(t.entry, make(map[ElementKey]struct{}))
	t.hasEntry = false
}

// Size returns the current viewport dimensions.
func (t *Tree) Size() (width, height uint32) {
	return t.width, t.height
}

// Len returns the number of elements in the arena.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Resize updates the viewport dimensions, notifies the render target,
// and reruns the full layout pass for the visible tree. Every resize is
// a full re-resolution; there is no incremental path.
func (t *Tree) Resize(width, height uint32) error {
	t.width = width
	t.height = height
	if t.target != nil {
		t.target.Resize(width, height)
	}
	Logger().Info("gui: viewport resized", "width", width, "height", height)
	return t.Layout()
}

// Layout runs a full transform-propagation pass from the entry, seeded
// with a viewport-sized box. It is a no-op without an entry.
//
// The pass is a single depth-first pre-order walk. A missing key
// terminates only its own branch; a cyclic arrangement yields ErrCycle
// for that branch while siblings still resolve.
func (t *Tree) Layout() error {
	if !t.hasEntry {
		return nil
	}
	w, h := float32(t.width), float32(t.height)
	root := NodeTransform{
		Position: Pt(w/2, h/2),
		Scale:    Pt(w, h),
	}
	return t.layoutElement(t.entry, root, make(map[ElementKey]struct{}))
}

// layoutElement resolves one element against its incoming parent box
// and recurses per its arrangement.
func (t *Tree) layoutElement(key ElementKey, parent NodeTransform, visited map[ElementKey]struct{}) error {
	if _, ok := visited[key]; ok {
		return fmt.Errorf("%w: %v revisited", ErrCycle, key)
	}
	visited[key] = struct{}{}

	node, ok := t.nodes[key]
	if !ok {
		Logger().Debug("gui: layout skipped missing key", "key", key.String())
		return nil
	}

	style := node.style
	vw, vh := float32(t.width), float32(t.height)

	w := style.transform.ResolveWidth(parent.Scale.X, vw)
	h := style.transform.ResolveHeight(parent.Scale.Y, vh)
	x, y := style.transform.ResolvePosition(
		parent.Position.X, parent.Position.Y,
		parent.Scale.X, parent.Scale.Y,
		w, h,
	)

	// Rotation is declared but unresolved; emitted as 0.
	own := NodeTransform{
		Position: Pt(x, y),
		Scale:    Pt(w, h),
	}

	if r := node.renderable; r != nil {
		if tex := style.background.Texture; tex != nil {
			r.SetTexture(tex)
		}
		r.SetColor(style.background.Color)
		r.SetTransform(own)
	}

	switch node.children.Kind {
	case ArrangeSingle:
		if len(node.children.Keys) == 0 {
			return nil
		}
		return t.layoutElement(node.children.Keys[0], own, visited)

	case ArrangeLayers:
		var errs []error
		for _, child := range node.children.Keys {
			if err := t.layoutElement(child, own, visited); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)

	case ArrangeRows:
		return t.layoutLinear(node.children.Keys, node.children.Spacing, own, axisY, visited)

	case ArrangeColumns:
		return t.layoutLinear(node.children.Keys, node.children.Spacing, own, axisX, visited)

	default: // ArrangeNone
		return nil
	}
}

// axis selects the partitioned dimension of a linear arrangement.
type axis uint8

const (
	axisX axis = iota
	axisY
)

// layoutLinear partitions the parent box along one axis and recurses
// into each child with its partitioned sub-box.
//
// Distribution policy: the spacing rule is resolved against the parent
// main extent and (n-1) gaps are subtracted; children with explicit
// size rules (pixel, percent, viewport-relative) take their resolved
// extent first; the remainder is divided equally among the rest. Each
// child then resolves its own style against its sub-box, so min/max
// clamps and margins still apply within the partition. Explicit
// children get a sub-box whose main extent is the full parent extent,
// so a percent rule resolves to the same share the partition reserved
// for it rather than a fraction of its own slot.
func (t *Tree) layoutLinear(keys []ElementKey, spacing Size, parent NodeTransform, ax axis, visited map[ElementKey]struct{}) error {
	n := len(keys)
	if n == 0 {
		return nil
	}

	var main, cross, viewMain float32
	if ax == axisX {
		main, cross = parent.Scale.X, parent.Scale.Y
		viewMain = float32(t.width)
	} else {
		main, cross = parent.Scale.Y, parent.Scale.X
		viewMain = float32(t.height)
	}

	gap := spacing.inset(main, viewMain)
	avail := main - float32(n-1)*gap

	// First pass: give explicit children their resolved extent and
	// count the rest.
	shares := make([]float32, n)
	fixed := make([]bool, n)
	flexible := 0
	for i, key := range keys {
		node, ok := t.nodes[key]
		if !ok {
			// Missing children keep a zero share so siblings stay put.
			continue
		}
		rule := node.style.transform.Width
		if ax == axisY {
			rule = node.style.transform.Height
		}
		if rule.isExplicit() {
			shares[i] = rule.base(main, viewMain)
			fixed[i] = true
			avail -= shares[i]
		} else {
			flexible++
			shares[i] = -1
		}
	}

	if avail < 0 {
		avail = 0
	}
	if flexible > 0 {
		fillShare := avail / float32(flexible)
		for i := range shares {
			if shares[i] < 0 {
				shares[i] = fillShare
			}
		}
	}

	// Second pass: walk the main axis and recurse with sub-boxes.
	var errs []error
	cursor := -main / 2
	for i, key := range keys {
		center := cursor + shares[i]/2
		cursor += shares[i] + gap

		if _, ok := t.nodes[key]; !ok {
			Logger().Debug("gui: layout skipped missing child", "key", key.String())
			continue
		}

		// Explicit children re-resolve their own rule, so they see the
		// full parent extent on the main axis, not their slot.
		subMain := shares[i]
		if fixed[i] {
			subMain = main
		}

		sub := NodeTransform{}
		if ax == axisX {
			sub.Position = Pt(parent.Position.X+center, parent.Position.Y)
			sub.Scale = Pt(subMain, cross)
		} else {
			sub.Position = Pt(parent.Position.X, parent.Position.Y+center)
			sub.Scale = Pt(cross, subMain)
		}

		if err := t.layoutElement(key, sub, visited); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

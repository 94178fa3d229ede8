package gui

// Renderable is an element's GPU-bound representation. The propagation
// pass pushes resolved state into it; drawing itself is driven by the
// host through the render/ sub-package.
//
// Implementations must be usable in a zeroed, inert state before any
// style has been applied.
type Renderable interface {
	// SetTransform pushes the element's resolved transform.
	SetTransform(t NodeTransform)

	// SetColor pushes the background tint color.
	SetColor(c RGBA)

	// SetTexture pushes the background texture.
	SetTexture(tex Texture)
}

// ArrangementKind selects how an element's children share its resolved
// box.
type ArrangementKind uint8

const (
	// ArrangeNone means no children.
	ArrangeNone ArrangementKind = iota

	// ArrangeSingle holds exactly one child inheriting the full parent
	// box.
	ArrangeSingle

	// ArrangeLayers overlaps all children, each independently resolved
	// against the same parent box.
	ArrangeLayers

	// ArrangeRows stacks children vertically, partitioning the parent
	// height with uniform spacing between them.
	ArrangeRows

	// ArrangeColumns stacks children horizontally, partitioning the
	// parent width with uniform spacing between them.
	ArrangeColumns
)

// Arrangement is the children value of an element. The zero value is
// ArrangeNone.
type Arrangement struct {
	Kind ArrangementKind

	// Keys are the child element keys, in layout order.
	Keys []ElementKey

	// Spacing is the gap between adjacent children in rows and columns,
	// resolved against the partitioned axis.
	Spacing Size
}

// Single arranges exactly one child inheriting the full parent box.
func Single(child ElementKey) Arrangement {
	return Arrangement{Kind: ArrangeSingle, Keys: []ElementKey{child}}
}

// Layers overlaps all children against the same parent box.
func Layers(children ...ElementKey) Arrangement {
	return Arrangement{Kind: ArrangeLayers, Keys: children}
}

// Rows stacks children vertically with uniform spacing.
func Rows(spacing Size, children ...ElementKey) Arrangement {
	return Arrangement{Kind: ArrangeRows, Keys: children, Spacing: spacing}
}

// Columns stacks children horizontally with uniform spacing.
func Columns(spacing Size, children ...ElementKey) Arrangement {
	return Arrangement{Kind: ArrangeColumns, Keys: children, Spacing: spacing}
}

// Element is a node in the UI tree: a style sheet, an arrangement of
// children, an optional renderable representation, and event reactions.
//
// Elements are created detached, configured with the With* builders,
// and attached to a tree with [Tree.Add].
type Element struct {
	// Label is an optional diagnostic name. It never affects layout.
	Label string

	renderable Renderable
	style      *StyleSheet
	listeners  map[EventKind]any
	children   Arrangement
}

// NewElement creates an element with a default style sheet and no
// children.
func NewElement() *Element {
	return &Element{
		style:     NewStyleSheet(),
		listeners: make(map[EventKind]any),
	}
}

// WithLabel sets the diagnostic label.
func (e *Element) WithLabel(label string) *Element {
	e.Label = label
	return e
}

// WithStyle replaces the element's style sheet.
func (e *Element) WithStyle(s *StyleSheet) *Element {
	if s != nil {
		e.style = s
	}
	return e
}

// WithRenderable attaches a renderable representation.
func (e *Element) WithRenderable(r Renderable) *Element {
	e.renderable = r
	return e
}

// WithListener registers an opaque reaction for an event kind.
// The reaction value is returned to the host verbatim when the event
// dispatch collaborator matches the element.
func (e *Element) WithListener(kind EventKind, reaction any) *Element {
	e.listeners[kind] = reaction
	return e
}

// WithChildren sets the element's arrangement.
func (e *Element) WithChildren(c Arrangement) *Element {
	e.children = c
	return e
}

// Style returns the element's style sheet.
func (e *Element) Style() *StyleSheet {
	return e.style
}

// Renderable returns the attached renderable representation, or nil.
func (e *Element) Renderable() Renderable {
	return e.renderable
}

// Children returns the element's arrangement.
func (e *Element) Children() Arrangement {
	return e.children
}

// SetChildren replaces the element's arrangement.
func (e *Element) SetChildren(c Arrangement) {
	e.children = c
}

// Listener returns the reaction registered for an event kind.
func (e *Element) Listener(kind EventKind) (any, bool) {
	r, ok := e.listeners[kind]
	return r, ok
}

package gui

// Flags marks which render-relevant style state changed since the last
// render synchronization. Every mutable accessor on StyleSheet sets the
// flags for exactly the state it exposes, unconditionally. Flags are
// cleared only by the render-sync collaborator, never by the layout
// pass.
type Flags struct {
	DirtyColor       bool
	DirtyTexture     bool
	DirtyLinGradient bool
	DirtyRadGradient bool
	DirtyText        bool
	DirtyTransform   bool
	DirtyBorder      bool

	// RecalcTransform marks the declared transform rules changed and
	// the resolved transform must be recomputed on the next pass.
	RecalcTransform bool
}

// allDirty returns flags with every bit set. New style sheets start
// fully dirty so the first sync pushes everything.
func allDirty() Flags {
	return Flags{
		DirtyColor:       true,
		DirtyTexture:     true,
		DirtyLinGradient: true,
		DirtyRadGradient: true,
		DirtyText:        true,
		DirtyTransform:   true,
		DirtyBorder:      true,
		RecalcTransform:  true,
	}
}

// Background describes an element's background layers.
//
// Each layer can be applied once. Rendering order:
//  1. Texture
//  2. Linear gradient
//  3. Radial gradient
//  4. Color, last, usable as a tint over the other layers
//
// The color is rgba(0, 0, 0, 0) by default.
type Background struct {
	Color       RGBA
	Texture     Texture
	LinGradient *LinearGradient
	RadGradient *RadialGradient
}

// Border mirrors Background with width and radius rules.
// Declared; no resolver consumes the width and radius rules yet.
type Border struct {
	Background Background

	Width    Size
	MinWidth Size
	MaxWidth Size

	Radius    Size
	MinRadius Size
	MaxRadius Size

	Visible bool
}

// Text describes an element's text styling. Shaping and measurement are
// host concerns; the style sheet only carries the declared rules.
type Text struct {
	// Size of the glyphs, resolved like a height rule.
	Size Size

	// Color of the glyphs.
	Color RGBA

	// Justify anchors the text block within the element.
	Justify Position

	// Fit shrinks the text to stay inside the element's resolved box.
	Fit bool
}

// StyleSheet is the declarative rule set controlling an element's size,
// position, background, border, text, and visibility.
//
// A style sheet is created with full defaults when an element is
// created and lives as long as the element that owns it. Read accessors
// return copies; mutable accessors return an exclusive handle to the
// sub-record and mark the matching dirty flags on entry, even if the
// caller ends up writing the same value back. Callers that need to
// avoid redundant GPU updates must compare before mutating.
type StyleSheet struct {
	transform  Transform
	background Background
	border     Border
	text       Text
	visible    bool
	flags      Flags
}

// NewStyleSheet creates a style sheet with defaults: width and height
// Fill, position and alignment Center, visible, all dirty flags set.
func NewStyleSheet() *StyleSheet {
	return &StyleSheet{
		transform: Transform{
			Width:  Fill,
			Height: Fill,
		},
		visible: true,
		flags:   allDirty(),
	}
}

// Transform returns a copy of the declared transform rules.
func (s *StyleSheet) Transform() Transform {
	return s.transform
}

// TransformMut returns the transform rules for mutation and marks the
// transform dirty and in need of re-resolution.
func (s *StyleSheet) TransformMut() *Transform {
	s.flags.DirtyTransform = true
	s.flags.RecalcTransform = true
	return &s.transform
}

// BackgroundColor returns the background tint color.
func (s *StyleSheet) BackgroundColor() RGBA {
	return s.background.Color
}

// BackgroundColorMut returns the background color for mutation and
// marks it dirty.
func (s *StyleSheet) BackgroundColorMut() *RGBA {
	s.flags.DirtyColor = true
	return &s.background.Color
}

// BackgroundTexture returns the background texture, or nil.
func (s *StyleSheet) BackgroundTexture() Texture {
	return s.background.Texture
}

// SetBackgroundTexture replaces the background texture and marks it
// dirty. The new texture is retained and the previous one released;
// pass nil to clear.
func (s *StyleSheet) SetBackgroundTexture(tex Texture) {
	s.flags.DirtyTexture = true
	if tex != nil {
		tex.Retain()
	}
	if old := s.background.Texture; old != nil {
		old.Release()
	}
	s.background.Texture = tex
}

// BackgroundLinGradient returns the linear gradient layer, or nil.
func (s *StyleSheet) BackgroundLinGradient() *LinearGradient {
	return s.background.LinGradient
}

// SetBackgroundLinGradient replaces the linear gradient layer and marks
// it dirty. Pass nil to clear.
func (s *StyleSheet) SetBackgroundLinGradient(g *LinearGradient) {
	s.flags.DirtyLinGradient = true
	s.background.LinGradient = g
}

// BackgroundRadGradient returns the radial gradient layer, or nil.
func (s *StyleSheet) BackgroundRadGradient() *RadialGradient {
	return s.background.RadGradient
}

// SetBackgroundRadGradient replaces the radial gradient layer and marks
// it dirty. Pass nil to clear.
func (s *StyleSheet) SetBackgroundRadGradient(g *RadialGradient) {
	s.flags.DirtyRadGradient = true
	s.background.RadGradient = g
}

// Text returns a copy of the text rules.
func (s *StyleSheet) Text() Text {
	return s.text
}

// TextMut returns the text rules for mutation and marks them dirty.
func (s *StyleSheet) TextMut() *Text {
	s.flags.DirtyText = true
	return &s.text
}

// Border returns a copy of the border rules.
func (s *StyleSheet) Border() Border {
	return s.border
}

// BorderMut returns the border rules for mutation and marks them dirty.
func (s *StyleSheet) BorderMut() *Border {
	s.flags.DirtyBorder = true
	return &s.border
}

// Visible reports whether the element and its children are rendered.
func (s *StyleSheet) Visible() bool {
	return s.visible
}

// SetVisible sets the element's visibility.
func (s *StyleSheet) SetVisible(visible bool) {
	s.visible = visible
}

// Dirty returns the dirty-flag bundle. The render-sync collaborator
// reads it to decide what to push and clears the flags it consumed.
func (s *StyleSheet) Dirty() *Flags {
	return &s.flags
}

package gui

// Transform is the declarative size and position rule set of an element.
type Transform struct {
	// Rotation of the element. Declared but not resolved by the
	// propagation pass; see Rotation.
	Rotation Rotation

	// Position anchors the element within its parent.
	Position Position

	// Align offsets the element relative to its own resolved extent,
	// composed after the anchor.
	Align Position

	// Width of the element. Clamped by MinWidth and MaxWidth.
	Width    Size
	MinWidth Size
	MaxWidth Size

	// Height of the element. Clamped by MinHeight and MaxHeight.
	Height    Size
	MinHeight Size
	MaxHeight Size

	// Margin is the space between the element and its parent,
	// subtracted from the resolved extent before clamping.
	Margin Size

	// Padding is the space between the element and its children.
	// Declared; no resolver consumes it yet.
	Padding Size
}

// ResolveWidth resolves the declared width against the parent and
// viewport extents. The margin is subtracted before clamping; a min
// bound that exceeds the max bound wins.
func (t *Transform) ResolveWidth(parentW, viewportW float32) float32 {
	w := t.Width.base(parentW, viewportW)
	w -= t.Margin.inset(parentW, viewportW)
	if max := t.MaxWidth.upperBound(parentW, viewportW); w > max {
		w = max
	}
	if min := t.MinWidth.lowerBound(parentW, viewportW); w < min {
		w = min
	}
	return w
}

// ResolveHeight resolves the declared height against the parent and
// viewport extents. Symmetric to ResolveWidth.
func (t *Transform) ResolveHeight(parentH, viewportH float32) float32 {
	h := t.Height.base(parentH, viewportH)
	h -= t.Margin.inset(parentH, viewportH)
	if max := t.MaxHeight.upperBound(parentH, viewportH); h > max {
		h = max
	}
	if min := t.MinHeight.lowerBound(parentH, viewportH); h < min {
		h = min
	}
	return h
}

// ResolvePosition composes the anchor offset within the parent box with
// the self-alignment offset against the element's own resolved extent.
// The parent box is given by its center and extents; w and h are the
// element's resolved width and height. Both offsets are additive: the
// two-stage composition lets an element anchor at one edge while
// aligning itself to another.
func (t *Transform) ResolvePosition(parentX, parentY, parentW, parentH, w, h float32) (x, y float32) {
	x = t.Position.anchorX(parentX, parentW) + t.Align.alignX(w)
	y = t.Position.anchorY(parentY, parentH) + t.Align.alignY(h)
	return x, y
}

// NodeTransform is an element's resolved absolute transform.
//
// Node transforms are recomputed for the whole visible tree when the
// entry is replaced or the viewport resizes.
type NodeTransform struct {
	// Position is the center of the element's box in viewport pixels.
	Position Point

	// Scale is the resolved width and height in pixels.
	Scale Point

	// Rotation in radians. Always 0 in the current resolver.
	Rotation float32
}

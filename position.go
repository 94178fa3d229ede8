package gui

// PositionKind selects one of the eight compass anchors, the center,
// or a custom offset rule.
type PositionKind uint8

const (
	// PositionCenter is the default: no offset from the parent center.
	PositionCenter PositionKind = iota
	PositionTop
	PositionTopLeft
	PositionTopRight
	PositionRight
	PositionBottom
	PositionBottomRight
	PositionBottomLeft
	PositionLeft

	// PositionCustom applies the X and Y size rules as offsets.
	PositionCustom
)

// Position locates an element's reference point. It is used twice per
// element: as the anchor within the parent box, and as the element's
// self-alignment against its own resolved extent.
//
// The zero value is PositionCenter.
type Position struct {
	Kind PositionKind

	// X and Y carry the offset rules for PositionCustom.
	// SizePixel offsets in pixels; SizePercent offsets relative
	// to the reference extent (parent for anchors, self for alignment).
	X, Y Size
}

// Anchor returns a compass or center position.
func Anchor(kind PositionKind) Position {
	return Position{Kind: kind}
}

// Custom returns a position with arbitrary X/Y offset rules.
func Custom(x, y Size) Position {
	return Position{Kind: PositionCustom, X: x, Y: y}
}

// Normalized returns the position as a point in the unit square,
// with (0,0) the top-left corner and (1,1) the bottom-right corner.
func (p Position) Normalized() [2]float32 {
	switch p.Kind {
	case PositionTop:
		return [2]float32{0.5, 0.0}
	case PositionTopLeft:
		return [2]float32{0.0, 0.0}
	case PositionTopRight:
		return [2]float32{1.0, 0.0}
	case PositionRight:
		return [2]float32{1.0, 0.5}
	case PositionBottom:
		return [2]float32{0.5, 1.0}
	case PositionBottomRight:
		return [2]float32{1.0, 1.0}
	case PositionBottomLeft:
		return [2]float32{0.0, 1.0}
	case PositionLeft:
		return [2]float32{0.0, 0.5}
	case PositionCustom:
		n := [2]float32{0.5, 0.5}
		switch p.X.Rule {
		case SizePixel:
			n[0] = p.X.Value
		case SizePercent:
			n[0] = p.X.Value / 100
		}
		switch p.Y.Rule {
		case SizePixel:
			n[1] = p.Y.Value
		case SizePercent:
			n[1] = p.Y.Value / 100
		}
		return n
	default: // PositionCenter
		return [2]float32{0.5, 0.5}
	}
}

// anchorX returns the horizontal anchor coordinate within a parent box
// centered at parentX with extent parentW. Compass points move by half
// the parent extent; custom rules offset from the parent center.
func (p Position) anchorX(parentX, parentW float32) float32 {
	switch p.Kind {
	case PositionBottomLeft, PositionLeft, PositionTopLeft:
		return parentX - parentW/2
	case PositionBottomRight, PositionRight, PositionTopRight:
		return parentX + parentW/2
	case PositionCustom:
		switch p.X.Rule {
		case SizePixel:
			return parentX + p.X.Value
		case SizePercent:
			return parentX + parentW*(p.X.Value/100)
		default:
			return parentX
		}
	default: // Top, Bottom, Center
		return parentX
	}
}

// anchorY returns the vertical anchor coordinate within a parent box
// centered at parentY with extent parentH.
func (p Position) anchorY(parentY, parentH float32) float32 {
	switch p.Kind {
	case PositionTopLeft, PositionTop, PositionTopRight:
		return parentY - parentH/2
	case PositionBottomLeft, PositionBottom, PositionBottomRight:
		return parentY + parentH/2
	case PositionCustom:
		switch p.Y.Rule {
		case SizePixel:
			return parentY + p.Y.Value
		case SizePercent:
			return parentY + parentH*(p.Y.Value/100)
		default:
			return parentY
		}
	default: // Left, Right, Center
		return parentY
	}
}

// alignX returns the horizontal self-alignment offset for an element of
// resolved width w. The sign convention is opposite to the anchor's:
// left alignment pushes the element right so its edge meets the anchor.
func (p Position) alignX(w float32) float32 {
	switch p.Kind {
	case PositionBottomLeft, PositionLeft, PositionTopLeft:
		return w / 2
	case PositionBottomRight, PositionRight, PositionTopRight:
		return -w / 2
	case PositionCustom:
		switch p.X.Rule {
		case SizePixel:
			return p.X.Value
		case SizePercent:
			return w * (p.X.Value / 100)
		default:
			return 0
		}
	default:
		return 0
	}
}

// alignY returns the vertical self-alignment offset for an element of
// resolved height h.
func (p Position) alignY(h float32) float32 {
	switch p.Kind {
	case PositionTopLeft, PositionTop, PositionTopRight:
		return h / 2
	case PositionBottomLeft, PositionBottom, PositionBottomRight:
		return -h / 2
	case PositionCustom:
		switch p.Y.Rule {
		case SizePixel:
			return p.Y.Value
		case SizePercent:
			return h * (p.Y.Value / 100)
		default:
			return 0
		}
	default:
		return 0
	}
}

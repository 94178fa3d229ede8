package gui

// ColorPoint pairs a position rule with a color. Gradient endpoints are
// declared in the same position algebra as anchors, so a gradient can
// run corner-to-corner without knowing the element's resolved extent.
type ColorPoint struct {
	Position Position
	Color    RGBA
}

// LinearGradient is a declarative linear color transition across an
// element's background or border.
//
// The layout pass carries gradients unresolved; render backends sample
// them against the element's resolved box.
type LinearGradient struct {
	Start ColorPoint
	End   ColorPoint
}

// NewLinearGradient creates a linear gradient between two color points.
func NewLinearGradient(start, end ColorPoint) *LinearGradient {
	return &LinearGradient{Start: start, End: end}
}

// RadialGradient is a declarative radial color transition. Center is
// the inner color; Edge sets the outer color and the radius reference
// point.
type RadialGradient struct {
	Center ColorPoint
	Edge   ColorPoint
}

// NewRadialGradient creates a radial gradient between two color points.
func NewRadialGradient(center, edge ColorPoint) *RadialGradient {
	return &RadialGradient{Center: center, Edge: edge}
}

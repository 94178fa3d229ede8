package gui

import "math"

// SizeRule selects how a Size value is interpreted when a dimension,
// bound, or margin is resolved against its parent and the viewport.
type SizeRule uint8

const (
	// SizeNone defers to the parent value. As a min/max/margin rule it
	// means "unset".
	SizeNone SizeRule = iota

	// SizeFill consumes the full available parent dimension.
	SizeFill

	// SizePixel is an absolute extent in pixels.
	SizePixel

	// SizePercent is a percentage of the parent dimension.
	SizePercent

	// SizeAbsFill consumes the full viewport dimension, ignoring the parent.
	SizeAbsFill

	// SizeAbsPercent is a percentage of the viewport dimension.
	SizeAbsPercent
)

// Size is a declarative size rule. The same algebra is reused for
// width, height, min/max bounds, margins and linear spacing.
//
// The zero value is SizeNone.
type Size struct {
	Rule  SizeRule
	Value float32
}

// Convenience rules without a payload.
var (
	// None defers to the parent value.
	None = Size{Rule: SizeNone}

	// Fill consumes the full parent dimension.
	Fill = Size{Rule: SizeFill}

	// AbsFill consumes the full viewport dimension.
	AbsFill = Size{Rule: SizeAbsFill}
)

// Pixels returns an absolute size rule in pixels.
func Pixels(v float32) Size {
	return Size{Rule: SizePixel, Value: v}
}

// Percent returns a size rule relative to the parent dimension.
func Percent(v float32) Size {
	return Size{Rule: SizePercent, Value: v}
}

// AbsPercent returns a size rule relative to the viewport dimension.
func AbsPercent(v float32) Size {
	return Size{Rule: SizeAbsPercent, Value: v}
}

// base resolves the rule as a width/height. SizeNone and SizeFill both
// fall back to the parent extent.
func (s Size) base(parent, viewport float32) float32 {
	switch s.Rule {
	case SizePixel:
		return s.Value
	case SizePercent:
		return parent * (s.Value / 100)
	case SizeAbsFill:
		return viewport
	case SizeAbsPercent:
		return viewport * (s.Value / 100)
	default: // SizeNone, SizeFill
		return parent
	}
}

// lowerBound resolves the rule as a minimum. Unset rules yield 0.
func (s Size) lowerBound(parent, viewport float32) float32 {
	switch s.Rule {
	case SizePixel:
		return s.Value
	case SizePercent:
		return parent * (s.Value / 100)
	case SizeAbsFill:
		return viewport
	case SizeAbsPercent:
		return viewport * (s.Value / 100)
	default:
		return 0
	}
}

// upperBound resolves the rule as a maximum. Unset rules yield +Inf.
func (s Size) upperBound(parent, viewport float32) float32 {
	switch s.Rule {
	case SizePixel:
		return s.Value
	case SizePercent:
		return parent * (s.Value / 100)
	case SizeAbsFill:
		return viewport
	case SizeAbsPercent:
		return viewport * (s.Value / 100)
	default:
		return float32(math.Inf(1))
	}
}

// inset resolves the rule as a margin or spacing. Unset and fill rules
// yield 0; SizeAbsFill has no inset meaning and also yields 0.
func (s Size) inset(parent, viewport float32) float32 {
	switch s.Rule {
	case SizePixel:
		return s.Value
	case SizePercent:
		return parent * (s.Value / 100)
	case SizeAbsPercent:
		return viewport * (s.Value / 100)
	default:
		return 0
	}
}

// isExplicit reports whether the rule requests a concrete extent on its
// own, as opposed to filling whatever the parent hands down. Linear
// arrangements size explicit children first and split the remainder
// among the rest.
func (s Size) isExplicit() bool {
	switch s.Rule {
	case SizePixel, SizePercent, SizeAbsFill, SizeAbsPercent:
		return true
	default:
		return false
	}
}

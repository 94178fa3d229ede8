package gui

// RotationRule selects how a Rotation value is interpreted.
type RotationRule uint8

const (
	// RotationNone inherits the parent rotation.
	RotationNone RotationRule = iota

	// RotationAbsNone ignores the parent and applies no rotation.
	RotationAbsNone

	RotationDeg
	RotationRad
	RotationPercent

	RotationAbsDeg
	RotationAbsRad
	RotationAbsPercent
)

// Rotation is a declarative rotation rule relative to the parent
// (or to the viewport for the Abs variants).
//
// Rotation is carried through the style model but not yet resolved by
// the propagation pass: every resolved transform is emitted with
// rotation 0. The rule is retained so that declared styles survive
// round-trips unchanged.
type Rotation struct {
	Rule  RotationRule
	Value float32
}

// Degrees returns a rotation rule in degrees relative to the parent.
func Degrees(v float32) Rotation {
	return Rotation{Rule: RotationDeg, Value: v}
}

// Radians returns a rotation rule in radians relative to the parent.
func Radians(v float32) Rotation {
	return Rotation{Rule: RotationRad, Value: v}
}

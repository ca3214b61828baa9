// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geom

// Axis names the spine axis of an implicit surface.
type Axis uint8

const (
	// AxisX orients the spine along +X.
	AxisX Axis = iota
	// AxisY orients the spine along +Y.
	AxisY
	// AxisZ orients the spine along +Z. Generators work in this space.
	AxisZ
)

// String returns the axis token: "X", "Y" or "Z".
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "Unknown"
	}
}

// Valid reports whether a is one of AxisX, AxisY, AxisZ.
func (a Axis) Valid() bool {
	return a <= AxisZ
}

// ParseAxis converts an axis token to an Axis. Tokens are case-sensitive;
// only "X", "Y" and "Z" are accepted.
func ParseAxis(token string) (Axis, bool) {
	switch token {
	case "X":
		return AxisX, true
	case "Y":
		return AxisY, true
	case "Z":
		return AxisZ, true
	default:
		return AxisZ, false
	}
}

// Basis returns the fixed transform that carries generator space, where Z
// is the spine, into local space with the spine on axis. The map is a
// cyclic permutation of coordinates, so handedness and winding survive:
//
//	AxisZ: (x, y, z) -> (x, y, z)
//	AxisX: (x, y, z) -> (z, x, y)
//	AxisY: (x, y, z) -> (y, z, x)
func Basis(axis Axis) Matrix4 {
	m := Identity4()
	switch axis {
	case AxisX:
		m.SetRow(0, 0, 1, 0, 0)
		m.SetRow(1, 0, 0, 1, 0)
		m.SetRow(2, 1, 0, 0, 0)
	case AxisY:
		m.SetRow(0, 0, 0, 1, 0)
		m.SetRow(1, 1, 0, 0, 0)
		m.SetRow(2, 0, 1, 0, 0)
	}
	return m
}

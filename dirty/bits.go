// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package dirty defines the change-tracking flags exchanged between scene
// adapters and the render index.
//
// A Bits value is a set of independent flags. Each flag names a category of
// derived renderer state that must be recomputed after an edit. Adapters
// produce Bits from attribute-change notifications and accumulate them
// during per-frame variability passes; the render index consumes them.
package dirty

import "strings"

// Bits is a set of renderer-state invalidation flags.
type Bits uint32

// Flag values. The numbering follows the render index convention so that a
// Bits value can be handed to an index unchanged.
const (
	Clean Bits = 0

	InitRepr Bits = 1 << 0
	Varying  Bits = 1 << 1

	DirtyPrimID          Bits = 1 << 2
	DirtyExtent          Bits = 1 << 3
	DirtyDisplayStyle    Bits = 1 << 4
	DirtyPoints          Bits = 1 << 5
	DirtyPrimvar         Bits = 1 << 6
	DirtyMaterialID      Bits = 1 << 7
	DirtyTopology        Bits = 1 << 8
	DirtyTransform       Bits = 1 << 9
	DirtyVisibility      Bits = 1 << 10
	DirtyNormals         Bits = 1 << 11
	DirtyDoubleSided     Bits = 1 << 12
	DirtyCullStyle       Bits = 1 << 13
	DirtySubdivTags      Bits = 1 << 14
	DirtyWidths          Bits = 1 << 15
	DirtyInstancer       Bits = 1 << 16
	DirtyInstanceIndex   Bits = 1 << 17
	DirtyRepr            Bits = 1 << 18
	DirtyRenderTag       Bits = 1 << 19
	DirtyComputationDesc Bits = 1 << 20
	DirtyCategories      Bits = 1 << 21

	// AllDirty marks every category stale. Varying is bookkeeping, not
	// state, and is excluded.
	AllDirty Bits = ^Varying
)

var flagNames = []struct {
	bit  Bits
	name string
}{
	{InitRepr, "InitRepr"},
	{Varying, "Varying"},
	{DirtyPrimID, "PrimID"},
	{DirtyExtent, "Extent"},
	{DirtyDisplayStyle, "DisplayStyle"},
	{DirtyPoints, "Points"},
	{DirtyPrimvar, "Primvar"},
	{DirtyMaterialID, "MaterialID"},
	{DirtyTopology, "Topology"},
	{DirtyTransform, "Transform"},
	{DirtyVisibility, "Visibility"},
	{DirtyNormals, "Normals"},
	{DirtyDoubleSided, "DoubleSided"},
	{DirtyCullStyle, "CullStyle"},
	{DirtySubdivTags, "SubdivTags"},
	{DirtyWidths, "Widths"},
	{DirtyInstancer, "Instancer"},
	{DirtyInstanceIndex, "InstanceIndex"},
	{DirtyRepr, "Repr"},
	{DirtyRenderTag, "RenderTag"},
	{DirtyComputationDesc, "ComputationDesc"},
	{DirtyCategories, "Categories"},
}

// Has reports whether every flag in mask is set in b.
func (b Bits) Has(mask Bits) bool {
	return b&mask == mask
}

// Any reports whether at least one flag in mask is set in b.
func (b Bits) Any(mask Bits) bool {
	return b&mask != 0
}

// IsClean reports whether no flag is set.
func (b Bits) IsClean() bool {
	return b == Clean
}

// String returns the set flag names joined by "|", "Clean" for an empty
// set and "AllDirty" when every category is stale.
func (b Bits) String() string {
	switch {
	case b == Clean:
		return "Clean"
	case b.Has(AllDirty):
		if b.Has(Varying) {
			return "AllDirty|Varying"
		}
		return "AllDirty"
	}

	var names []string
	rest := b
	for _, f := range flagNames {
		if b&f.bit != 0 {
			names = append(names, f.name)
			rest &^= f.bit
		}
	}
	if rest != 0 {
		names = append(names, "Unknown")
	}
	return strings.Join(names, "|")
}

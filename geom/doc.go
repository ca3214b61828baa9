// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package geom generates renderer-facing meshes for implicit surfaces.
//
// # Capsules
//
// GeneratePoints and GenerateTopology build a capsule in a generator space
// where the spine runs along +Z. Basis returns the fixed transform that
// reorients that space for an authored spine axis; pass it to
// GeneratePoints and every point is transformed before return.
//
// The point count and the topology depend only on the angular and per-cap
// axial resolution, never on radii or height. CapsuleTopology therefore
// returns a single value built once per process and shared by every
// capsule:
//
//	basis := geom.Basis(geom.AxisX)
//	points := geom.CapsulePoints(1.0, 0.5, 4.0, &basis)
//	topo := geom.CapsuleTopology()
//
// # GPU upload
//
// PositionLayout, Triangulate, IndexFormatFor and DrawPrimitiveState
// describe the same mesh in github.com/gogpu/gputypes terms, and
// NewDrawBatch packs it for buffer upload.
package geom

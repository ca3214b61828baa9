// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geom

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/gogpu/gputypes"
)

// positionStride is the byte size of one packed Vec3f.
const positionStride = 3 * 4

// PositionLayout describes a tightly packed Float32x3 position stream bound
// at the given shader location, matching the output of PackPositions.
func PositionLayout(location uint32) gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: positionStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{
				Format:         gputypes.VertexFormatFloat32x3,
				Offset:         0,
				ShaderLocation: location,
			},
		},
	}
}

// DrawPrimitiveState returns the primitive assembly state for triangulated
// meshes: triangle lists, counter-clockwise front faces (right-handed
// topology), back faces culled.
func DrawPrimitiveState() gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology:  gputypes.PrimitiveTopologyTriangleList,
		FrontFace: gputypes.FrontFaceCCW,
		CullMode:  gputypes.CullModeBack,
	}
}

// IndexFormatFor returns the narrowest index format that can address
// numPoints vertices.
func IndexFormatFor(numPoints int) gputypes.IndexFormat {
	if numPoints <= math.MaxUint16+1 {
		return gputypes.IndexFormatUint16
	}
	return gputypes.IndexFormatUint32
}

// Triangulate fans every face into triangles and returns a triangle-list
// index buffer. Winding is preserved. Faces with fewer than three vertices
// are dropped.
func (t MeshTopology) Triangulate() []uint32 {
	n := 0
	for _, c := range t.FaceVertexCounts {
		if c >= 3 {
			n += 3 * int(c-2)
		}
	}

	out := make([]uint32, 0, n)
	base := 0
	for _, c := range t.FaceVertexCounts {
		count := int(c)
		if base+count > len(t.FaceVertexIndices) {
			break
		}
		if count >= 3 {
			v0 := uint32(t.FaceVertexIndices[base])
			for k := 1; k < count-1; k++ {
				out = append(out,
					v0,
					uint32(t.FaceVertexIndices[base+k]),
					uint32(t.FaceVertexIndices[base+k+1]))
			}
		}
		base += count
	}
	return out
}

var capsuleTriangles = sync.OnceValue(func() []uint32 {
	return CapsuleTopology().Triangulate()
})

// CapsuleTriangles returns the triangulated CapsuleTopology. Like the
// topology it is built once and shared; callers must not modify it.
func CapsuleTriangles() []uint32 {
	return capsuleTriangles()
}

// PackPositions encodes points as little-endian float32 triples, the layout
// described by PositionLayout.
func PackPositions(points []Vec3f) []byte {
	buf := make([]byte, len(points)*positionStride)
	for i, p := range points {
		o := i * positionStride
		binary.LittleEndian.PutUint32(buf[o:], math.Float32bits(p.X))
		binary.LittleEndian.PutUint32(buf[o+4:], math.Float32bits(p.Y))
		binary.LittleEndian.PutUint32(buf[o+8:], math.Float32bits(p.Z))
	}
	return buf
}

// PackIndices encodes a triangle-list index buffer in format. Indices that
// do not fit a Uint16 buffer are truncated, so pick format with
// IndexFormatFor.
func PackIndices(indices []uint32, format gputypes.IndexFormat) []byte {
	size := int(format.Size())
	if size == 0 {
		return nil
	}
	buf := make([]byte, len(indices)*size)
	for i, v := range indices {
		if size == 2 {
			binary.LittleEndian.PutUint16(buf[i*2:], uint16(v))
		} else {
			binary.LittleEndian.PutUint32(buf[i*4:], v)
		}
	}
	return buf
}

// DrawBatch is a GPU-ready encoding of one mesh: vertex and index bytes
// plus the pipeline state needed to draw them.
type DrawBatch struct {
	Vertices    []byte
	Indices     []byte
	IndexCount  uint32
	IndexFormat gputypes.IndexFormat
	Layout      gputypes.VertexBufferLayout
	Primitive   gputypes.PrimitiveState
}

// NewDrawBatch packs points and a triangle-list index buffer into a
// DrawBatch with positions bound at shader location 0.
func NewDrawBatch(points []Vec3f, triangles []uint32) DrawBatch {
	format := IndexFormatFor(len(points))
	return DrawBatch{
		Vertices:    PackPositions(points),
		Indices:     PackIndices(triangles, format),
		IndexCount:  uint32(len(triangles)),
		IndexFormat: format,
		Layout:      PositionLayout(0),
		Primitive:   DrawPrimitiveState(),
	}
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geom

import "sync"

// Subdivision scheme and orientation tokens carried by MeshTopology.
const (
	SchemeCatmullClark     = "catmullClark"
	OrientationRightHanded = "rightHanded"
)

// Resolution of the capsule mesh handed to the renderer. Every capsule uses
// the same values, so every capsule shares one topology.
const (
	NumRadial   = 10
	NumCapAxial = 4
)

// MeshTopology is the face structure of a polygonal mesh: the number of
// vertices of each face and the point indices of all faces, concatenated.
//
// Values returned by CapsuleTopology are shared process-wide. Callers must
// treat the slices as read-only.
type MeshTopology struct {
	Scheme            string
	Orientation       string
	FaceVertexCounts  []int32
	FaceVertexIndices []int32
}

// NumFaces returns the number of faces.
func (t MeshTopology) NumFaces() int {
	return len(t.FaceVertexCounts)
}

// NumPoints returns one more than the largest referenced point index.
func (t MeshTopology) NumPoints() int {
	n := int32(-1)
	for _, i := range t.FaceVertexIndices {
		n = max(n, i)
	}
	return int(n) + 1
}

// Equal reports whether t and o describe the same faces.
func (t MeshTopology) Equal(o MeshTopology) bool {
	if t.Scheme != o.Scheme || t.Orientation != o.Orientation ||
		len(t.FaceVertexCounts) != len(o.FaceVertexCounts) ||
		len(t.FaceVertexIndices) != len(o.FaceVertexIndices) {
		return false
	}
	for i, c := range t.FaceVertexCounts {
		if o.FaceVertexCounts[i] != c {
			return false
		}
	}
	for i, v := range t.FaceVertexIndices {
		if o.FaceVertexIndices[i] != v {
			return false
		}
	}
	return true
}

// GenerateTopology returns the faces of a capsule built by GeneratePoints
// with the same resolution: a triangle fan at each pole and quad strips
// between consecutive rings. Faces wind counter-clockwise seen from
// outside. The result depends only on the resolution.
func GenerateTopology(numRadial, numCapAxial int, closedSweep bool) MeshTopology {
	topo := MeshTopology{
		Scheme:      SchemeCatmullClark,
		Orientation: OrientationRightHanded,
	}
	numPoints := ComputeNumPoints(numRadial, numCapAxial, closedSweep)
	if numPoints == 0 {
		return topo
	}

	ringLen := ringPointCount(numRadial, closedSweep)
	numRings := 2 * numCapAxial
	numQuads := (numRings - 1) * numRadial
	numTris := 2 * numRadial

	topo.FaceVertexCounts = make([]int32, 0, numTris+numQuads)
	topo.FaceVertexIndices = make([]int32, 0, 3*numTris+4*numQuads)

	ringStart := func(r int) int { return 1 + r*ringLen }
	next := func(i int) int {
		if closedSweep {
			return (i + 1) % ringLen
		}
		return i + 1
	}
	face := func(idx ...int) {
		topo.FaceVertexCounts = append(topo.FaceVertexCounts, int32(len(idx)))
		for _, v := range idx {
			topo.FaceVertexIndices = append(topo.FaceVertexIndices, int32(v))
		}
	}

	bottomPole := 0
	first := ringStart(0)
	for i := 0; i < numRadial; i++ {
		face(bottomPole, first+next(i), first+i)
	}

	for r := 0; r < numRings-1; r++ {
		lo, hi := ringStart(r), ringStart(r+1)
		for i := 0; i < numRadial; i++ {
			face(lo+i, lo+next(i), hi+next(i), hi+i)
		}
	}

	topPole := numPoints - 1
	last := ringStart(numRings - 1)
	for i := 0; i < numRadial; i++ {
		face(last+i, last+next(i), topPole)
	}

	return topo
}

// capsuleTopology builds the shared topology on first use. sync.OnceValue
// makes concurrent first calls wait for a single construction; later
// calls read the stored value without locking.
var capsuleTopology = sync.OnceValue(func() MeshTopology {
	return GenerateTopology(NumRadial, NumCapAxial, true)
})

// CapsuleTopology returns the topology shared by every capsule at the
// NumRadial and NumCapAxial resolution with a closed sweep. It is computed
// at most once per process and safe for concurrent use.
func CapsuleTopology() MeshTopology {
	return capsuleTopology()
}

// CapsulePoints generates points at the shared capsule resolution with a
// full revolution, matching CapsuleTopology.
func CapsulePoints(bottomRadius, topRadius, height float64, basis *Matrix4) []Vec3f {
	return GeneratePoints(NumRadial, NumCapAxial, bottomRadius, topRadius, height, 360, basis)
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geom

import "math"

// Minimum resolutions accepted by the capsule generator. Below these the
// counting functions return 0 and the generators produce nothing.
const (
	MinNumRadial   = 3
	MinNumCapAxial = 1
)

// sweepEpsilon is the tolerance for treating a sweep as a full revolution.
const sweepEpsilon = 1e-6

// IsClosedSweep reports whether sweepDegrees describes a full revolution,
// in which case the seam is shared and rings do not repeat their first point.
func IsClosedSweep(sweepDegrees float64) bool {
	return math.Abs(math.Abs(clampSweep(sweepDegrees))-2*math.Pi) < sweepEpsilon
}

func clampSweep(sweepDegrees float64) float64 {
	rad := sweepDegrees * math.Pi / 180
	return min(max(rad, -2*math.Pi), 2*math.Pi)
}

func ringPointCount(numRadial int, closedSweep bool) int {
	if closedSweep {
		return numRadial
	}
	return numRadial + 1
}

// ComputeNumPoints returns the number of points GeneratePoints emits for the
// given resolution. It depends only on the resolution, never on radii or
// height.
func ComputeNumPoints(numRadial, numCapAxial int, closedSweep bool) int {
	if numRadial < MinNumRadial || numCapAxial < MinNumCapAxial {
		return 0
	}
	return 2*numCapAxial*ringPointCount(numRadial, closedSweep) + 2
}

// GeneratePoints returns capsule points for a spine running along Z in
// generator space, transformed by basis when it is non-nil.
//
// The capsule is a cylinder wall of the given height capped by two
// hemispheres whose radii are bottomRadius and topRadius. Point order:
//
//   - the bottom pole
//   - numCapAxial bottom hemisphere rings, pole side first; the last of
//     these is the bottom edge of the wall
//   - numCapAxial top hemisphere rings, starting with the top edge of
//     the wall
//   - the top pole
//
// Every ring holds ringPointCount points swept counter-clockwise about +Z.
// GenerateTopology indexes points in exactly this order.
func GeneratePoints(numRadial, numCapAxial int,
	bottomRadius, topRadius, height, sweepDegrees float64,
	basis *Matrix4) []Vec3f {

	closed := IsClosedSweep(sweepDegrees)
	n := ComputeNumPoints(numRadial, numCapAxial, closed)
	if n == 0 {
		return nil
	}

	sweep := clampSweep(sweepDegrees)
	ringLen := ringPointCount(numRadial, closed)
	ring := make([][2]float64, ringLen)
	for i := range ring {
		a := float64(i) / float64(numRadial) * sweep
		ring[i] = [2]float64{math.Cos(a), math.Sin(a)}
	}

	points := make([]Vec3f, 0, n)
	emit := func(p Vec3) {
		if basis != nil {
			p = basis.TransformPoint(p)
		}
		points = append(points, p.Float32())
	}

	halfHeight := 0.5 * height

	emit(Vec3{Z: -(bottomRadius + halfHeight)})

	// Latitude runs (-pi/2, 0] on the bottom cap.
	for ax := 1; ax <= numCapAxial; ax++ {
		lat := (float64(ax)/float64(numCapAxial) - 1) * 0.5 * math.Pi
		r := bottomRadius * math.Cos(lat)
		z := -halfHeight + bottomRadius*math.Sin(lat)
		for _, xy := range ring {
			emit(Vec3{X: r * xy[0], Y: r * xy[1], Z: z})
		}
	}

	// Latitude runs [0, pi/2) on the top cap.
	for ax := 0; ax < numCapAxial; ax++ {
		lat := float64(ax) / float64(numCapAxial) * 0.5 * math.Pi
		r := topRadius * math.Cos(lat)
		z := halfHeight + topRadius*math.Sin(lat)
		for _, xy := range ring {
			emit(Vec3{X: r * xy[0], Y: r * xy[1], Z: z})
		}
	}

	emit(Vec3{Z: topRadius + halfHeight})

	return points
}

// WallRings returns the indices of the first point of the two rings that
// bound the cylindrical wall: the bottom cap equator and the top cap
// equator. Both are -1 when the resolution is below the minimum.
func WallRings(numRadial, numCapAxial int, closedSweep bool) (bottom, top int) {
	if ComputeNumPoints(numRadial, numCapAxial, closedSweep) == 0 {
		return -1, -1
	}
	ringLen := ringPointCount(numRadial, closedSweep)
	bottom = 1 + (numCapAxial-1)*ringLen
	return bottom, bottom + ringLen
}

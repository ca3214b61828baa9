// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geom

// Matrix4 is a 4x4 affine transformation in row-vector convention:
// a point is treated as the row (x, y, z, 1) and multiplied on the left,
//
//	x' = x*M[0][0] + y*M[1][0] + z*M[2][0] + M[3][0]
//	y' = x*M[0][1] + y*M[1][1] + z*M[2][1] + M[3][1]
//	z' = x*M[0][2] + y*M[1][2] + z*M[2][2] + M[3][2]
//
// so row 3 holds the translation.
type Matrix4 [4][4]float64

// Identity4 returns the identity transformation matrix.
func Identity4() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translate4 creates a translation matrix.
func Translate4(t Vec3) Matrix4 {
	m := Identity4()
	m[3][0], m[3][1], m[3][2] = t.X, t.Y, t.Z
	return m
}

// SetRow replaces row i with (a, b, c, d).
func (m *Matrix4) SetRow(i int, a, b, c, d float64) {
	m[i] = [4]float64{a, b, c, d}
}

// Multiply returns m * other. Applying the result is equivalent to applying
// m first, then other.
func (m Matrix4) Multiply(other Matrix4) Matrix4 {
	var r Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[i][j] = m[i][0]*other[0][j] + m[i][1]*other[1][j] +
				m[i][2]*other[2][j] + m[i][3]*other[3][j]
		}
	}
	return r
}

// TransformPoint applies the transformation to a point.
func (m Matrix4) TransformPoint(p Vec3) Vec3 {
	return Vec3{
		X: p.X*m[0][0] + p.Y*m[1][0] + p.Z*m[2][0] + m[3][0],
		Y: p.X*m[0][1] + p.Y*m[1][1] + p.Z*m[2][1] + m[3][1],
		Z: p.X*m[0][2] + p.Y*m[1][2] + p.Z*m[2][2] + m[3][2],
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix4) TransformVector(v Vec3) Vec3 {
	return Vec3{
		X: v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0],
		Y: v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1],
		Z: v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2],
	}
}

// Determinant3 returns the determinant of the upper-left 3x3 block.
// It is positive for orientation-preserving transforms.
func (m Matrix4) Determinant3() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix4) IsIdentity() bool {
	return m == Identity4()
}

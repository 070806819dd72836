package core

import "math"

// Mat4 is a 4x4 matrix in row-major order, used for affine transforms
type Mat4 [4][4]float64

// IdentityMat4 returns the identity matrix
func IdentityMat4() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// TranslationMat4 returns a translation matrix
func TranslationMat4(offset Vec3) Mat4 {
	m := IdentityMat4()
	m[0][3] = offset.X
	m[1][3] = offset.Y
	m[2][3] = offset.Z
	return m
}

// ScaleMat4 returns a (possibly non-uniform) scale matrix
func ScaleMat4(s Vec3) Mat4 {
	m := IdentityMat4()
	m[0][0] = s.X
	m[1][1] = s.Y
	m[2][2] = s.Z
	return m
}

// RotationXMat4 returns a rotation about the X axis by angle radians
func RotationXMat4(angle float64) Mat4 {
	s, c := math.Sincos(angle)
	m := IdentityMat4()
	m[1][1], m[1][2] = c, -s
	m[2][1], m[2][2] = s, c
	return m
}

// RotationYMat4 returns a rotation about the Y axis by angle radians
func RotationYMat4(angle float64) Mat4 {
	s, c := math.Sincos(angle)
	m := IdentityMat4()
	m[0][0], m[0][2] = c, s
	m[2][0], m[2][2] = -s, c
	return m
}

// RotationZMat4 returns a rotation about the Z axis by angle radians
func RotationZMat4(angle float64) Mat4 {
	s, c := math.Sincos(angle)
	m := IdentityMat4()
	m[0][0], m[0][1] = c, -s
	m[1][0], m[1][1] = s, c
	return m
}

// Multiply returns the matrix product m * other
func (m Mat4) Multiply(other Mat4) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m[i][k] * other[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// Transpose returns the transposed matrix
func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = m[j][i]
		}
	}
	return out
}

// minor returns the determinant of the 3x3 submatrix obtained by deleting
// row r and column c
func (m Mat4) minor(r, c int) float64 {
	var sub [3][3]float64
	si := 0
	for i := 0; i < 4; i++ {
		if i == r {
			continue
		}
		sj := 0
		for j := 0; j < 4; j++ {
			if j == c {
				continue
			}
			sub[si][sj] = m[i][j]
			sj++
		}
		si++
	}
	return sub[0][0]*(sub[1][1]*sub[2][2]-sub[1][2]*sub[2][1]) -
		sub[0][1]*(sub[1][0]*sub[2][2]-sub[1][2]*sub[2][0]) +
		sub[0][2]*(sub[1][0]*sub[2][1]-sub[1][1]*sub[2][0])
}

// Adjoint returns the adjugate (transpose of the cofactor matrix)
func (m Mat4) Adjoint() Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			cofactor := m.minor(i, j)
			if (i+j)%2 == 1 {
				cofactor = -cofactor
			}
			// transpose while assembling
			out[j][i] = cofactor
		}
	}
	return out
}

// Determinant returns the determinant of the matrix
func (m Mat4) Determinant() float64 {
	det := 0.0
	for j := 0; j < 4; j++ {
		cofactor := m.minor(0, j)
		if j%2 == 1 {
			cofactor = -cofactor
		}
		det += m[0][j] * cofactor
	}
	return det
}

// Inverse returns the inverse matrix. A singular matrix yields a matrix of
// non-finite values; callers are expected to pass invertible transforms.
func (m Mat4) Inverse() Mat4 {
	adj := m.Adjoint()
	invDet := 1.0 / m.Determinant()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			adj[i][j] *= invDet
		}
	}
	return adj
}

// TransformPoint applies the full affine transform (including translation)
// to a point
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z + m[0][3],
		Y: m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z + m[1][3],
		Z: m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z + m[2][3],
	}
}

// TransformVector applies only the linear part of the transform to a vector
func (m Mat4) TransformVector(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// TransformRay transforms a ray's origin as a point and direction as a
// vector, preserving the ray time
func (m Mat4) TransformRay(r Ray) Ray {
	return Ray{
		Origin:    m.TransformPoint(r.Origin),
		Direction: m.TransformVector(r.Direction),
		Time:      r.Time,
	}
}

package gm

import (
	"fmt"
	"math"
)

// Mat3 is a 3x3 column major matrix. m[c][r] is the element in column c and row r.
//
// A Mat3 is either a linear transform in 3d, or an affine transform in 2d
// using homogeneous coordinates.
type Mat3[S Scalar] [3]Vec3[S]

// NewMat3 builds a matrix from its elements in column major order.
func NewMat3[S Scalar](
	c0r0, c0r1, c0r2,
	c1r0, c1r1, c1r2,
	c2r0, c2r1, c2r2 S,
) Mat3[S] {
	return Mat3FromCols(
		Vec3[S]{c0r0, c0r1, c0r2},
		Vec3[S]{c1r0, c1r1, c1r2},
		Vec3[S]{c2r0, c2r1, c2r2},
	)
}

func Mat3FromCols[S Scalar](c0, c1, c2 Vec3[S]) Mat3[S] {
	return Mat3[S]{c0, c1, c2}
}

// Mat3FromSlice builds a matrix from nine values in column major order.
func Mat3FromSlice[S Scalar](values []S) (Mat3[S], error) {
	if err := checkLen("Mat3FromSlice", len(values), 9); err != nil {
		return Mat3[S]{}, err
	}

	var m Mat3[S]
	for c := range m {
		copy(m[c][:], values[c*3:])
	}

	return m, nil
}

func ZeroMat3[S Scalar]() Mat3[S] {
	return Mat3[S]{}
}

func IdentityMat3[S Scalar]() Mat3[S] {
	return Mat3FromCols(Vec3UnitX[S](), Vec3UnitY[S](), Vec3UnitZ[S]())
}

// RotationX returns a matrix rotating counter-clockwise around the x axis.
func RotationX[S Scalar](angle Rad) Mat3[S] {
	sin, cos := angle.Sincos()
	return NewMat3(
		1, 0, 0,
		0, S(cos), S(sin),
		0, S(-sin), S(cos),
	)
}

// RotationY returns a matrix rotating counter-clockwise around the y axis.
func RotationY[S Scalar](angle Rad) Mat3[S] {
	sin, cos := angle.Sincos()
	return NewMat3(
		S(cos), 0, S(-sin),
		0, 1, 0,
		S(sin), 0, S(cos),
	)
}

// RotationZ returns a matrix rotating counter-clockwise around the z axis.
func RotationZ[S Scalar](angle Rad) Mat3[S] {
	sin, cos := angle.Sincos()
	return NewMat3(
		S(cos), S(sin), 0,
		S(-sin), S(cos), 0,
		0, 0, 1,
	)
}

// TranslationMat3 returns a 2d affine transform in homogeneous coordinates
// that moves points by offset.
func TranslationMat3[S Scalar](offset Vec2[S]) Mat3[S] {
	m := IdentityMat3[S]()
	m[2] = offset.Extend(1)
	return m
}

// TransformPoint applies the 2d affine transform m to point.
func (m Mat3[S]) TransformPoint(point Vec2[S]) Vec2[S] {
	return m.MulVec(point.Extend(1)).Truncate()
}

// TransformVec applies m to a direction. Translation is ignored.
func (m Mat3[S]) TransformVec(vec Vec2[S]) Vec2[S] {
	return m.MulVec(vec.Extend(0)).Truncate()
}

func (m Mat3[S]) Rows() int        { return 3 }
func (m Mat3[S]) Cols() int        { return 3 }
func (m Mat3[S]) IsColMajor() bool { return true }

func (m Mat3[S]) Col(i int) Vec3[S] {
	col, err := m.TryCol(i)
	if err != nil {
		panic(err)
	}

	return col
}

func (m Mat3[S]) TryCol(i int) (Vec3[S], error) {
	if err := checkIndex("Mat3.Col", i, 3); err != nil {
		return Vec3[S]{}, err
	}

	return m[i], nil
}

func (m Mat3[S]) Row(i int) Vec3[S] {
	row, err := m.TryRow(i)
	if err != nil {
		panic(err)
	}

	return row
}

func (m Mat3[S]) TryRow(i int) (Vec3[S], error) {
	if err := checkIndex("Mat3.Row", i, 3); err != nil {
		return Vec3[S]{}, err
	}

	return Vec3[S]{m[0][i], m[1][i], m[2][i]}, nil
}

func (m Mat3[S]) MulScalar(value S) Mat3[S] {
	return Mat3FromCols(m[0].Mul(value), m[1].Mul(value), m[2].Mul(value))
}

func (m Mat3[S]) MulVec(v Vec3[S]) Vec3[S] {
	return Vec3[S]{
		m[0][0]*v[0] + m[1][0]*v[1] + m[2][0]*v[2],
		m[0][1]*v[0] + m[1][1]*v[1] + m[2][1]*v[2],
		m[0][2]*v[0] + m[1][2]*v[1] + m[2][2]*v[2],
	}
}

func (m Mat3[S]) Add(other Mat3[S]) Mat3[S] {
	return Mat3FromCols(m[0].Add(other[0]), m[1].Add(other[1]), m[2].Add(other[2]))
}

func (m Mat3[S]) Sub(other Mat3[S]) Mat3[S] {
	return Mat3FromCols(m[0].Sub(other[0]), m[1].Sub(other[1]), m[2].Sub(other[2]))
}

func (m Mat3[S]) Mul(other Mat3[S]) Mat3[S] {
	var r Mat3[S]
	for j := range r {
		for i := range r[j] {
			for k := range m {
				r[j][i] += m[k][i] * other[j][k]
			}
		}
	}

	return r
}

func (m Mat3[S]) Neg() Mat3[S] {
	return Mat3FromCols(m[0].Neg(), m[1].Neg(), m[2].Neg())
}

func (m Mat3[S]) Transpose() Mat3[S] {
	var r Mat3[S]
	for j := range r {
		for i := range r[j] {
			r[j][i] = m[i][j]
		}
	}

	return r
}

func (m Mat3[S]) Trace() S {
	return m[0][0] + m[1][1] + m[2][2]
}

func (m Mat3[S]) Determinant() S {
	return m[0].Dot(m[1].Cross(m[2]))
}

func (m Mat3[S]) IsIdentity() bool {
	return m.FuzzyEq(IdentityMat3[S]())
}

func (m Mat3[S]) IsSymmetric() bool {
	for c := range m {
		for r := c + 1; r < len(m); r++ {
			if !FuzzyEq(m[c][r], m[r][c]) {
				return false
			}
		}
	}

	return true
}

func (m Mat3[S]) IsDiagonal() bool {
	for c := range m {
		for r := range m[c] {
			if r != c && !FuzzyEq(m[c][r], 0) {
				return false
			}
		}
	}

	return true
}

// IsRotated is true for every matrix that is not the identity. It does not
// check if the matrix actually is a rotation.
func (m Mat3[S]) IsRotated() bool {
	return !m.IsIdentity()
}

func (m Mat3[S]) FuzzyEq(other Mat3[S]) bool {
	return m[0].FuzzyEq(other[0]) && m[1].FuzzyEq(other[1]) && m[2].FuzzyEq(other[2])
}

func (m Mat3[S]) ExactEq(other Mat3[S]) bool {
	return m[0].ExactEq(other[0]) && m[1].ExactEq(other[1]) && m[2].ExactEq(other[2])
}

// Scale scales the basis vectors of m by the components of scale. This is the
// same as multiplying m with a diagonal scale matrix from the right.
func (m Mat3[S]) Scale(scale Vec3[S]) Mat3[S] {
	return m.Mul(Mat3FromCols(
		Vec3[S]{0: scale[0]},
		Vec3[S]{1: scale[1]},
		Vec3[S]{2: scale[2]},
	))
}

// ToMat4 embeds m into the upper left block of a 4x4 identity matrix.
func (m Mat3[S]) ToMat4() Mat4[S] {
	return Mat4FromCols(
		m[0].Extend(0),
		m[1].Extend(0),
		m[2].Extend(0),
		Vec4UnitW[S](),
	)
}

// Mat2 returns the upper left 2x2 block of m.
func (m Mat3[S]) Mat2() Mat2[S] {
	return Mat2FromCols(m[0].Truncate(), m[1].Truncate())
}

// ToQuat converts a rotation matrix into a quaternion.
//
// The matrix must be orthonormal with a determinant of 1, this is not
// validated. The computation is done in float64 and converted back to S,
// which truncates for integer scalars.
func (m Mat3[S]) ToQuat() Quat[S] {
	// Based on Ken Shoemake's "Quaternions" and the jMonkeyEngine variant:
	// pick the largest of w, x, y and z to divide by.
	d01 := float64(m[0][1] - m[1][0])
	d20 := float64(m[2][0] - m[0][2])
	d12 := float64(m[1][2] - m[2][1])

	s01 := float64(m[0][1] + m[1][0])
	s20 := float64(m[2][0] + m[0][2])
	s12 := float64(m[1][2] + m[2][1])

	var w, x, y, z float64

	trace := float64(m[0][0] + m[1][1] + m[2][2])

	switch {
	case trace >= 0:
		s := math.Sqrt(trace + 1)
		w = 0.5 * s
		s = 0.5 / s
		x = d12 * s
		y = d20 * s
		z = d01 * s

	case m[0][0] > m[1][1] && m[0][0] > m[2][2]:
		s := math.Sqrt(1 + float64(m[0][0]-m[1][1]-m[2][2]))
		x = 0.5 * s
		s = 0.5 / s
		y = s01 * s
		z = s20 * s
		w = d12 * s

	case m[1][1] > m[2][2]:
		s := math.Sqrt(1 + float64(m[1][1]-m[0][0]-m[2][2]))
		y = 0.5 * s
		s = 0.5 / s
		x = s01 * s
		z = s12 * s
		w = d20 * s

	default:
		s := math.Sqrt(1 + float64(m[2][2]-m[0][0]-m[1][1]))
		z = 0.5 * s
		s = 0.5 / s
		x = s20 * s
		y = s12 * s
		w = d01 * s
	}

	return NewQuat(S(w), S(x), S(y), S(z))
}

func (m Mat3[S]) String() string {
	return fmt.Sprintf("Mat3(%v, %v, %v)", m[0], m[1], m[2])
}

package gm

import "fmt"

// Mat4 is a 4x4 column major matrix. m[c][r] is the element in column c and row r.
//
// Used as an affine transform, the upper left 3x3 block holds rotation and
// scale, and the first three rows of the last column hold the translation.
type Mat4[S Scalar] [4]Vec4[S]

// NewMat4 builds a matrix from its elements in column major order.
func NewMat4[S Scalar](
	c0r0, c0r1, c0r2, c0r3,
	c1r0, c1r1, c1r2, c1r3,
	c2r0, c2r1, c2r2, c2r3,
	c3r0, c3r1, c3r2, c3r3 S,
) Mat4[S] {
	return Mat4FromCols(
		Vec4[S]{c0r0, c0r1, c0r2, c0r3},
		Vec4[S]{c1r0, c1r1, c1r2, c1r3},
		Vec4[S]{c2r0, c2r1, c2r2, c2r3},
		Vec4[S]{c3r0, c3r1, c3r2, c3r3},
	)
}

func Mat4FromCols[S Scalar](c0, c1, c2, c3 Vec4[S]) Mat4[S] {
	return Mat4[S]{c0, c1, c2, c3}
}

// Mat4FromSlice builds a matrix from sixteen values in column major order,
// the layout graphics APIs expect for uniforms.
func Mat4FromSlice[S Scalar](values []S) (Mat4[S], error) {
	if err := checkLen("Mat4FromSlice", len(values), 16); err != nil {
		return Mat4[S]{}, err
	}

	var m Mat4[S]
	for c := range m {
		copy(m[c][:], values[c*4:])
	}

	return m, nil
}

func ZeroMat4[S Scalar]() Mat4[S] {
	return Mat4[S]{}
}

func IdentityMat4[S Scalar]() Mat4[S] {
	return Mat4FromCols(Vec4UnitX[S](), Vec4UnitY[S](), Vec4UnitZ[S](), Vec4UnitW[S]())
}

// TranslationMat4 returns an affine transform that moves points by offset.
func TranslationMat4[S Scalar](offset Vec3[S]) Mat4[S] {
	return IdentityMat4[S]().Translate(offset)
}

func (m Mat4[S]) Rows() int        { return 4 }
func (m Mat4[S]) Cols() int        { return 4 }
func (m Mat4[S]) IsColMajor() bool { return true }

func (m Mat4[S]) Col(i int) Vec4[S] {
	col, err := m.TryCol(i)
	if err != nil {
		panic(err)
	}

	return col
}

func (m Mat4[S]) TryCol(i int) (Vec4[S], error) {
	if err := checkIndex("Mat4.Col", i, 4); err != nil {
		return Vec4[S]{}, err
	}

	return m[i], nil
}

func (m Mat4[S]) Row(i int) Vec4[S] {
	row, err := m.TryRow(i)
	if err != nil {
		panic(err)
	}

	return row
}

func (m Mat4[S]) TryRow(i int) (Vec4[S], error) {
	if err := checkIndex("Mat4.Row", i, 4); err != nil {
		return Vec4[S]{}, err
	}

	return Vec4[S]{m[0][i], m[1][i], m[2][i], m[3][i]}, nil
}

func (m Mat4[S]) MulScalar(value S) Mat4[S] {
	for c := range m {
		m[c] = m[c].Mul(value)
	}

	return m
}

func (m Mat4[S]) MulVec(v Vec4[S]) Vec4[S] {
	var r Vec4[S]
	for i := range r {
		r[i] = m[0][i]*v[0] + m[1][i]*v[1] + m[2][i]*v[2] + m[3][i]*v[3]
	}

	return r
}

func (m Mat4[S]) Add(other Mat4[S]) Mat4[S] {
	for c := range m {
		m[c] = m[c].Add(other[c])
	}

	return m
}

func (m Mat4[S]) Sub(other Mat4[S]) Mat4[S] {
	for c := range m {
		m[c] = m[c].Sub(other[c])
	}

	return m
}

func (m Mat4[S]) Mul(other Mat4[S]) Mat4[S] {
	var r Mat4[S]
	for j := range r {
		for i := range r[j] {
			for k := range m {
				r[j][i] += m[k][i] * other[j][k]
			}
		}
	}

	return r
}

func (m Mat4[S]) Neg() Mat4[S] {
	for c := range m {
		m[c] = m[c].Neg()
	}

	return m
}

func (m Mat4[S]) Transpose() Mat4[S] {
	var r Mat4[S]
	for j := range r {
		for i := range r[j] {
			r[j][i] = m[i][j]
		}
	}

	return r
}

func (m Mat4[S]) Trace() S {
	return m[0][0] + m[1][1] + m[2][2] + m[3][3]
}

func (m Mat4[S]) IsIdentity() bool {
	return m.FuzzyEq(IdentityMat4[S]())
}

func (m Mat4[S]) IsSymmetric() bool {
	for c := range m {
		for r := c + 1; r < len(m); r++ {
			if !FuzzyEq(m[c][r], m[r][c]) {
				return false
			}
		}
	}

	return true
}

func (m Mat4[S]) IsDiagonal() bool {
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
func (m Mat4[S]) IsRotated() bool {
	return !m.IsIdentity()
}

func (m Mat4[S]) FuzzyEq(other Mat4[S]) bool {
	for c := range m {
		if !m[c].FuzzyEq(other[c]) {
			return false
		}
	}

	return true
}

func (m Mat4[S]) ExactEq(other Mat4[S]) bool {
	for c := range m {
		if !m[c].ExactEq(other[c]) {
			return false
		}
	}

	return true
}

// Scale scales the first three basis vectors of m by the components of scale.
// This is the same as multiplying m with the diagonal matrix (x, y, z, 1) from the right.
func (m Mat4[S]) Scale(scale Vec3[S]) Mat4[S] {
	return m.Mul(Mat4FromCols(
		Vec4[S]{0: scale[0]},
		Vec4[S]{1: scale[1]},
		Vec4[S]{2: scale[2]},
		Vec4UnitW[S](),
	))
}

// Translate adds offset to the translation column of m. The rotation and
// scale columns stay untouched, so the offset is not transformed by them.
// Callers composing transforms need to keep track of the order themselves.
func (m Mat4[S]) Translate(offset Vec3[S]) Mat4[S] {
	m[3] = m[3].Add(offset.Extend(0))
	return m
}

// Mat3 returns the upper left 3x3 block of m.
func (m Mat4[S]) Mat3() Mat3[S] {
	return Mat3FromCols(m[0].Truncate(), m[1].Truncate(), m[2].Truncate())
}

// TransformPoint applies m to a point, including the translation.
func (m Mat4[S]) TransformPoint(point Vec3[S]) Vec3[S] {
	return m.MulVec(point.Extend(1)).Truncate()
}

// TransformVec applies m to a direction. This is different from transforming
// a point in that the translation is not applied.
func (m Mat4[S]) TransformVec(vec Vec3[S]) Vec3[S] {
	return m.MulVec(vec.Extend(0)).Truncate()
}

func (m Mat4[S]) String() string {
	return fmt.Sprintf("Mat4(%v, %v, %v, %v)", m[0], m[1], m[2], m[3])
}

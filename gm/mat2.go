package gm

import "fmt"

// Mat2 is a 2x2 column major matrix. m[c][r] is the element in column c and row r.
type Mat2[S Scalar] [2]Vec2[S]

// NewMat2 builds a matrix from its elements in column major order.
func NewMat2[S Scalar](c0r0, c0r1, c1r0, c1r1 S) Mat2[S] {
	return Mat2FromCols(
		Vec2[S]{c0r0, c0r1},
		Vec2[S]{c1r0, c1r1},
	)
}

func Mat2FromCols[S Scalar](c0, c1 Vec2[S]) Mat2[S] {
	return Mat2[S]{c0, c1}
}

// Mat2FromSlice builds a matrix from four values in column major order.
func Mat2FromSlice[S Scalar](values []S) (Mat2[S], error) {
	if err := checkLen("Mat2FromSlice", len(values), 4); err != nil {
		return Mat2[S]{}, err
	}

	return NewMat2(values[0], values[1], values[2], values[3]), nil
}

func ZeroMat2[S Scalar]() Mat2[S] {
	return Mat2[S]{}
}

func IdentityMat2[S Scalar]() Mat2[S] {
	return Mat2FromCols(Vec2UnitX[S](), Vec2UnitY[S]())
}

// RotationMat2 returns a matrix that rotates a vector counter-clockwise by the given angle.
func RotationMat2[S Scalar](angle Rad) Mat2[S] {
	sin, cos := angle.Sincos()
	return NewMat2(
		S(cos), S(sin),
		S(-sin), S(cos),
	)
}

func (m Mat2[S]) Rows() int        { return 2 }
func (m Mat2[S]) Cols() int        { return 2 }
func (m Mat2[S]) IsColMajor() bool { return true }

func (m Mat2[S]) Col(i int) Vec2[S] {
	col, err := m.TryCol(i)
	if err != nil {
		panic(err)
	}

	return col
}

func (m Mat2[S]) TryCol(i int) (Vec2[S], error) {
	if err := checkIndex("Mat2.Col", i, 2); err != nil {
		return Vec2[S]{}, err
	}

	return m[i], nil
}

func (m Mat2[S]) Row(i int) Vec2[S] {
	row, err := m.TryRow(i)
	if err != nil {
		panic(err)
	}

	return row
}

func (m Mat2[S]) TryRow(i int) (Vec2[S], error) {
	if err := checkIndex("Mat2.Row", i, 2); err != nil {
		return Vec2[S]{}, err
	}

	return Vec2[S]{m[0][i], m[1][i]}, nil
}

func (m Mat2[S]) MulScalar(value S) Mat2[S] {
	return Mat2FromCols(m[0].Mul(value), m[1].Mul(value))
}

func (m Mat2[S]) MulVec(v Vec2[S]) Vec2[S] {
	return Vec2[S]{
		m[0][0]*v[0] + m[1][0]*v[1],
		m[0][1]*v[0] + m[1][1]*v[1],
	}
}

func (m Mat2[S]) Add(other Mat2[S]) Mat2[S] {
	return Mat2FromCols(m[0].Add(other[0]), m[1].Add(other[1]))
}

func (m Mat2[S]) Sub(other Mat2[S]) Mat2[S] {
	return Mat2FromCols(m[0].Sub(other[0]), m[1].Sub(other[1]))
}

func (m Mat2[S]) Mul(other Mat2[S]) Mat2[S] {
	var r Mat2[S]
	for j := range r {
		for i := range r[j] {
			for k := range m {
				r[j][i] += m[k][i] * other[j][k]
			}
		}
	}

	return r
}

func (m Mat2[S]) Neg() Mat2[S] {
	return Mat2FromCols(m[0].Neg(), m[1].Neg())
}

func (m Mat2[S]) Transpose() Mat2[S] {
	return NewMat2(
		m[0][0], m[1][0],
		m[0][1], m[1][1],
	)
}

func (m Mat2[S]) Trace() S {
	return m[0][0] + m[1][1]
}

func (m Mat2[S]) Determinant() S {
	return m[0][0]*m[1][1] - m[1][0]*m[0][1]
}

func (m Mat2[S]) IsIdentity() bool {
	return m.FuzzyEq(IdentityMat2[S]())
}

func (m Mat2[S]) IsSymmetric() bool {
	return FuzzyEq(m[0][1], m[1][0])
}

func (m Mat2[S]) IsDiagonal() bool {
	return FuzzyEq(m[0][1], 0) && FuzzyEq(m[1][0], 0)
}

// IsRotated is true for every matrix that is not the identity. It does not
// check if the matrix actually is a rotation.
func (m Mat2[S]) IsRotated() bool {
	return !m.IsIdentity()
}

func (m Mat2[S]) FuzzyEq(other Mat2[S]) bool {
	return m[0].FuzzyEq(other[0]) && m[1].FuzzyEq(other[1])
}

func (m Mat2[S]) ExactEq(other Mat2[S]) bool {
	return m[0].ExactEq(other[0]) && m[1].ExactEq(other[1])
}

// ToMat3 embeds m into the upper left block of a 3x3 identity matrix.
func (m Mat2[S]) ToMat3() Mat3[S] {
	return Mat3FromCols(m[0].Extend(0), m[1].Extend(0), Vec3UnitZ[S]())
}

func (m Mat2[S]) String() string {
	return fmt.Sprintf("Mat2(%v, %v)", m[0], m[1])
}

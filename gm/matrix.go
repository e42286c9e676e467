package gm

// Matrix is the contract shared by Mat2, Mat3 and Mat4. S is the scalar type,
// V the column vector type and M the matrix type itself.
//
// All three matrix types are column major. Methods never modify the receiver,
// they return new values.
type Matrix[S Scalar, V any, M any] interface {
	Rows() int
	Cols() int

	// IsColMajor is always true for the types in this package.
	IsColMajor() bool

	// Col returns column i. It panics with ErrIndexOutOfRange if i is not a
	// valid column index. TryCol returns the error instead.
	Col(i int) V
	TryCol(i int) (V, error)

	// Row gathers element i of every column. It panics with
	// ErrIndexOutOfRange if i is not a valid row index. TryRow returns the
	// error instead.
	Row(i int) V
	TryRow(i int) (V, error)

	// MulScalar scales every element by value.
	MulScalar(value S) M

	// MulVec returns the matrix vector product m * v.
	MulVec(v V) V

	Add(other M) M
	Sub(other M) M

	// Mul returns the matrix product m * other. The product is not commutative.
	Mul(other M) M

	Neg() M
	Transpose() M
	Trace() S

	IsIdentity() bool
	IsSymmetric() bool
	IsDiagonal() bool

	// IsRotated reports whether the matrix is not fuzzy equal to the identity.
	// Despite the name it does not check that the matrix is a rotation.
	IsRotated() bool

	FuzzyEq(other M) bool
	ExactEq(other M) bool
}

var _ Matrix[float64, Vec2[float64], Mat2[float64]] = Mat2[float64]{}
var _ Matrix[float64, Vec3[float64], Mat3[float64]] = Mat3[float64]{}
var _ Matrix[float64, Vec4[float64], Mat4[float64]] = Mat4[float64]{}

var _ Matrix[int32, Vec4[int32], Mat4[int32]] = Mat4[int32]{}

type Mat2f = Mat2[float64]
type Mat3f = Mat3[float64]
type Mat4f = Mat4[float64]

type Vec2f = Vec2[float64]
type Vec3f = Vec3[float64]
type Vec4f = Vec4[float64]

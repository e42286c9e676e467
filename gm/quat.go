package gm

import (
	"fmt"
	"math"
)

// Quat is a quaternion w + xi + yj + zk. Unit quaternions describe rotations in 3d.
type Quat[S Scalar] struct {
	W, X, Y, Z S
}

// NewQuat builds a quaternion from its components in (w, x, y, z) order.
func NewQuat[S Scalar](w, x, y, z S) Quat[S] {
	return Quat[S]{W: w, X: x, Y: y, Z: z}
}

// IdentityQuat returns the quaternion describing no rotation.
func IdentityQuat[S Scalar]() Quat[S] {
	return Quat[S]{W: 1}
}

// Vec returns the vector part (x, y, z).
func (q Quat[S]) Vec() Vec3[S] {
	return Vec3[S]{q.X, q.Y, q.Z}
}

func (q Quat[S]) Dot(other Quat[S]) S {
	return q.W*other.W + q.X*other.X + q.Y*other.Y + q.Z*other.Z
}

func (q Quat[S]) Length() float64 {
	return math.Sqrt(float64(q.Dot(q)))
}

func (q Quat[S]) Normalized() Quat[S] {
	length := q.Length()
	return Quat[S]{
		W: S(float64(q.W) / length),
		X: S(float64(q.X) / length),
		Y: S(float64(q.Y) / length),
		Z: S(float64(q.Z) / length),
	}
}

func (q Quat[S]) Neg() Quat[S] {
	return Quat[S]{W: -q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// Mul returns the Hamilton product q * other. Applied as a rotation,
// other is applied first.
func (q Quat[S]) Mul(other Quat[S]) Quat[S] {
	return Quat[S]{
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
	}
}

func (q Quat[S]) FuzzyEq(other Quat[S]) bool {
	return FuzzyEq(q.W, other.W) && FuzzyEq(q.X, other.X) &&
		FuzzyEq(q.Y, other.Y) && FuzzyEq(q.Z, other.Z)
}

func (q Quat[S]) ExactEq(other Quat[S]) bool {
	return q == other
}

// SameRotation reports whether q and other describe the same rotation,
// that is, q is fuzzy equal to other or to -other.
func (q Quat[S]) SameRotation(other Quat[S]) bool {
	return q.FuzzyEq(other) || q.FuzzyEq(other.Neg())
}

// ToMat3 returns the rotation matrix of a unit quaternion.
func (q Quat[S]) ToMat3() Mat3[S] {
	w, x, y, z := float64(q.W), float64(q.X), float64(q.Y), float64(q.Z)
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return NewMat3(
		S(1-2*(yy+zz)), S(2*(xy+wz)), S(2*(xz-wy)),
		S(2*(xy-wz)), S(1-2*(xx+zz)), S(2*(yz+wx)),
		S(2*(xz+wy)), S(2*(yz-wx)), S(1-2*(xx+yy)),
	)
}

func (q Quat[S]) String() string {
	return fmt.Sprintf("Quat(w=%v, x=%v, y=%v, z=%v)", q.W, q.X, q.Y, q.Z)
}

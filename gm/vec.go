package gm

import (
	"fmt"
	"math"
)

// Vec2 is a 2d vector. Elements can be accessed by index.
type Vec2[S Scalar] [2]S

// Vec3 is a 3d vector. Elements can be accessed by index.
type Vec3[S Scalar] [3]S

// Vec4 is a 4d vector, usually a point or direction in homogeneous coordinates.
type Vec4[S Scalar] [4]S

func Vec2Of[S Scalar](x, y S) Vec2[S] {
	return Vec2[S]{x, y}
}

func Vec3Of[S Scalar](x, y, z S) Vec3[S] {
	return Vec3[S]{x, y, z}
}

func Vec4Of[S Scalar](x, y, z, w S) Vec4[S] {
	return Vec4[S]{x, y, z, w}
}

func Vec2UnitX[S Scalar]() Vec2[S] { return Vec2[S]{0: 1} }
func Vec2UnitY[S Scalar]() Vec2[S] { return Vec2[S]{1: 1} }

func Vec3UnitX[S Scalar]() Vec3[S] { return Vec3[S]{0: 1} }
func Vec3UnitY[S Scalar]() Vec3[S] { return Vec3[S]{1: 1} }
func Vec3UnitZ[S Scalar]() Vec3[S] { return Vec3[S]{2: 1} }

func Vec4UnitX[S Scalar]() Vec4[S] { return Vec4[S]{0: 1} }
func Vec4UnitY[S Scalar]() Vec4[S] { return Vec4[S]{1: 1} }
func Vec4UnitZ[S Scalar]() Vec4[S] { return Vec4[S]{2: 1} }
func Vec4UnitW[S Scalar]() Vec4[S] { return Vec4[S]{3: 1} }

// Vec2

func (v Vec2[S]) X() S { return v[0] }
func (v Vec2[S]) Y() S { return v[1] }

func (v Vec2[S]) Add(other Vec2[S]) Vec2[S] {
	for i := range v {
		v[i] += other[i]
	}
	return v
}

func (v Vec2[S]) Sub(other Vec2[S]) Vec2[S] {
	for i := range v {
		v[i] -= other[i]
	}
	return v
}

func (v Vec2[S]) Mul(scalar S) Vec2[S] {
	for i := range v {
		v[i] *= scalar
	}
	return v
}

func (v Vec2[S]) MulEach(other Vec2[S]) Vec2[S] {
	for i := range v {
		v[i] *= other[i]
	}
	return v
}

func (v Vec2[S]) Neg() Vec2[S] {
	for i := range v {
		v[i] = -v[i]
	}
	return v
}

func (v Vec2[S]) Dot(other Vec2[S]) S {
	return v[0]*other[0] + v[1]*other[1]
}

func (v Vec2[S]) LengthSqr() S {
	return v.Dot(v)
}

func (v Vec2[S]) Length() float64 {
	return math.Sqrt(float64(v.LengthSqr()))
}

// Extend returns the 3d vector (x, y, z).
func (v Vec2[S]) Extend(z S) Vec3[S] {
	return Vec3[S]{v[0], v[1], z}
}

func (v Vec2[S]) FuzzyEq(other Vec2[S]) bool {
	return FuzzyEq(v[0], other[0]) && FuzzyEq(v[1], other[1])
}

func (v Vec2[S]) ExactEq(other Vec2[S]) bool {
	return v == other
}

func (v Vec2[S]) String() string {
	return fmt.Sprintf("Vec2(x=%v, y=%v)", v[0], v[1])
}

// Vec3

func (v Vec3[S]) X() S { return v[0] }
func (v Vec3[S]) Y() S { return v[1] }
func (v Vec3[S]) Z() S { return v[2] }

func (v Vec3[S]) Add(other Vec3[S]) Vec3[S] {
	for i := range v {
		v[i] += other[i]
	}
	return v
}

func (v Vec3[S]) Sub(other Vec3[S]) Vec3[S] {
	for i := range v {
		v[i] -= other[i]
	}
	return v
}

func (v Vec3[S]) Mul(scalar S) Vec3[S] {
	for i := range v {
		v[i] *= scalar
	}
	return v
}

func (v Vec3[S]) MulEach(other Vec3[S]) Vec3[S] {
	for i := range v {
		v[i] *= other[i]
	}
	return v
}

func (v Vec3[S]) Neg() Vec3[S] {
	for i := range v {
		v[i] = -v[i]
	}
	return v
}

func (v Vec3[S]) Dot(other Vec3[S]) S {
	return v[0]*other[0] + v[1]*other[1] + v[2]*other[2]
}

func (v Vec3[S]) Cross(other Vec3[S]) Vec3[S] {
	return Vec3[S]{
		v[1]*other[2] - v[2]*other[1],
		v[2]*other[0] - v[0]*other[2],
		v[0]*other[1] - v[1]*other[0],
	}
}

func (v Vec3[S]) LengthSqr() S {
	return v.Dot(v)
}

func (v Vec3[S]) Length() float64 {
	return math.Sqrt(float64(v.LengthSqr()))
}

// Extend returns the homogeneous vector (x, y, z, w).
func (v Vec3[S]) Extend(w S) Vec4[S] {
	return Vec4[S]{v[0], v[1], v[2], w}
}

// Truncate drops the z component.
func (v Vec3[S]) Truncate() Vec2[S] {
	return Vec2[S]{v[0], v[1]}
}

func (v Vec3[S]) FuzzyEq(other Vec3[S]) bool {
	return FuzzyEq(v[0], other[0]) && FuzzyEq(v[1], other[1]) && FuzzyEq(v[2], other[2])
}

func (v Vec3[S]) ExactEq(other Vec3[S]) bool {
	return v == other
}

func (v Vec3[S]) String() string {
	return fmt.Sprintf("Vec3(x=%v, y=%v, z=%v)", v[0], v[1], v[2])
}

// Vec4

func (v Vec4[S]) X() S { return v[0] }
func (v Vec4[S]) Y() S { return v[1] }
func (v Vec4[S]) Z() S { return v[2] }
func (v Vec4[S]) W() S { return v[3] }

func (v Vec4[S]) Add(other Vec4[S]) Vec4[S] {
	for i := range v {
		v[i] += other[i]
	}
	return v
}

func (v Vec4[S]) Sub(other Vec4[S]) Vec4[S] {
	for i := range v {
		v[i] -= other[i]
	}
	return v
}

func (v Vec4[S]) Mul(scalar S) Vec4[S] {
	for i := range v {
		v[i] *= scalar
	}
	return v
}

func (v Vec4[S]) MulEach(other Vec4[S]) Vec4[S] {
	for i := range v {
		v[i] *= other[i]
	}
	return v
}

func (v Vec4[S]) Neg() Vec4[S] {
	for i := range v {
		v[i] = -v[i]
	}
	return v
}

func (v Vec4[S]) Dot(other Vec4[S]) S {
	return v[0]*other[0] + v[1]*other[1] + v[2]*other[2] + v[3]*other[3]
}

func (v Vec4[S]) LengthSqr() S {
	return v.Dot(v)
}

func (v Vec4[S]) Length() float64 {
	return math.Sqrt(float64(v.LengthSqr()))
}

// Truncate drops the w component.
func (v Vec4[S]) Truncate() Vec3[S] {
	return Vec3[S]{v[0], v[1], v[2]}
}

func (v Vec4[S]) FuzzyEq(other Vec4[S]) bool {
	return FuzzyEq(v[0], other[0]) && FuzzyEq(v[1], other[1]) &&
		FuzzyEq(v[2], other[2]) && FuzzyEq(v[3], other[3])
}

func (v Vec4[S]) ExactEq(other Vec4[S]) bool {
	return v == other
}

func (v Vec4[S]) String() string {
	return fmt.Sprintf("Vec4(x=%v, y=%v, z=%v, w=%v)", v[0], v[1], v[2], v[3])
}

package gm

import (
	"math"
	"math/rand/v2"
)

// RandomIn returns a random value uniformly sampled from the given range, excluding max.
func RandomIn[S Scalar](min, max S) S {
	return S(rand.Float64()*(float64(max)-float64(min))) + min
}

// RandomAngle returns a random angle uniformly sampled from the full circle
func RandomAngle() Rad {
	return Rad(RandomIn(0, 2*math.Pi))
}

// RandomVec3 returns a vector uniformly sampled from within the unit sphere.
func RandomVec3[S Scalar]() Vec3[S] {
	for {
		v := Vec3[float64]{
			RandomIn(-1.0, 1.0),
			RandomIn(-1.0, 1.0),
			RandomIn(-1.0, 1.0),
		}

		if v.LengthSqr() <= 1 {
			return Vec3[S]{S(v[0]), S(v[1]), S(v[2])}
		}
	}
}

// RandomRotation returns a rotation matrix composed of random rotations
// around the z, y and x axis.
func RandomRotation[S Scalar]() Mat3[S] {
	return RotationZ[S](RandomAngle()).
		Mul(RotationY[S](RandomAngle())).
		Mul(RotationX[S](RandomAngle()))
}

// RandomMat4 returns a matrix with every element sampled from [-1, 1).
func RandomMat4[S Scalar]() Mat4[S] {
	var m Mat4[S]
	for c := range m {
		for r := range m[c] {
			m[c][r] = S(RandomIn(-1.0, 1.0))
		}
	}

	return m
}

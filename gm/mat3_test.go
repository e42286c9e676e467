package gm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomMat3() Mat3[float64] {
	var m Mat3[float64]
	for c := range m {
		for r := range m[c] {
			m[c][r] = RandomIn(-10.0, 10.0)
		}
	}
	return m
}

func TestMat3_Mul(t *testing.T) {
	a := NewMat3(
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	)

	b := NewMat3(
		1, 0, 0,
		0, 0, 1,
		0, 1, 0,
	)

	// b swaps the second and third column of a when multiplied from the right
	require.Equal(t, NewMat3(1, 2, 3, 7, 8, 9, 4, 5, 6), a.Mul(b))

	// and the second and third row when multiplied from the left
	require.Equal(t, NewMat3(1, 3, 2, 4, 6, 5, 7, 9, 8), b.Mul(a))

	for range 16 {
		m := randomMat3()
		require.True(t, m.Mul(IdentityMat3[float64]()).FuzzyEq(m))
		require.True(t, IdentityMat3[float64]().Mul(m).FuzzyEq(m))
	}
}

func TestMat3_MulVec(t *testing.T) {
	m := NewMat3(
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	)

	require.Equal(t, Vec3Of(12, 15, 18), m.MulVec(Vec3Of(1, 1, 1)))
	require.Equal(t, m.Col(1), m.MulVec(Vec3UnitY[int]()))
}

func TestMat3_Transpose(t *testing.T) {
	for range 16 {
		m := randomMat3()
		require.True(t, m.Transpose().Transpose().FuzzyEq(m))

		for i := range m.Rows() {
			require.Equal(t, m.Row(i), m.Transpose().Col(i))
		}
	}
}

func TestMat3_RowCol(t *testing.T) {
	m := IdentityMat3[float32]()
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 3, m.Cols())

	_, err := m.TryCol(3)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = m.TryRow(3)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	require.Panics(t, func() { m.Col(3) })
}

func TestMat3_Arithmetic(t *testing.T) {
	for range 16 {
		m := randomMat3()
		n := randomMat3()

		require.True(t, m.Add(m.Neg()).FuzzyEq(ZeroMat3[float64]()))
		require.True(t, m.Add(n).Sub(n).FuzzyEq(m))
		require.True(t, m.MulScalar(2).MulScalar(0.5).FuzzyEq(m))
	}
}

func TestMat3_Predicates(t *testing.T) {
	id := IdentityMat3[float64]()
	require.True(t, id.IsIdentity())
	require.True(t, id.IsDiagonal())
	require.True(t, id.IsSymmetric())
	require.False(t, id.IsRotated())

	m := id
	m[2][0] = 1
	require.False(t, m.IsDiagonal())
	require.False(t, m.IsSymmetric())
	require.True(t, m.IsRotated())

	m[0][2] = 1
	require.True(t, m.IsSymmetric())

	require.True(t, IdentityMat3[float64]().Scale(Vec3Of(1.0, 2.0, 3.0)).IsDiagonal())
	require.True(t, RotationZ[float64](DegToRad(10)).IsRotated())
}

func TestMat3_Equality(t *testing.T) {
	m := RotationX[float64](DegToRad(30))
	n := m
	n[1][2] += 1e-8

	require.True(t, m.FuzzyEq(n))
	require.False(t, m.ExactEq(n))
	require.True(t, m.ExactEq(m))
}

func TestMat3_Scale(t *testing.T) {
	m := NewMat3(
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	)

	scaled := m.Scale(Vec3Of(2, 3, 4))
	require.Equal(t, m.Col(0).Mul(2), scaled.Col(0))
	require.Equal(t, m.Col(1).Mul(3), scaled.Col(1))
	require.Equal(t, m.Col(2).Mul(4), scaled.Col(2))

	require.Equal(t, NewMat3(2, 0, 0, 0, 3, 0, 0, 0, 4), IdentityMat3[int]().Scale(Vec3Of(2, 3, 4)))
}

func TestMat3_ToMat4(t *testing.T) {
	for range 16 {
		m := randomMat3()
		m4 := m.ToMat4()

		require.Equal(t, Vec4Of(0.0, 0.0, 0.0, 1.0), m4.Col(3))
		require.Equal(t, Vec4Of(0.0, 0.0, 0.0, 1.0), m4.Row(3))

		for i := range 3 {
			require.Equal(t, m.Col(i), m4.Col(i).Truncate())
		}

		require.Equal(t, m, m4.Mat3())
	}
}

func TestMat3_Rotation(t *testing.T) {
	r := RotationZ[float64](DegToRad(90)).MulVec(Vec3Of(1.0, 0.0, 0.0))
	require.True(t, r.FuzzyEq(Vec3Of(0.0, 1.0, 0.0)))

	r = RotationX[float64](DegToRad(90)).MulVec(Vec3Of(0.0, 1.0, 0.0))
	require.True(t, r.FuzzyEq(Vec3Of(0.0, 0.0, 1.0)))

	r = RotationY[float64](DegToRad(90)).MulVec(Vec3Of(0.0, 0.0, 1.0))
	require.True(t, r.FuzzyEq(Vec3Of(1.0, 0.0, 0.0)))

	for range 16 {
		m := RandomRotation[float64]()
		require.InDelta(t, 1, m.Determinant(), 1e-9)
		require.True(t, m.Mul(m.Transpose()).IsIdentity())
	}
}

func TestMat3_ToQuat(t *testing.T) {
	t.Run("identity", func(t *testing.T) {
		q := IdentityMat3[float64]().ToQuat()
		require.True(t, q.ExactEq(IdentityQuat[float64]()))
	})

	t.Run("integer identity", func(t *testing.T) {
		q := IdentityMat3[int32]().ToQuat()
		require.Equal(t, NewQuat[int32](1, 0, 0, 0), q)
	})

	t.Run("rotate 180° around z", func(t *testing.T) {
		m := NewMat3(
			-1.0, 0.0, 0.0,
			0.0, -1.0, 0.0,
			0.0, 0.0, 1.0,
		)

		require.Less(t, m.Trace(), 0.0)

		q := m.ToQuat()
		require.InDelta(t, 0, q.W, 1e-9)
		require.InDelta(t, 0, q.X, 1e-9)
		require.InDelta(t, 0, q.Y, 1e-9)
		require.InDelta(t, 1, math.Abs(q.Z), 1e-9)

		require.InDelta(t, 1, q.Length(), 1e-9)
		require.True(t, q.ToMat3().FuzzyEq(m))
	})

	t.Run("rotate 180° around x", func(t *testing.T) {
		m := RotationX[float64](math.Pi)

		q := m.ToQuat()
		require.True(t, q.SameRotation(NewQuat(0.0, 1.0, 0.0, 0.0)))
		require.True(t, q.ToMat3().FuzzyEq(m))
	})

	t.Run("rotate 180° around y", func(t *testing.T) {
		m := RotationY[float64](math.Pi)

		q := m.ToQuat()
		require.True(t, q.SameRotation(NewQuat(0.0, 0.0, 1.0, 0.0)))
		require.True(t, q.ToMat3().FuzzyEq(m))
	})

	t.Run("axis rotations", func(t *testing.T) {
		for _, deg := range []float64{0, 15, 45, 90, 119, 135, 150, 179, 180} {
			sin, cos := DegToRad(deg / 2).Sincos()

			require.True(t, RotationX[float64](DegToRad(deg)).ToQuat().SameRotation(NewQuat(cos, sin, 0, 0)))
			require.True(t, RotationY[float64](DegToRad(deg)).ToQuat().SameRotation(NewQuat(cos, 0, sin, 0)))
			require.True(t, RotationZ[float64](DegToRad(deg)).ToQuat().SameRotation(NewQuat(cos, 0, 0, sin)))
		}
	})

	t.Run("round trip", func(t *testing.T) {
		m := RotationZ[float64](DegToRad(30)).
			Mul(RotationY[float64](DegToRad(-40))).
			Mul(RotationX[float64](DegToRad(25)))

		require.GreaterOrEqual(t, m.Trace(), 0.0)

		q := m.ToQuat()
		require.InDelta(t, 1, q.Length(), 1e-9)
		require.True(t, q.ToMat3().FuzzyEq(m))
	})

	t.Run("float32", func(t *testing.T) {
		q := RotationZ[float32](DegToRad(90)).ToQuat()
		require.InDelta(t, math.Sqrt2/2, q.W, 1e-6)
		require.InDelta(t, math.Sqrt2/2, q.Z, 1e-6)
	})
}

func TestMat3_FromSlice(t *testing.T) {
	m, err := Mat3FromSlice([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(t, err)
	require.Equal(t, NewMat3(1.0, 2.0, 3.0, 4.0, 5.0, 6.0, 7.0, 8.0, 9.0), m)

	_, err = Mat3FromSlice(make([]float64, 16))
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestTranslationMat3(t *testing.T) {
	m := TranslationMat3(Vec2Of(2.0, 3.0)).Mul(RotationZ[float64](DegToRad(90)))

	r := m.MulVec(Vec2Of(1.0, 0.0).Extend(1))
	require.True(t, r.FuzzyEq(Vec3Of(2.0, 4.0, 1.0)))
}

func TestMat3_TransformPoint(t *testing.T) {
	m := TranslationMat3(Vec2Of(2.0, 3.0)).Mul(RotationZ[float64](DegToRad(90)))

	require.True(t, m.TransformPoint(Vec2Of(1.0, 0.0)).FuzzyEq(Vec2Of(2.0, 4.0)))
	require.True(t, m.TransformVec(Vec2Of(1.0, 0.0)).FuzzyEq(Vec2Of(0.0, 1.0)))

	require.Equal(t, Vec2Of(5, 7), TranslationMat3(Vec2Of(4, 5)).TransformPoint(Vec2Of(1, 2)))
	require.Equal(t, Vec2Of(1, 2), TranslationMat3(Vec2Of(4, 5)).TransformVec(Vec2Of(1, 2)))
}

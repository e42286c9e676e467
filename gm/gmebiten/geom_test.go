package gmebiten

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/bykemath/gm"
	"github.com/stretchr/testify/require"
)

func TestGeoM(t *testing.T) {
	m := gm.TranslationMat3(gm.Vec2Of(10.0, 20.0)).
		Mul(gm.RotationMat2[float64](gm.DegToRad(30)).ToMat3()).
		Mul(gm.IdentityMat3[float64]().Scale(gm.Vec3Of(2.0, 3.0, 1.0)))

	g := GeoM(m)

	x, y := g.Apply(1, 1)
	ex, ey := Apply(m, 1, 1)
	require.InDelta(t, ex, x, 1e-9)
	require.InDelta(t, ey, y, 1e-9)

	require.True(t, FromGeoM(g).FuzzyEq(m))
}

func TestFromGeoM(t *testing.T) {
	var g ebiten.GeoM
	require.True(t, FromGeoM(g).IsIdentity())

	g.Scale(2, 2)
	g.Translate(5, 0)

	m := FromGeoM(g)
	require.Equal(t, gm.Vec3Of(5.0, 0.0, 1.0), m.Col(2))

	x, y := Apply(m, 1, 1)
	require.InDelta(t, 7, x, 1e-9)
	require.InDelta(t, 2, y, 1e-9)
}

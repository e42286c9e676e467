// Package gmebiten converts between gm matrices and the types used by ebiten.
package gmebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/bykemath/gm"
)

// GeoM converts a 2d affine transform in homogeneous coordinates into an ebiten.GeoM.
// The last row of m is dropped, as a GeoM can not express a projection.
func GeoM(m gm.Mat3[float64]) ebiten.GeoM {
	var g ebiten.GeoM
	for row := range 2 {
		for col := range 3 {
			g.SetElement(row, col, m[col][row])
		}
	}

	return g
}

// FromGeoM converts an ebiten.GeoM into a 2d affine transform in homogeneous coordinates.
func FromGeoM(g ebiten.GeoM) gm.Mat3[float64] {
	var m gm.Mat3[float64]
	for row := range 2 {
		for col := range 3 {
			m[col][row] = g.Element(row, col)
		}
	}

	m[2][2] = 1
	return m
}

// Apply transforms the point (x, y) with m, the same way GeoM.Apply would.
func Apply(m gm.Mat3[float64], x, y float64) (float64, float64) {
	p := m.MulVec(gm.Vec3Of(x, y, 1))
	return p[0], p[1]
}

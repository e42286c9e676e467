// Package gmcp converts between gm types and the types of the chipmunk2d
// physics engine cp.
package gmcp

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/bykemath/gm"
)

// Transform converts a 2d affine transform in homogeneous coordinates into a cp.Transform.
// The last row of m is dropped.
func Transform(m gm.Mat3[float64]) cp.Transform {
	return cp.NewTransform(
		m[0][0], m[1][0], m[2][0],
		m[0][1], m[1][1], m[2][1],
	)
}

// FromTransform converts a cp.Transform into a 2d affine transform in homogeneous coordinates.
func FromTransform(t cp.Transform) gm.Mat3[float64] {
	x := t.Vect(cp.Vector{X: 1})
	y := t.Vect(cp.Vector{Y: 1})
	origin := t.Point(cp.Vector{})

	return gm.Mat3FromCols(
		gm.Vec3Of(x.X, x.Y, 0),
		gm.Vec3Of(y.X, y.Y, 0),
		gm.Vec3Of(origin.X, origin.Y, 1),
	)
}

func Vector(v gm.Vec2[float64]) cp.Vector {
	return cp.Vector{X: v[0], Y: v[1]}
}

func FromVector(v cp.Vector) gm.Vec2[float64] {
	return gm.Vec2Of(v.X, v.Y)
}

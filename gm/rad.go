package gm

import "math"

// Rad is an angle in radians. Rotations built from a Rad are counter-clockwise.
type Rad float64

func DegToRad(deg float64) Rad {
	return Rad(math.Pi / 180 * deg)
}

func (r Rad) Degrees() float64 {
	return float64(r) * (180 / math.Pi)
}

func (r Rad) Radians() float64 {
	return float64(r)
}

// Normalized returns the angle normalized to the range [-π, π)
func (r Rad) Normalized() Rad {
	angle := math.Mod(float64(r)+math.Pi, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}

	return Rad(angle - math.Pi)
}

// DifferenceTo returns the smallest difference between two angles,
// normalized to the range [-π, π)
func (r Rad) DifferenceTo(other Rad) Rad {
	return (r - other).Normalized()
}

func (r Rad) Sincos() (sin, cos float64) {
	return math.Sincos(float64(r))
}

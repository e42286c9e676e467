package gm

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is the constraint for the element type of vectors, matrices and quaternions.
// Unsigned integers are not supported, as every type in this package can be negated.
type Scalar interface {
	constraints.Signed | constraints.Float
}

// Epsilon is the tolerance used by FuzzyEq.
const Epsilon = 1e-6

// FuzzyEq reports whether a and b differ by no more than Epsilon.
// NaN is never fuzzy equal to anything.
func FuzzyEq[S Scalar](a, b S) bool {
	return math.Abs(float64(a)-float64(b)) <= Epsilon
}

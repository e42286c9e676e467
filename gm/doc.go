// Package gm (stands for geometry math) provides fixed size vectors, square
// matrices and quaternions for real-time graphics and geometry code.
//
// The matrix types Mat2, Mat3 and Mat4 are column major: m[c][r] is the
// element in column c and row r, and every column is a vector of the same
// dimension. All operations take and return values; nothing is mutated in
// place, so matrices can be shared between goroutines freely.
//
// Equality comes in two flavours. FuzzyEq compares elements with a tolerance
// of Epsilon and is what the structural predicates (IsIdentity, IsDiagonal,
// ...) use. ExactEq is exact (no tolerance) and behaves like the == operator:
// -0 equals +0, and a value holding NaN is never equal to anything, itself
// included.
//
// Matrix inversion is not provided.
package gm

package main

import (
	"time"

	"github.com/oliverbestmann/bykemath/gm"
)

type Result struct {
	Duration time.Duration

	// Checksum is derived from the workload output so the compiler
	// can not drop the computation.
	Checksum float64
}

type Workload func(iterations int) Result

var workloads = map[string]Workload{
	"mul4":       mul4,
	"transpose4": transpose4,
	"toquat":     toQuat,
	"compose":    compose,
}

func mul4(iterations int) Result {
	m := gm.RandomMat4[float64]()
	n := gm.RandomRotation[float64]().ToMat4()

	startTime := time.Now()

	acc := gm.IdentityMat4[float64]()
	for range iterations {
		// keep acc bounded by multiplying with a rotation
		acc = acc.Mul(n)
	}

	return Result{
		Duration: time.Since(startTime),
		Checksum: m.Mul(acc).Trace(),
	}
}

func transpose4(iterations int) Result {
	m := gm.RandomMat4[float64]()

	startTime := time.Now()

	for range iterations {
		m = m.Transpose()
	}

	return Result{
		Duration: time.Since(startTime),
		Checksum: m.Trace(),
	}
}

func toQuat(iterations int) Result {
	rotations := make([]gm.Mat3[float64], 64)
	for i := range rotations {
		rotations[i] = gm.RandomRotation[float64]()
	}

	startTime := time.Now()

	var checksum float64
	for i := range iterations {
		q := rotations[i%len(rotations)].ToQuat()
		checksum += q.W
	}

	return Result{
		Duration: time.Since(startTime),
		Checksum: checksum,
	}
}

// compose builds model matrices the way a renderer does: rotation, scale and
// translation of a 3x3 basis promoted to 4x4, then transforms a point.
func compose(iterations int) Result {
	startTime := time.Now()

	var checksum float64
	for i := range iterations {
		angle := gm.Rad(float64(i) * 0.001)

		model := gm.RotationZ[float64](angle).
			Scale(gm.Vec3Of(2.0, 2.0, 2.0)).
			ToMat4().
			Translate(gm.Vec3Of(1.0, 2.0, 3.0))

		checksum += model.TransformPoint(gm.Vec3Of(1.0, 0.0, 0.0)).X()
	}

	return Result{
		Duration: time.Since(startTime),
		Checksum: checksum,
	}
}

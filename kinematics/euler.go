package kinematics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// axisEps is the squared-norm floor below which a direction is treated
// as degenerate and replaced by its fallback axis.
const axisEps = 1e-10

// Angles is a batch of z-y-z Euler angles.
type Angles struct {
	Alpha, Beta, Gamma []float64
}

func zeroAngles(n int) Angles {
	return Angles{
		Alpha: make([]float64, n),
		Beta:  make([]float64, n),
		Gamma: make([]float64, n),
	}
}

// unitOr normalizes v, substituting fallback for (near-)zero input.
func unitOr(v, fallback r3.Vec) r3.Vec {
	n2 := r3.Norm2(v)
	if n2 < axisEps*axisEps {
		return fallback
	}
	return r3.Scale(1/math.Sqrt(n2), v)
}

// crossUnit returns the unit cross product a×b, substituting fallback
// when a and b are (anti-)parallel. The substitution is per event and
// deterministic, so degenerate configurations stay reproducible.
func crossUnit(a, b, fallback r3.Vec) r3.Vec {
	return unitOr(r3.Cross(a, b), fallback)
}

var (
	xAxis = r3.Vec{X: 1}
	yAxis = r3.Vec{Y: 1}
	zAxis = r3.Vec{Z: 1}
)

// angleZXZGetX computes, per event, the z-y-z Euler rotation carrying
// the frame (z1, x1) onto a frame whose z axis is z2, together with the
// induced x axis of the new frame. γ is zero by construction: the third
// rotation is absorbed into the returned x2 = (z1×z2)×z2 direction.
func angleZXZGetX(z1, x1, z2 []r3.Vec) (Angles, []r3.Vec) {
	n := len(z1)
	ang := zeroAngles(n)
	x2 := make([]r3.Vec, n)
	for i := 0; i < n; i++ {
		uz1 := unitOr(z1[i], zAxis)
		uz2 := unitOr(z2[i], uz1)
		uy1 := crossUnit(z1[i], x1[i], yAxis)
		ux1 := crossUnit(uy1, uz1, xAxis)
		uyr := crossUnit(z1[i], z2[i], uy1)
		uxr := crossUnit(uyr, uz1, ux1)
		ang.Alpha[i] = math.Atan2(r3.Dot(uxr, uy1), r3.Dot(uxr, ux1))
		ang.Beta[i] = math.Atan2(r3.Dot(uz2, uxr), r3.Dot(uz2, uz1))
		x2[i] = crossUnit(uyr, uz2, uxr)
	}
	return ang, x2
}

// angleZXZX computes, per event, the full z-y-z Euler rotation carrying
// the frame (z1, x1) onto the frame (z2, x2).
func angleZXZX(z1, x1, z2, x2 []r3.Vec) Angles {
	n := len(z1)
	ang := zeroAngles(n)
	for i := 0; i < n; i++ {
		uz1 := unitOr(z1[i], zAxis)
		uz2 := unitOr(z2[i], uz1)
		uy1 := crossUnit(z1[i], x1[i], yAxis)
		ux1 := crossUnit(uy1, uz1, xAxis)
		uy2 := crossUnit(z2[i], x2[i], uy1)
		ux2 := crossUnit(uy2, uz2, ux1)
		uyr := crossUnit(z1[i], z2[i], uy1)
		uxr := crossUnit(uyr, uz1, ux1)
		uxr2 := crossUnit(uyr, uz2, ux2)
		uyr2 := crossUnit(uz2, uxr2, uyr)
		ang.Alpha[i] = math.Atan2(r3.Dot(uxr, uy1), r3.Dot(uxr, ux1))
		ang.Beta[i] = math.Atan2(r3.Dot(uz2, uxr), r3.Dot(uz2, uz1))
		ang.Gamma[i] = math.Atan2(r3.Dot(ux2, uyr2), r3.Dot(ux2, uxr2))
	}
	return ang
}

// angleZXPlane handles a three-daughter vertex: the joint frame's z axis
// is the normal of the (coplanar) daughter momenta, and each daughter's
// x axis lies in the decay plane, perpendicular to its own momentum.
// Returns the Euler rotation onto the joint frame plus the per-daughter
// x axes.
func angleZXPlane(z1, x1 []r3.Vec, zi [][]r3.Vec) (Angles, [][]r3.Vec) {
	n := len(z1)
	normal := make([]r3.Vec, n)
	for i := 0; i < n; i++ {
		ua := unitOr(zi[0][i], zAxis)
		normal[i] = crossUnit(zi[0][i], zi[1][i], ua)
	}
	ang, _ := angleZXZGetX(z1, x1, normal)
	xi := make([][]r3.Vec, len(zi))
	for k := range zi {
		xi[k] = make([]r3.Vec, n)
		for i := 0; i < n; i++ {
			uz := unitOr(zi[k][i], zAxis)
			xi[k][i] = crossUnit(normal[i], uz, xAxis)
		}
	}
	return ang, xi
}

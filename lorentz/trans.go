package lorentz

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spinor/fourvec"
)

// SpacetimeBoost returns the 4×4 pure boost Λ(p) acting on column
// vectors (E, px, py, pz), with x = p/m:
//
//	Λ00 = x0, Λ0i = Λi0 = xi, Λij = δij + xi·xj/(1+x0)
//
// Λ(p) carries the rest-frame vector (m, 0) onto p itself.
func SpacetimeBoost(p fourvec.Vec) *mat.Dense {
	m := p.M()
	x0, x1, x2, x3 := p.E/m, p.Px/m, p.Py/m, p.Pz/m
	g := 1 / (1 + x0)
	return mat.NewDense(4, 4, []float64{
		x0, x1, x2, x3,
		x1, 1 + x1*x1*g, x1 * x2 * g, x1 * x3 * g,
		x2, x2 * x1 * g, 1 + x2*x2*g, x2 * x3 * g,
		x3, x3 * x1 * g, x3 * x2 * g, 1 + x3*x3*g,
	})
}

// RestBoost returns the boost into the rest frame of p, i.e. Λ(g·p).
func RestBoost(p fourvec.Vec) *mat.Dense {
	return SpacetimeBoost(p.Neg())
}

// Apply multiplies a 4×4 transform into a four-vector.
func Apply(t *mat.Dense, v fourvec.Vec) fourvec.Vec {
	in := []float64{v.E, v.Px, v.Py, v.Pz}
	var out [4]float64
	for i := 0; i < 4; i++ {
		row := t.RawRowView(i)
		for j := 0; j < 4; j++ {
			out[i] += row[j] * in[j]
		}
	}
	return fourvec.Vec{E: out[0], Px: out[1], Py: out[2], Pz: out[3]}
}

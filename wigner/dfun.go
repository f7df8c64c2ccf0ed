package wigner

import (
	"errors"
	"math"
	"sync"

	"github.com/katalvlaran/spinor/tensor"
)

// Sentinel errors for the rotation engine.
var (
	// ErrInvalidSpin indicates a negative doubled spin.
	ErrInvalidSpin = errors.New("wigner: invalid doubled spin")

	// ErrBatchMismatch indicates Euler-angle batches of unequal length.
	ErrBatchMismatch = errors.New("wigner: angle batch size mismatch")

	// ErrHelicity indicates a helicity outside −j..j or of wrong parity.
	ErrHelicity = errors.New("wigner: helicity incompatible with spin")
)

var (
	weightMu  sync.Mutex
	weightTab = make(map[int]*tensor.Dense)
)

func factorial(twice int) float64 {
	f := 1.0
	for i := 2; i <= twice/2; i++ {
		f *= float64(i)
	}
	return f
}

// SmallDWeight returns the weight table w[l,m,n] of the small-d expansion
//
//	d^j_{m,n}(β) = Σ_l w[l,m,n] sin(β/2)^l cos(β/2)^{2j−l}
//
// for doubled spin twoJ, shape (2j+1, 2j+1, 2j+1) with m,n ascending from
// −j. The table depends only on twoJ and is cached for the process
// lifetime; callers must not mutate it.
func SmallDWeight(twoJ int) (*tensor.Dense, error) {
	if twoJ < 0 {
		return nil, ErrInvalidSpin
	}
	weightMu.Lock()
	defer weightMu.Unlock()
	if t, ok := weightTab[twoJ]; ok {
		return t, nil
	}
	dim := twoJ + 1
	out, _ := tensor.NewDense(dim, dim, dim)
	for m := -twoJ; m <= twoJ; m += 2 {
		for n := -twoJ; n <= twoJ; n += 2 {
			for k := max(0, n-m); k <= min(twoJ-m, twoJ+n); k += 2 {
				l := (2*k + m - n) / 2
				sign := 1.0
				if ((k+m-n)/2)%2 != 0 {
					sign = -1
				}
				w := sign * math.Sqrt(factorial(twoJ+m)*factorial(twoJ-m)*
					factorial(twoJ+n)*factorial(twoJ-n))
				w /= factorial(twoJ-m-k) * factorial(twoJ+n-k) *
					factorial(k+m-n) * factorial(k)
				out.Set(w, l, (m+twoJ)/2, (n+twoJ)/2)
			}
		}
	}
	weightTab[twoJ] = out
	return out, nil
}

// SmallD evaluates the batched small-d matrix d^j(β), shape (N, 2j+1, 2j+1).
func SmallD(beta []float64, twoJ int) (*tensor.Dense, error) {
	w, err := SmallDWeight(twoJ)
	if err != nil {
		return nil, err
	}
	dim := twoJ + 1
	n := len(beta)
	if n == 0 {
		return nil, ErrBatchMismatch
	}
	out, _ := tensor.NewDense(n, dim, dim)
	sc := make([]float64, dim)
	for e := 0; e < n; e++ {
		s, c := math.Sin(beta[e]/2), math.Cos(beta[e]/2)
		sp, cp := 1.0, 1.0
		// sc[l] = sin^l · cos^{2j−l}, built from both ends.
		pows := make([]float64, dim)
		for l := 0; l < dim; l++ {
			pows[l] = sp
			sp *= s
		}
		for l := dim - 1; l >= 0; l-- {
			sc[l] = pows[l] * cp
			cp *= c
		}
		oe := out.Data()[e*dim*dim : (e+1)*dim*dim]
		wd := w.Data()
		for l := 0; l < dim; l++ {
			if sc[l] == 0 {
				continue
			}
			for ab := 0; ab < dim*dim; ab++ {
				oe[ab] += sc[l] * wd[l*dim*dim+ab]
			}
		}
	}
	return out, nil
}

// expI returns the batch of phase factors e^{i·m·θ[e]} for a fixed list of
// (half-integer) projections m, shape (N, len(m)). Batch is non-empty by
// the caller's contract.
func expI(theta []float64, m []float64) *tensor.CDense {
	out, _ := tensor.NewCDense(len(theta), len(m))
	for e, t := range theta {
		for i, mi := range m {
			s, c := math.Sincos(mi * t)
			out.Set(complex(c, s), e, i)
		}
	}
	return out
}

// DMatrixConj returns the batched conjugate Wigner-D matrix
// D^j(α,β,γ)* = e^{imα} d^j(β) e^{inγ}, shape (N, 2j+1, 2j+1), complex.
func DMatrixConj(alpha, beta, gamma []float64, twoJ int) (*tensor.CDense, error) {
	if len(alpha) != len(beta) || len(beta) != len(gamma) {
		return nil, ErrBatchMismatch
	}
	d, err := SmallD(beta, twoJ)
	if err != nil {
		return nil, err
	}
	dim := twoJ + 1
	ms := make([]float64, dim)
	for i := range ms {
		ms[i] = float64(2*i-twoJ) / 2
	}
	ea := expI(alpha, ms)
	eg := expI(gamma, ms)
	n := len(alpha)
	out, _ := tensor.NewCDense(n, dim, dim)
	for e := 0; e < n; e++ {
		de := d.Data()[e*dim*dim : (e+1)*dim*dim]
		oe := out.Data()[e*dim*dim : (e+1)*dim*dim]
		for a := 0; a < dim; a++ {
			pa := ea.At(e, a)
			for b := 0; b < dim; b++ {
				oe[a*dim+b] = pa * eg.At(e, b) * complex(de[a*dim+b], 0)
			}
		}
	}
	return out, nil
}

// DMatrixHelicity selects D-matrix elements by helicity difference:
//
//	out[e, a, b, c] = D^j_{λa, λb−λc}(e)  when |λb−λc| ≤ j, else 0
//
// with all helicities doubled. When lc is nil a single zero helicity is
// assumed and the last axis is dropped (shape N×len(la)×len(lb)).
func DMatrixHelicity(d *tensor.CDense, twoJ int, la, lb, lc []int) (*tensor.CDense, error) {
	if d.Rank() != 3 || d.Dim(1) != twoJ+1 || d.Dim(2) != twoJ+1 {
		return nil, tensor.ErrDimensionMismatch
	}
	squeeze := false
	if lc == nil {
		lc = []int{0}
		squeeze = true
	}
	for _, l := range la {
		if abs(l) > twoJ || (l+twoJ)%2 != 0 {
			return nil, ErrHelicity
		}
	}
	for _, b := range lb {
		for _, c := range lc {
			if (b-c+twoJ)%2 != 0 {
				return nil, ErrHelicity
			}
		}
	}
	n, dim := d.Dim(0), twoJ+1
	out, _ := tensor.NewCDense(n, len(la), len(lb), len(lc))
	for e := 0; e < n; e++ {
		de := d.Data()[e*dim*dim : (e+1)*dim*dim]
		for ia, a := range la {
			ra := (a + twoJ) / 2
			for ib, b := range lb {
				for ic, c := range lc {
					delta := b - c
					if abs(delta) > twoJ {
						continue
					}
					out.Set(de[ra*dim+(delta+twoJ)/2], e, ia, ib, ic)
				}
			}
		}
	}
	if squeeze {
		return out.Reshape(n, len(la), len(lb))
	}
	return out, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

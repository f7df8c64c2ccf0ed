package lineshape

import (
	"math"
	"math/cmplx"
)

// flatte is the coupled-channel form
//
//	R(m) = 1 / (m0² − m² + i·imSign·m0/m·Σ_i g_i·q_i(m))
//
// with q_i the analytically continued breakup momentum of channel i.
// imSign = +1 gives the "Flatte" convention, −1 the conjugate "FlatteC".
type flatte struct {
	m0       float64
	channels [][2]float64
	g        []float64
	imSign   float64
}

func newFlatte(c Config, imSign float64) (Model, error) {
	if c.Mass <= 0 || len(c.MassList) == 0 || len(c.MassList) != len(c.G) {
		return nil, ErrConfig
	}
	return &flatte{
		m0:       c.Mass,
		channels: c.MassList,
		g:        c.G,
		imSign:   imSign,
	}, nil
}

func (f *flatte) Eval(m []float64) []complex128 {
	out := make([]complex128, len(m))
	for i, mi := range m {
		deltaS := f.m0*f.m0 - mi*mi
		mc := f.m0 / mi
		var rho complex128
		for k, ch := range f.channels {
			q := calMomentum(mi, ch[0], ch[1])
			rho += q * complex(0, f.g[k]*mc)
		}
		rho *= complex(f.imSign, 0)
		re := deltaS + real(rho)
		im := imag(rho)
		d := re*re + im*im
		out[i] = complex(re/d, -im/d)
	}
	return out
}

// defaultBarrierD is the customary barrier radius in GeV⁻¹.
const defaultBarrierD = 3.0

// flatte2 extends flatte with per-channel orbital momenta: each channel
// term is normalized by its coupling momentum q0 at the pole, scaled by
// |q/q0|^{2l}, and weighted by the squared Blatt–Weisskopf barrier
// ratio. The sign convention is that of FlatteC.
type flatte2 struct {
	m0       float64
	channels [][2]float64
	g        []float64
	lList    []int
	noQ0     bool
	noBprime bool
	d        float64
}

func newFlatte2(c Config) (Model, error) {
	if c.Mass <= 0 || len(c.MassList) == 0 || len(c.MassList) != len(c.G) {
		return nil, ErrConfig
	}
	lList := c.LList
	if lList == nil {
		lList = make([]int, len(c.MassList))
	}
	if len(lList) != len(c.MassList) {
		return nil, ErrConfig
	}
	for _, l := range lList {
		if l < 0 {
			return nil, ErrConfig
		}
	}
	d := c.BarrierD
	if d == 0 {
		d = defaultBarrierD
	}
	return &flatte2{
		m0:       c.Mass,
		channels: c.MassList,
		g:        c.G,
		lList:    lList,
		noQ0:     c.NoQ0,
		noBprime: c.NoBprime,
		d:        d,
	}, nil
}

func (f *flatte2) Eval(m []float64) []complex128 {
	out := make([]complex128, len(m))
	for i, mi := range m {
		deltaS := f.m0*f.m0 - mi*mi
		mc := f.m0 / mi
		var rho complex128
		for k, ch := range f.channels {
			q := calMomentum(mi, ch[0], ch[1])
			q0 := calMomentum(f.m0, ch[0], ch[1])
			if f.noQ0 {
				q0 = 1
			}
			term := q * complex(0, f.g[k]*mc)
			if !f.noQ0 {
				term *= complex(f.m0/cmplx.Abs(q0), 0)
			}
			if l := f.lList[k]; l != 0 {
				term *= complex(math.Pow(cmplx.Abs(q/q0), float64(2*l)), 0)
			}
			if !f.noBprime {
				aq, aq0 := cmplx.Abs(q), cmplx.Abs(q0)
				b := bprimeQ2(f.lList[k], aq*aq, aq0*aq0, f.d)
				term *= complex(b*b, 0)
			}
			rho += term
		}
		rho = -rho
		re := deltaS + real(rho)
		im := imag(rho)
		den := re*re + im*im
		out[i] = complex(re/den, -im/den)
	}
	return out
}

// bprimeQ2 is the Blatt–Weisskopf barrier ratio B'_l with squared
// momenta as inputs: √(h_l(q0²d²) / h_l(q²d²)).
func bprimeQ2(l int, q2, q02, d float64) float64 {
	return math.Sqrt(barrierH(l, q02*d*d) / barrierH(l, q2*d*d))
}

// barrierH is the Blatt–Weisskopf polynomial h_l(z), z = q²d²; orbital
// momenta above 5 clamp to the l = 5 form.
func barrierH(l int, z float64) float64 {
	switch {
	case l <= 0:
		return 1
	case l == 1:
		return 1 + z
	case l == 2:
		return 9 + z*(3+z)
	case l == 3:
		return 225 + z*(45+z*(6+z))
	case l == 4:
		return 11025 + z*(1575+z*(135+z*(10+z)))
	default:
		return 893025 + z*(99225+z*(6300+z*(315+z*(15+z))))
	}
}

package lineshape

import (
	"errors"
	"math"
)

// Sentinel errors for model construction.
var (
	// ErrUnknownModel indicates a name outside the registry.
	ErrUnknownModel = errors.New("lineshape: unknown model name")

	// ErrConfig indicates missing or inconsistent model parameters.
	ErrConfig = errors.New("lineshape: invalid model configuration")
)

// Model is a mass-dependent propagator factor R(m).
type Model interface {
	// Eval returns R(m) per event.
	Eval(m []float64) []complex128
}

// Config carries the union of model parameters; each model reads the
// fields it needs and validates them at construction.
type Config struct {
	Mass  float64 // resonance mass m0
	Width float64 // BW width Γ0

	// Flatte channels: per channel the two daughter masses and the
	// coupling g_i, paired by index.
	MassList [][2]float64
	G        []float64

	// Flatte2 extras. LList holds per-channel orbital momenta (nil
	// means all zero); NoQ0 skips the q0 coupling normalization;
	// NoBprime skips the Blatt–Weisskopf weight; BarrierD is the
	// barrier radius, 0 selecting the customary 3 GeV⁻¹.
	LList    []int
	NoQ0     bool
	NoBprime bool
	BarrierD float64
}

var registry = map[string]func(Config) (Model, error){
	"BW":      newBreitWigner,
	"Flatte":  func(c Config) (Model, error) { return newFlatte(c, +1) },
	"FlatteC": func(c Config) (Model, error) { return newFlatte(c, -1) },
	"Flatte2": newFlatte2,
}

// New builds the named model from cfg. The name set is fixed; unknown
// names return ErrUnknownModel.
func New(name string, cfg Config) (Model, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, ErrUnknownModel
	}
	return ctor(cfg)
}

// breitWigner is the relativistic constant-width form
// 1/(m0² − m² − i·m0·Γ0).
type breitWigner struct {
	m0, gamma float64
}

func newBreitWigner(c Config) (Model, error) {
	if c.Mass <= 0 || c.Width <= 0 {
		return nil, ErrConfig
	}
	return &breitWigner{m0: c.Mass, gamma: c.Width}, nil
}

func (b *breitWigner) Eval(m []float64) []complex128 {
	out := make([]complex128, len(m))
	for i, mi := range m {
		re := b.m0*b.m0 - mi*mi
		im := -b.m0 * b.gamma
		d := re*re + im*im
		out[i] = complex(re/d, -im/d)
	}
	return out
}

// calMomentum is the two-body breakup momentum of mass m into (ma, mb),
// analytically continued below threshold: real above, i·√|q²| below.
func calMomentum(m, ma, mb float64) complex128 {
	s := m * m
	sp, sm := ma+mb, ma-mb
	p2 := (s - sp*sp) * (s - sm*sm) / (4 * s)
	r := math.Sqrt(math.Abs(p2))
	if p2 > 0 {
		return complex(r, 0)
	}
	return complex(0, r)
}

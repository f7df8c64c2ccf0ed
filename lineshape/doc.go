// Package lineshape provides the mass-dependent propagator factors of
// resonances.
//
// Models are selected by name from a fixed registry — the variant set is
// closed, like a tagged union: a misspelled or unsupported name fails at
// construction, never at evaluation. Every model evaluates a batch of
// invariant masses to complex amplitudes.
//
// Available models:
//
//   - "BW"      — relativistic Breit–Wigner with constant width.
//   - "Flatte"  — coupled-channel Flatte form, im_sign = +1.
//   - "FlatteC" — Flatte with the conjugate sign convention, im_sign = −1.
//   - "Flatte2" — Flatte with per-channel orbital momenta, q0-normalized
//     couplings and Blatt–Weisskopf barrier weights, im_sign = −1.
//
// The breakup momentum is continued below threshold as i·√|q²|, so the
// Flatte forms stay analytic across channel openings.
package lineshape

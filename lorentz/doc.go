// Package lorentz builds batched finite-dimensional representation
// matrices of the restricted Lorentz group.
//
// A representation is labeled by a chiral pair (l, r) of half-integer
// spins. Rotations act as D^l ⊗ D^r through the wigner package; a boost
// along z is diagonal with entries exp((m_l − m_r)·ρ); a boost along an
// arbitrary axis conjugates the z-boost with the rotation taking ẑ onto
// that axis. Self-conjugate variants (RotationSC, BoostSC) block-embed
// the (l, r) and (r, l) pieces so parity acts within the space.
//
// The entry point for amplitude work is RepFromMomentum: it extracts the
// boost parameters (ρ, θ, φ) of a four-momentum batch and returns the
// matrix carrying a spin-s wavefunction from the rest (or standard
// light-like) frame into the lab frame.
//
// Parameter extraction never raises on degenerate events: momenta along
// the z axis get φ = 0, momenta at rest get θ = φ = ρ = 0, and a
// spacelike mass poisons only its own event with NaN.
package lorentz

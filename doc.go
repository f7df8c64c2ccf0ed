// Package spinor is a batched kinematics and spin-algebra toolkit for
// partial-wave amplitude analysis.
//
// 🚀 What is spinor?
//
//	A pure-computation library that brings together:
//		• Four-vector batches: boosts, rest frames, invariant masses
//		• Group algebra: Clebsch–Gordan tensors, covariant couplings
//		• Wigner rotations: small-d tables, batched D-matrices
//		• Lorentz representations: (l,r) and self-conjugate boosts/rotations
//		• Decay topologies: chains, groups, helicity & alignment angles
//		• Partial waves: spin wavefunctions, orbital tensors, projections
//		• Lineshapes: Breit–Wigner and coupled-channel Flatte forms
//
// ✨ Why choose spinor?
//
//   - Event-batched throughout – every operation carries the event axis
//   - Degeneracy-safe – poles and thresholds resolve per event, never
//     aborting a batch
//   - Fail-fast configuration – invalid spins, couplings and topologies
//     are sentinel errors at construction
//   - Pure Go numerics on gonum – no cgo, no runtime codegen
//
// Everything is organized under flat subpackages:
//
//	fourvec/    — four-momentum batches and Lorentz boosts
//	tensor/     — dense real/complex rank-N tensors with a batch axis
//	spin/       — half-integer labels, CG tensors, coupling matrices
//	wigner/     — small-d weight tables and batched D-matrices
//	lorentz/    — representation matrices and boost parameter extraction
//	kinematics/ — decay topology model, helicity and alignment angles
//	pwave/      — spin wavefunctions and partial-wave projections
//	lineshape/  — mass-dependent propagator models
//
// A two-body helicity chain in five lines:
//
//	b := kinematics.Particle{Name: "B"}
//	c := kinematics.Particle{Name: "C"}
//	top := kinematics.Particle{Name: "A"}
//	chain, _ := kinematics.NewDecayChain([]kinematics.Decay{{Core: top, Outs: []kinematics.Particle{b, c}}})
//	group, _ := kinematics.NewDecayGroup(chain)
//
// then CalcAngles(momenta, group) yields every helicity angle the
// amplitude model needs.
//
//	go get github.com/katalvlaran/spinor
package spinor

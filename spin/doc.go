// Package spin implements the group-algebra primitives of the partial-wave
// engine: half-integer spin labels, Clebsch–Gordan coefficient tensors,
// composite couplings, the chiral↔spacetime basis change of the Lorentz
// group, conjugation matrices, and the direct-sum embeddings used by
// self-conjugate (parity-doubled) representations.
//
// 🚀 What lives here?
//
//	• Half          — spin label stored as twice its value (3 ⇒ spin 3/2)
//	• CG / CCG      — coupling tensors l ⊗ r → s, and two-step composites
//	• XMuM / XMMu   — chiral ↔ four-vector similarity constants (4×4)
//	• Conjugation   — SU(2) conjugate-representation similarity matrix
//	• DirectSum     — block embedding into parity-doubled spaces (slot 1/2)
//	• USigma family — covariant coupling matrices between representation
//	                  and spin-projection indices (U, Ubar, UU, UUbar, P)
//
// Everything is deterministic, pure, and memoized: each tensor is computed
// at most once per quantum-number key for the lifetime of the process
// (concurrent first access is serialized per key). The key space is finite —
// spins above MaxTwoJ/2 are rejected with ErrInvalidSpin.
//
// Index convention: projection indices run from +j down to −j, matching the
// ordering the projector package contracts against. The Wigner engine uses
// the opposite (ascending) order; the two never share an index directly.
package spin

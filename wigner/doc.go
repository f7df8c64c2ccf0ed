// Package wigner builds batched Wigner rotation matrices.
//
// The small-d matrix d^j(β) is expanded over powers of sin(β/2) and
// cos(β/2) through a precomputed real weight table w[l,m,n] — products
// only, no trigonometric divisions — so β = 0 is exact and β = π is
// accurate to one ulp of cos(π/2). The
// full D-matrix attaches the complex phase factors e^{imα} and e^{inγ}.
//
// Convention: angles in radians, active z-y-z Euler rotations, and the
// returned matrix is the complex conjugate of the canonical D-matrix:
//
//	D^j_{m1,m2}(α,β,γ)* = e^{i m1 α} d^j_{m1,m2}(β) e^{i m2 γ}
//
// Downstream amplitude phases depend on this choice; it is part of the
// contract, not an implementation detail. Spins are passed doubled (2j)
// so half-integers stay integral; projection indices run ascending from
// −j to +j.
//
// Weight tables are memoized per 2j for the lifetime of the process.
package wigner

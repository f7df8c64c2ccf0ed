// Package kinematics models decay topologies and computes helicity
// angles from four-momentum batches.
//
// The data model is a value-identity hierarchy:
//
//   - Particle — name, spin, parity, mass; comparable, used as map key.
//   - Decay    — one vertex core → outs.
//   - DecayChain — a full cascade from one top to the final states.
//   - DecayGroup — several chains over the same top and final states.
//
// The angle calculator walks each chain top-down. Every daughter's
// helicity frame is reached from its mother's frame by the z-x-z Euler
// rotation taking the mother's axes onto the daughter momentum, followed
// by the boost into the daughter rest frame; the same sequence is
// accumulated as a 2×2 SL(2,C) word per final state, so that alignment
// angles between two chains fall out of a single matrix ratio.
//
// Numeric degeneracies never abort a batch: a final state along the z
// axis, a vanishing transverse momentum or a mother at rest all resolve
// to a fixed substitute axis or a zero angle in that event only.
// Structural problems — cycles, a missing momentum batch, chains that do
// not share top and final states — fail construction with sentinel
// errors.
//
// Typical use:
//
//	group, _ := kinematics.NewDecayGroup(chainBC, chainBD)
//	res, _ := kinematics.CalcAngles(momenta, group)
//
// where momenta maps every final-state Particle to its lab-frame batch.
package kinematics

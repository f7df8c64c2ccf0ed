// Package pwave assembles covariant partial-wave amplitudes.
//
// The building blocks are spin wavefunctions mapping a particle's
// helicity space into its Lorentz representation space (SWF/SWFbar, with
// distinct massive, massless and spin-0 forms), the spin-parity coupling
// tensors SPT joining two daughters to a mother, and the orbital tensors
// t_L(q) built from the daughter momentum difference in the mother rest
// frame.
//
// Two evaluation routes exist, matching the two ways amplitude models
// are fitted:
//
//   - CreateProj / CalAmp build a momentum-independent projection tensor
//     once per vertex and contract it with t_L(q) per event.
//   - HelicityPWA contracts everything per event, boosting massless
//     daughter wavefunctions with their momenta.
//
// Spins, orbital momentum L and total spin S are all spin.Half labels;
// parity/helicity tags are ±1. All outputs are batched over events on
// the leading axis.
package pwave

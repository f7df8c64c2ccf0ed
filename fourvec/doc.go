// Package fourvec provides batched relativistic four-vector algebra with
// metric signature (+,−,−,−).
//
// A batch is a plain []Vec slice, one entry per event; every function is
// data-parallel over that slice and allocates its result once. Spatial
// parts are exposed as gonum r3.Vec values so downstream axis calculus can
// use r3's cross/dot/norm primitives directly.
//
// Degenerate kinematics (β→0 boosts, below-threshold masses) follow the
// masked-substitution policy: a single bad event never aborts a batch, it
// only yields the documented fallback (or NaN where the contract says the
// value is undefined).
package fourvec

// Package prf implements the counter-based pseudo-random function used
// throughout the pipeline to derive per-sample, per-operation randomness
// from (seed, epoch, op_id) alone.
//
// PRF is pure: it has no hidden state, reads no ambient entropy or clock,
// and produces bit-identical output on every conforming platform for the
// same inputs. It is built from two applications of the SplitMix64 mixing
// function, which gives it strong avalanche behaviour (flipping one input
// bit flips roughly half the output bits) without requiring a full stream
// cipher.
//
// UniformUint32 turns a PRF draw into an unbiased integer in [0, n) using
// rejection sampling with a statically bounded retry count, which keeps
// worst-case execution time provable — a hard requirement for the
// certification targets this pipeline serves.
package prf

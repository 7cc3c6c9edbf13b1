// Package normalize applies a precomputed per-feature affine transform —
// out[i] = (in[i] - mean[i]) * inv_std[i] — to a Sample's data in Q16.16.
//
// The (mean, inv_std) pairs are computed offline and supplied by the
// caller; this package never estimates statistics at runtime, which would
// make results depend on whatever batch happened to be seen first.
package normalize

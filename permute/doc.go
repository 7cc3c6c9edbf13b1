// Package permute builds a bijection on [0, N) from (seed, epoch) using a
// balanced Feistel network whose round function is driven by SHA-256,
// combined with cycle walking so that the output always lands inside
// [0, N) even when N is not a power of two.
//
// For any fixed (N, seed, epoch), Permute restricted to [0, N) is a
// bijection: every value in [0, N) is hit by exactly one input index. This
// is what lets the pipeline shuffle a dataset's sample order once per
// epoch without ever materializing the full permutation array.
//
// Even-halved Feistel: half_bits is ceil(k/2), so when k (= ceil(log2 N))
// is odd, the two Feistel halves have equal width but their combined
// effective domain (1 << (2*half_bits)) can exceed N's next power of two.
// Cycle walking — repeating the Feistel step on its own output until the
// result falls back inside [0, N) — is the mechanism that corrects this;
// it is bounded by `range` iterations so termination is provable.
package permute

package permute

import "github.com/detpipe-core/detpipe/fixed"

// rounds is the fixed number of Feistel rounds.
const rounds = 4

// Permute maps index into [0, N) such that, for fixed (N, seed, epoch),
// the mapping is a bijection on [0, N).
//
//   - N <= 1 always returns 0 (there is only one possible output).
//   - index >= N is a defensive case: the caller has already gone out of
//     bounds, so Permute falls back to index % N rather than indexing the
//     Feistel network with an out-of-domain value.
//   - otherwise the index is split into two equal-width halves, run
//     through four Feistel rounds, recombined, and cycle-walked (re-run
//     on its own output) until the result lands inside [0, N); the walk
//     is bounded by Range iterations, and exhaustion sets Domain and
//     falls back to index % N.
func Permute(index, n uint32, seed uint64, epoch uint32, faults *fixed.FaultFlags) uint32 {
	if n <= 1 {
		return 0
	}
	if index >= n {
		return index % n
	}

	p := NewParams(seed, epoch, n)
	i := index
	for attempt := uint32(0); attempt < p.Range; attempt++ {
		l := i & p.HalfMask
		r := (i >> p.HalfBits) & p.HalfMask
		for round := uint8(0); round < rounds; round++ {
			f := FeistelRound(r, seed, epoch, round) & p.HalfMask
			l, r = r, l^f
		}
		j := (r << p.HalfBits) | l
		if j < n {
			return j
		}
		i = j
	}

	faults.Domain = true
	return index % n
}

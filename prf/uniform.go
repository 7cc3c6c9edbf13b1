package prf

import "github.com/detpipe-core/detpipe/fixed"

// rejectionRetries bounds the rejection-sampling loop in UniformUint32 so
// that worst-case execution time is a static, provable constant rather
// than depending on the draw itself.
const rejectionRetries = 4

// UniformUint32 returns an integer uniformly distributed in [0, n) derived
// from (seed, epoch, opID). n == 0 or n == 1 always returns 0 (there is
// only one possible output).
//
// For n <= 65536, the low 32 bits of PRF are rejection-sampled against the
// largest multiple of n that fits in uint32, which removes modulo bias
// exactly; the loop guard is rejectionRetries iterations, after which the
// draw is accepted anyway (biased) and Domain is set on faults so the
// caller can observe the approximation.
//
// For n > 65536, the bias from a single modulo reduction is negligible
// relative to the range (at most n/2^32 of the distribution), so a single
// PRF draw reduced by modulo is used directly with no rejection loop.
func UniformUint32(seed uint64, epoch uint32, opID uint32, n uint32, faults *fixed.FaultFlags) uint32 {
	if n == 0 || n == 1 {
		return 0
	}
	if n > 65536 {
		return uint32(PRF(seed, epoch, opID) % uint64(n))
	}

	limit := (uint32(0xFFFFFFFF) / n) * n
	state := PRF(seed, epoch, opID)
	r := uint32(state)
	for attempt := 0; r >= limit && attempt < rejectionRetries; attempt++ {
		state = mix(state)
		r = uint32(state)
	}
	if r >= limit {
		faults.Domain = true
	}
	return r % n
}

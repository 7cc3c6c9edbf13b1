package prf_test

import (
	"testing"

	"github.com/detpipe-core/detpipe/fixed"
	"github.com/detpipe-core/detpipe/prf"
)

// BenchmarkPRF measures a single PRF draw in isolation.
func BenchmarkPRF(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = prf.PRF(0x123456789ABCDEF0, 3, uint32(i))
	}
}

// BenchmarkUniformUint32Small exercises the rejection-sampling path (n<=65536).
func BenchmarkUniformUint32Small(b *testing.B) {
	var faults fixed.FaultFlags
	for i := 0; i < b.N; i++ {
		_ = prf.UniformUint32(0x123456789ABCDEF0, 3, uint32(i), 1000, &faults)
	}
}

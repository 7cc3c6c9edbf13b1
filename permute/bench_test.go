package permute_test

import (
	"testing"

	"github.com/detpipe-core/detpipe/fixed"
	"github.com/detpipe-core/detpipe/permute"
)

// BenchmarkPermute measures the amortized cost of shuffling a 60000-sample
// epoch index by index, the size of a typical MNIST-scale dataset.
func BenchmarkPermute(b *testing.B) {
	var faults fixed.FaultFlags
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = permute.Permute(uint32(i%60000), 60000, 0xFEDCBA9876543210, 0, &faults)
	}
}

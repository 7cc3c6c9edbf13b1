package batch

import (
	"github.com/detpipe-core/detpipe/fixed"
	"github.com/detpipe-core/detpipe/merkle"
)

// Verify recomputes the Merkle root of b's non-padding sample hashes
// (the first b.Effective entries) and reports whether it matches
// b.BatchHash. It also fails if faults already had any sticky bit set
// before this call — a fault raised anywhere during the batch's
// construction (augmentation, permutation, normalization) invalidates
// the commitment even when the hash still matches bit-for-bit, per
// merkle.Verify's propagation contract.
func Verify(b *Batch, faults *fixed.FaultFlags) bool {
	return merkle.Verify(b.SampleHashes[:b.Effective], b.BatchHash, faults)
}

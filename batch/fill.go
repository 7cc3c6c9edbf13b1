package batch

import (
	"github.com/detpipe-core/detpipe/fixed"
	"github.com/detpipe-core/detpipe/merkle"
	"github.com/detpipe-core/detpipe/permute"
	"github.com/detpipe-core/detpipe/sample"
	"github.com/detpipe-core/detpipe/sha256d"
)

// Fill assembles b from dataset as the bare-copy primitive: start =
// batch_index*batch_size, effective = min(batch_size, N-start). For
// i in [0, effective), the shuffled source index is permute.Permute(start+i,
// N, seed, epoch); that sample is shallow-copied into b.Samples[i] and
// its leaf hash computed. Remaining slots up to batch_size are zeroed
// padding, excluded from the Merkle root. Finally b.MerkleRoot and
// b.BatchHash are both set to merkle.Root(sample_hashes[:effective]) —
// the batch hash is the plain Merkle root, not an additional SHA wrap.
func Fill(b *Batch, dataset *sample.Dataset, batchIndex, epoch uint32, seed uint64, faults *fixed.FaultFlags) {
	b.Epoch = epoch
	b.BatchIndex = batchIndex

	n := dataset.NumSamples
	start := batchIndex * b.BatchSize

	effective := uint32(0)
	if start < n {
		effective = b.BatchSize
		if remaining := n - start; remaining < effective {
			effective = remaining
		}
	}

	for i := uint32(0); i < effective; i++ {
		global := start + i
		shuffled := permute.Permute(global, n, seed, epoch, faults)

		src, err := dataset.At(shuffled)
		if err != nil {
			faults.Domain = true
			continue
		}

		b.Refs[i] = Ref{OriginalIndex: global, ShuffledIndex: shuffled}
		b.Samples[i] = *src
		b.SampleHashes[i] = merkle.LeafHash(src)
	}

	for i := effective; i < b.BatchSize; i++ {
		b.Refs[i] = Ref{}
		b.Samples[i] = sample.Sample{}
		b.SampleHashes[i] = sha256d.Digest{}
	}

	b.Effective = effective
	root := merkle.Root(b.SampleHashes[:effective], faults)
	b.MerkleRoot = root
	b.BatchHash = root
}

package pipeline

import (
	"github.com/detpipe-core/detpipe/augment"
	"github.com/detpipe-core/detpipe/batch"
	"github.com/detpipe-core/detpipe/fixed"
	"github.com/detpipe-core/detpipe/merkle"
	"github.com/detpipe-core/detpipe/normalize"
	"github.com/detpipe-core/detpipe/permute"
	"github.com/detpipe-core/detpipe/provenance"
	"github.com/detpipe-core/detpipe/sample"
	"github.com/detpipe-core/detpipe/sha256d"
)

// RunBatch assembles one (epoch, batchIndex) batch: for each sample in
// the batch window it permutes the global index, fetches the shuffled
// dataset sample, runs it through the augmentation chain, normalizes
// the result in place, and hashes it as a Merkle leaf. Padding slots
// beyond the dataset's remaining samples are zero-filled and excluded
// from the Merkle root, exactly as batch.Fill does.
func RunBatch(dataset *sample.Dataset, augCfg *augment.Config, normCfg *normalize.Config, batchSize, batchIndex, epoch uint32, seed uint64, faults *fixed.FaultFlags) *batch.Batch {
	b := batch.NewBatch(batchSize)
	b.Epoch = epoch
	b.BatchIndex = batchIndex

	n := dataset.NumSamples
	start := batchIndex * batchSize

	effective := uint32(0)
	if start < n {
		effective = batchSize
		if remaining := n - start; remaining < effective {
			effective = remaining
		}
	}

	shapeHeader := &dataset.SampleShape
	var augmented sample.Sample
	if shapeHeader.NDims >= 2 {
		leading := uint32(1)
		for i := uint32(0); i < shapeHeader.NDims-2; i++ {
			leading *= shapeHeader.Dims[i]
		}
		augmented.Data = make([]fixed.Fixed, leading*augCfg.CropHeight*augCfg.CropWidth)
	}

	for i := uint32(0); i < effective; i++ {
		global := start + i
		shuffled := permute.Permute(global, n, seed, epoch, faults)

		src, err := dataset.At(shuffled)
		if err != nil {
			faults.Domain = true
			continue
		}

		if src.NDims >= 2 {
			if err := augment.Pipeline(src, &augmented, augCfg, seed, epoch, i, faults); err != nil {
				faults.FormatError = true
				continue
			}
			normalize.Sample(&augmented, &augmented, normCfg, faults)

			stored := augmented
			stored.Data = append([]fixed.Fixed(nil), augmented.Data...)
			b.Refs[i] = batch.Ref{OriginalIndex: global, ShuffledIndex: shuffled}
			b.Samples[i] = stored
			b.SampleHashes[i] = merkle.LeafHash(&stored)
		} else {
			stored := *src
			stored.Data = append([]fixed.Fixed(nil), src.Data...)
			normalize.Normalize(stored.Data, stored.Data, normCfg, faults)
			b.Refs[i] = batch.Ref{OriginalIndex: global, ShuffledIndex: shuffled}
			b.Samples[i] = stored
			b.SampleHashes[i] = merkle.LeafHash(&stored)
		}
	}

	for i := effective; i < batchSize; i++ {
		b.Refs[i] = batch.Ref{}
		b.Samples[i] = sample.Sample{}
		b.SampleHashes[i] = sha256d.Digest{}
	}

	b.Effective = effective
	root := merkle.Root(b.SampleHashes[:effective], faults)
	b.MerkleRoot = root
	b.BatchHash = root
	return b
}

// RunEpoch drives RunBatch over numBatches batches of one epoch,
// computes H_epoch = merkle_root(batch_hashes), and advances prov with
// it — but only if no fault is sticky on faults at that point. The
// returned Batch slice always has length numBatches regardless of
// whether the chain advanced, so a caller can inspect per-batch results
// even on a discarded epoch.
func RunEpoch(dataset *sample.Dataset, augCfg *augment.Config, normCfg *normalize.Config, batchSize, numBatches, epoch uint32, seed uint64, prov *provenance.Provenance, faults *fixed.FaultFlags) []*batch.Batch {
	batches := make([]*batch.Batch, numBatches)
	batchHashes := make([]sha256d.Digest, numBatches)

	for i := uint32(0); i < numBatches; i++ {
		b := RunBatch(dataset, augCfg, normCfg, batchSize, i, epoch, seed, faults)
		batches[i] = b
		batchHashes[i] = b.BatchHash
	}

	epochHash := merkle.Root(batchHashes, faults)
	if !faults.AnyFault() {
		prov.Advance(epochHash)
	}
	return batches
}

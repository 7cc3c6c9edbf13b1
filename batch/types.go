package batch

import (
	"github.com/detpipe-core/detpipe/sample"
	"github.com/detpipe-core/detpipe/sha256d"
)

// Ref pairs a sample's position in the original dataset with its
// shuffled position within the batch.
type Ref struct {
	OriginalIndex uint32
	ShuffledIndex uint32
}

// Batch is constructed once per (epoch, batch_index) and never mutated
// after Fill returns.
type Batch struct {
	Epoch        uint32
	BatchIndex   uint32
	BatchSize    uint32 // declared max B; fixed at construction
	Effective    uint32 // number of non-padding slots filled by Fill
	Refs         []Ref
	Samples      []sample.Sample
	SampleHashes []sha256d.Digest
	MerkleRoot   sha256d.Digest
	BatchHash    sha256d.Digest
}

// NewBatch allocates a Batch with fixed capacity size, ready for Fill.
// It sizes the Refs, Samples and SampleHashes slices; Fill copies each
// sample shallowly, so b.Samples[i].Data shares its backing array with
// the dataset sample it came from.
func NewBatch(size uint32) *Batch {
	return &Batch{
		BatchSize:    size,
		Refs:         make([]Ref, size),
		Samples:      make([]sample.Sample, size),
		SampleHashes: make([]sha256d.Digest, size),
	}
}

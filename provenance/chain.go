package provenance

import (
	"encoding/binary"

	"github.com/detpipe-core/detpipe/merkle"
	"github.com/detpipe-core/detpipe/sha256d"
)

// Init builds the genesis provenance state:
// h0 = SHA256(PROVENANCE_INIT || dataset_hash || config_hash || seed_LE(8)).
// Both PrevHash and CurrentHash are set to h0; CurrentEpoch and
// TotalEpochs start at 0.
func Init(datasetHash, configHash sha256d.Digest, seed uint64) Provenance {
	var seedLE [8]byte
	binary.LittleEndian.PutUint64(seedLE[:], seed)

	h0 := sha256d.SumDomain(merkle.ProvenanceInitPrefix, datasetHash[:], configHash[:], seedLE[:])
	return Provenance{
		DatasetHash: datasetHash,
		ConfigHash:  configHash,
		Seed:        seed,
		PrevHash:    h0,
		CurrentHash: h0,
	}
}

// Advance folds one completed epoch's H_epoch into the chain:
// current_hash ← SHA256(EPOCH || prev_hash || H_epoch || current_epoch_LE(4)),
// with prev_hash set to the prior current_hash before recomputation. The
// epoch number bound into the hash is p.CurrentEpoch as it stood before
// this call — the epoch that just completed — then CurrentEpoch and
// TotalEpochs are both incremented.
func (p *Provenance) Advance(epochHash sha256d.Digest) {
	var epochLE [4]byte
	binary.LittleEndian.PutUint32(epochLE[:], p.CurrentEpoch)

	prev := p.CurrentHash
	next := sha256d.SumDomain(merkle.EpochPrefix, prev[:], epochHash[:], epochLE[:])

	p.PrevHash = prev
	p.CurrentHash = next
	p.CurrentEpoch++
	p.TotalEpochs++
}

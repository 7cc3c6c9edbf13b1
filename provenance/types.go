package provenance

import "github.com/detpipe-core/detpipe/sha256d"

// Provenance is the rolling chain state: {dataset_hash, config_hash,
// seed, current_epoch, prev_hash, current_hash}. total_epochs tracks
// the number of completed Advance
// calls, kept alongside current_epoch for diagnostics even though the
// two are currently always equal (the chain never skips or replays an
// epoch).
type Provenance struct {
	DatasetHash  sha256d.Digest
	ConfigHash   sha256d.Digest
	Seed         uint64
	CurrentEpoch uint32
	TotalEpochs  uint32
	PrevHash     sha256d.Digest
	CurrentHash  sha256d.Digest
}

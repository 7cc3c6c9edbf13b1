package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/detpipe-core/detpipe/batch"
	"github.com/detpipe-core/detpipe/fixed"
	"github.com/detpipe-core/detpipe/sha256d"
)

// batchManifest is the on-disk JSON record verify-batch round-trips
// through: enough of a Batch to recompute and check batch_hash without
// re-running the whole pipeline. Mirrors the way chaos-runner persists a
// TestReport as JSON rather than inventing a binary format for a CLI-local
// concern.
//
// ConstructionFaults carries the FaultFlags snapshot as it stood right
// after run-epoch built this batch. A fault raised during augmentation,
// permutation or normalization never touches batch_hash itself, so
// without this field a later verify-batch would see a matching hash and
// report success even though the batch was never valid to begin with.
type batchManifest struct {
	Epoch              uint32           `json:"epoch"`
	BatchIndex         uint32           `json:"batch_index"`
	BatchSize          uint32           `json:"batch_size"`
	Effective          uint32           `json:"effective"`
	SampleHashes       []string         `json:"sample_hashes"`
	MerkleRoot         string           `json:"merkle_root"`
	BatchHash          string           `json:"batch_hash"`
	ConstructionFaults fixed.FaultFlags `json:"construction_faults"`
}

func toManifest(b *batch.Batch, faults fixed.FaultFlags) batchManifest {
	hashes := make([]string, len(b.SampleHashes))
	for i, h := range b.SampleHashes {
		hashes[i] = hex.EncodeToString(h[:])
	}
	return batchManifest{
		Epoch:              b.Epoch,
		BatchIndex:         b.BatchIndex,
		BatchSize:          b.BatchSize,
		Effective:          b.Effective,
		SampleHashes:       hashes,
		MerkleRoot:         hex.EncodeToString(b.MerkleRoot[:]),
		BatchHash:          hex.EncodeToString(b.BatchHash[:]),
		ConstructionFaults: faults,
	}
}

func digestFromHex(s string) (sha256d.Digest, error) {
	var d sha256d.Digest
	raw, err := hex.DecodeString(s)
	if err != nil {
		return d, fmt.Errorf("decode hex digest %q: %w", s, err)
	}
	if len(raw) != sha256d.Size {
		return d, fmt.Errorf("digest %q has %d bytes, want %d", s, len(raw), sha256d.Size)
	}
	copy(d[:], raw)
	return d, nil
}

// toBatch rebuilds the subset of a Batch that batch.Verify needs: its
// sample hashes, effective count and claimed batch hash. Samples/Refs are
// left empty since verify-batch never needs the raw sample data.
func (m batchManifest) toBatch() (*batch.Batch, error) {
	hashes := make([]sha256d.Digest, len(m.SampleHashes))
	for i, s := range m.SampleHashes {
		h, err := digestFromHex(s)
		if err != nil {
			return nil, err
		}
		hashes[i] = h
	}
	batchHash, err := digestFromHex(m.BatchHash)
	if err != nil {
		return nil, err
	}
	return &batch.Batch{
		Epoch:        m.Epoch,
		BatchIndex:   m.BatchIndex,
		BatchSize:    m.BatchSize,
		Effective:    m.Effective,
		SampleHashes: hashes,
		BatchHash:    batchHash,
	}, nil
}

func writeManifest(path string, b *batch.Batch, faults fixed.FaultFlags) error {
	data, err := json.MarshalIndent(toManifest(b, faults), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal batch manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write batch manifest %s: %w", path, err)
	}
	return nil
}

// readManifest loads a batch manifest, returning the reconstructed Batch
// alongside the FaultFlags snapshot taken right after it was built —
// callers must fold this into the FaultFlags they pass to batch.Verify,
// or a fault from construction will silently vanish at the CLI boundary.
func readManifest(path string) (*batch.Batch, fixed.FaultFlags, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fixed.FaultFlags{}, fmt.Errorf("read batch manifest %s: %w", path, err)
	}
	var m batchManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fixed.FaultFlags{}, fmt.Errorf("parse batch manifest %s: %w", path, err)
	}
	b, err := m.toBatch()
	if err != nil {
		return nil, fixed.FaultFlags{}, err
	}
	return b, m.ConstructionFaults, nil
}

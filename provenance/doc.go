// Package provenance implements the rolling provenance chain that binds
// a dataset, a config, a seed and the sequence of completed epoch hashes
// into a single 32-byte commitment.
//
// The chain is strictly append-only: Init produces the genesis state
// from (dataset_hash, config_hash, seed), and Advance folds in one
// epoch's H_epoch at a time, always in ascending epoch order. The epoch
// number bound into each advance is the number of the epoch that just
// completed (pre-increment semantics): current_epoch is incremented
// only after the hash for that epoch has been computed.
//
// This package holds no persistence concerns of its own; durable storage
// of a chain across process restarts is the job of the provenance/store
// sub-package.
package provenance

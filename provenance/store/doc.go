// Package store persists provenance.Provenance snapshots across process
// restarts using a local bbolt.DB file: one bucket per dataset
// commitment (dataset_hash, config_hash, seed), with snapshots keyed by
// big-endian epoch number within that bucket so Cursor iteration walks
// the chain in epoch order.
//
// This package is an outer layer: it never touches the core data path
// and holds no opinion about determinism beyond faithfully storing and
// returning whatever Provenance value it is given.
package store

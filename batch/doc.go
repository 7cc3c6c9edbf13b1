// Package batch assembles and verifies Batch records: a fixed-size
// window of a Dataset, shuffled per-epoch by permute.Permute, with a
// Merkle root over its sample hashes.
//
// batch_hash is the plain Merkle root of sample_hashes, not a SHA over
// the root plus additional metadata.
//
// Padding slots (when fewer than BatchSize samples remain in the
// dataset) are zero-filled and excluded from the Merkle root: only the
// first `effective` sample hashes are ever passed to merkle.Root.
package batch

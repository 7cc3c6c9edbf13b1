// Package pipeline wires together the full per-sample dataflow: global_idx
// -> Permute -> shuffled_idx -> dataset[shuffled_idx] -> Augment (PRF) ->
// Normalize (DVM) -> Hash (leaf) -> Merkle -> BatchCommit -> EpochCommit
// -> ProvenanceAdvance.
//
// RunBatch assembles one Batch this way; it is a fuller pipeline than
// batch.Fill, which implements only the bare-copy primitive (no
// augmentation or normalization) — RunBatch layers Augment and
// Normalize into that same per-sample loop before hashing.
//
// RunEpoch drives RunBatch across every batch of one epoch, folds the
// resulting batch hashes into an epoch hash, and advances the
// provenance chain — but only when no fault is sticky across the whole
// epoch: a caller that sees any fault at end-of-epoch must discard it
// and refuse to advance.
package pipeline

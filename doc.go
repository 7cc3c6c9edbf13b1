// Package detpipe is a deterministic, bit-reproducible data pipeline for
// safety-critical ML training.
//
// Given the same (dataset, config, seed, epoch), every conforming run
// produces identical batches, identical Merkle commitments and an
// identical provenance chain — on any platform, any number of times.
// That guarantee rests on four subsystems:
//
//	fixed     — Q16.16 saturating fixed-point arithmetic, no floats
//	prf       — counter-based PRF and bounded-rejection unbiased sampling
//	permute   — Feistel-network index shuffling, bijective per epoch
//	merkle    — leaf/tree hashing and the rolling provenance chain
//
// Everything else in this module — sample/dataset records, the fixed-order
// augmentation chain, per-feature normalization, on-disk tensor and CSV
// codecs, YAML config loading, structured logging and the detpipe CLI —
// is built on top of those four and never reaches for floating point or
// unbounded retries in the data path itself.
//
// See pipeline for the orchestrator that wires a dataset and a config
// into committed batches and epochs, and cmd/detpipe for the CLI that
// drives it end to end.
package detpipe

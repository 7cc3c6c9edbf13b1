// Package sha256d provides the incremental SHA-256 interface this module's
// hashing core needs: Init / Update / Final, plus a one-shot Sum256 and a
// SumDomain helper for domain-separated hashing.
//
// It is a thin wrapper over crypto/sha256 rather than a hand-rolled block
// compressor. crypto/sha256 is itself the canonical, audited, byte-exact
// FIPS 180-4 implementation shipped with the Go toolchain on every
// conforming platform (x86-64, ARM, RISC-V) this pipeline targets —
// reimplementing the compression function by hand would only reintroduce
// the portability risk this package exists to remove. See DESIGN.md for
// the full rationale.
//
// Every hash used downstream of this package (leaf, internal node, batch,
// provenance, epoch) is computed by prepending a single domain-separation
// byte to its input before hashing, so that structurally different inputs
// can never collide across positions in the commitment tree.
package sha256d

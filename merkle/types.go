package merkle

// Domain-separation prefixes, centralized here so every package that
// hashes something shares one source of truth. Stable and distinct;
// changing any of these changes every digest downstream. BatchPrefix is
// reserved but currently unused: the chosen batch_hash variant (see
// batch package doc) is the plain Merkle root with no additional SHA
// wrapping.
const (
	LeafPrefix           byte = 0x00
	InternalPrefix       byte = 0x01
	BatchPrefix          byte = 0x02
	ProvenanceInitPrefix byte = 0x03
	EpochPrefix          byte = 0x04
)

// MaxLeaves bounds the number of leaves Root will accept, mirroring the
// source implementation's compile-time-sized scratch buffer. Exceeding it
// is refused outright rather than silently truncated: Root sets
// faults.Domain and returns an all-zero digest instead of returning an
// error, consistent with every other fallible primitive in this module.
const MaxLeaves = 1 << 20

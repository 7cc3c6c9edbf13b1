package sha256d

import "crypto/sha256"

// Hasher is an incremental SHA-256 accumulator. The zero value is ready to
// use (equivalent to calling Init).
type Hasher struct {
	h hashState
}

// hashState is the subset of hash.Hash this package relies on; kept as a
// named type so Init can (re)allocate it lazily without exposing
// crypto/sha256 in this package's public surface.
type hashState = interface {
	Write(p []byte) (int, error)
	Sum(b []byte) []byte
	Reset()
}

// Init (re)starts the accumulator. Calling Init on an in-progress Hasher
// discards whatever was previously written.
func (hsh *Hasher) Init() {
	hsh.h = sha256.New()
}

// Update feeds more bytes into the accumulator. It never fails: writes to
// the underlying FIPS 180-4 state machine cannot error.
func (hsh *Hasher) Update(p []byte) {
	if hsh.h == nil {
		hsh.Init()
	}
	_, _ = hsh.h.Write(p)
}

// Final returns the digest of everything written so far without resetting
// the accumulator, matching crypto/sha256's Sum semantics (callers wanting
// a fresh accumulator should construct or Init a new Hasher).
func (hsh *Hasher) Final() Digest {
	if hsh.h == nil {
		hsh.Init()
	}
	var d Digest
	copy(d[:], hsh.h.Sum(nil))
	return d
}

// Sum256 computes the SHA-256 digest of data in one call.
func Sum256(data []byte) Digest {
	return Digest(sha256.Sum256(data))
}

// SumDomain hashes prefix followed by every element of parts, in order,
// with no additional separators — the domain-separation discipline used
// throughout merkle and provenance: SHA256(prefix || parts[0] || parts[1] || ...).
func SumDomain(prefix byte, parts ...[]byte) Digest {
	var hsh Hasher
	hsh.Init()
	hsh.Update([]byte{prefix})
	for _, p := range parts {
		hsh.Update(p)
	}
	return hsh.Final()
}

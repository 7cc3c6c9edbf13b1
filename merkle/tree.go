package merkle

import (
	"github.com/detpipe-core/detpipe/fixed"
	"github.com/detpipe-core/detpipe/sample"
	"github.com/detpipe-core/detpipe/sha256d"
)

// LeafHash computes H_sample(s) = SHA256(LEAF || serialize_sample(s)).
func LeafHash(s *sample.Sample) sha256d.Digest {
	return sha256d.SumDomain(LeafPrefix, sample.Serialize(s))
}

// NodeHash computes H_node(L, R) = SHA256(INTERNAL || L || R).
func NodeHash(l, r sha256d.Digest) sha256d.Digest {
	return sha256d.SumDomain(InternalPrefix, l[:], r[:])
}

// Root computes the Merkle root over leaves, using odd-leaf promotion: if
// n = 0 it returns an all-zero digest; if n = 1 it returns leaves[0];
// otherwise it iteratively pairs adjacent nodes level by level, promoting
// an odd trailing node unchanged into the next level instead of hashing
// it with itself. Leaf counts above MaxLeaves are refused, setting
// domain, rather than truncated.
func Root(leaves []sha256d.Digest, faults *fixed.FaultFlags) sha256d.Digest {
	n := len(leaves)
	if n > MaxLeaves {
		faults.Domain = true
		return sha256d.Digest{}
	}
	if n == 0 {
		return sha256d.Digest{}
	}
	if n == 1 {
		return leaves[0]
	}

	level := make([]sha256d.Digest, n)
	copy(level, leaves)
	for len(level) > 1 {
		next := make([]sha256d.Digest, 0, (len(level)+1)/2)
		i := 0
		for ; i+1 < len(level); i += 2 {
			next = append(next, NodeHash(level[i], level[i+1]))
		}
		if i < len(level) {
			next = append(next, level[i]) // odd trailing node: promoted, not duplicated
		}
		level = next
	}
	return level[0]
}

// Verify recomputes the Merkle root of leaves and reports whether it
// matches claimedRoot byte-for-byte, setting hash_mismatch on the
// supplied faults when it does not. A fault already sticky on faults
// before this call fails verification too, regardless of whether the
// hash matches: any fault flag set at any point during construction
// invalidates the commitment.
func Verify(leaves []sha256d.Digest, claimedRoot sha256d.Digest, faults *fixed.FaultFlags) bool {
	preExisting := faults.AnyFault()
	got := Root(leaves, faults)
	if got != claimedRoot {
		faults.HashMismatch = true
		return false
	}
	return !preExisting
}

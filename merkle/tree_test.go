package merkle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/detpipe-core/detpipe/fixed"
	"github.com/detpipe-core/detpipe/merkle"
	"github.com/detpipe-core/detpipe/sha256d"
)

func leaf(b byte) sha256d.Digest {
	var d sha256d.Digest
	d[0] = b
	return d
}

func TestRootEmpty(t *testing.T) {
	var faults fixed.FaultFlags
	got := merkle.Root(nil, &faults)
	require.Equal(t, sha256d.Digest{}, got)
	assert.False(t, faults.AnyFault())
}

func TestRootSingleLeaf(t *testing.T) {
	l := leaf(0x42)
	var faults fixed.FaultFlags
	got := merkle.Root([]sha256d.Digest{l}, &faults)
	require.Equal(t, l, got)
}

func TestRootOddLeafPromotion(t *testing.T) {
	a, b, c := leaf(1), leaf(2), leaf(3)
	var faults fixed.FaultFlags
	got := merkle.Root([]sha256d.Digest{a, b, c}, &faults)
	want := merkle.NodeHash(merkle.NodeHash(a, b), c)
	require.Equal(t, want, got)
	assert.False(t, faults.AnyFault())
}

func TestRootEvenLevels(t *testing.T) {
	a, b, c, d := leaf(1), leaf(2), leaf(3), leaf(4)
	var faults fixed.FaultFlags
	got := merkle.Root([]sha256d.Digest{a, b, c, d}, &faults)
	want := merkle.NodeHash(merkle.NodeHash(a, b), merkle.NodeHash(c, d))
	require.Equal(t, want, got)
}

func TestRootTooManyLeaves(t *testing.T) {
	leaves := make([]sha256d.Digest, merkle.MaxLeaves+1)
	var faults fixed.FaultFlags
	got := merkle.Root(leaves, &faults)
	require.Equal(t, sha256d.Digest{}, got)
	assert.True(t, faults.Domain)
}

func TestVerify(t *testing.T) {
	a, b, c := leaf(1), leaf(2), leaf(3)
	leaves := []sha256d.Digest{a, b, c}
	var faults fixed.FaultFlags
	root := merkle.Root(leaves, &faults)
	require.True(t, merkle.Verify(leaves, root, &faults))

	var badFaults fixed.FaultFlags
	bad := root
	bad[0] ^= 0xFF
	require.False(t, merkle.Verify(leaves, bad, &badFaults))
	assert.True(t, badFaults.HashMismatch)
}

func TestVerifyFailsOnPreExistingFaultEvenWithMatchingHash(t *testing.T) {
	a, b, c := leaf(1), leaf(2), leaf(3)
	leaves := []sha256d.Digest{a, b, c}
	var faults fixed.FaultFlags
	root := merkle.Root(leaves, &faults)
	require.False(t, faults.AnyFault())

	faults.Overflow = true // a fault raised elsewhere during construction
	require.False(t, merkle.Verify(leaves, root, &faults), "a sticky fault must fail verification even when the hash still matches")
	assert.False(t, faults.HashMismatch, "the hash itself did match; only the pre-existing fault should cause failure")
}

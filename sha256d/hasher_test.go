package sha256d_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/detpipe-core/detpipe/sha256d"
)

func TestSum256EmptyString(t *testing.T) {
	got := sha256d.Sum256(nil)
	require.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", hex.EncodeToString(got[:]))
}

func TestSum256Abc(t *testing.T) {
	got := sha256d.Sum256([]byte("abc"))
	require.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", hex.EncodeToString(got[:]))
}

func TestHasherIncrementalMatchesOneShot(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")

	var hsh sha256d.Hasher
	hsh.Init()
	hsh.Update(data[:10])
	hsh.Update(data[10:])
	incremental := hsh.Final()

	oneShot := sha256d.Sum256(data)
	require.Equal(t, oneShot, incremental)
}

func TestSumDomainSeparatesPrefixes(t *testing.T) {
	a := sha256d.SumDomain(0x00, []byte("x"))
	b := sha256d.SumDomain(0x01, []byte("x"))
	require.NotEqual(t, a, b)
}

func TestSumDomainConcatenatesPartsExactly(t *testing.T) {
	whole := sha256d.SumDomain(0x02, []byte("ab"), []byte("cd"))
	split := sha256d.SumDomain(0x02, []byte("a"), []byte("bcd"))
	require.Equal(t, whole, split, "domain hashing must be a pure byte concatenation, not delimited")
}

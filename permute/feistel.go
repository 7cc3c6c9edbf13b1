package permute

import (
	"encoding/binary"

	"github.com/detpipe-core/detpipe/sha256d"
)

// FeistelRound computes the round function F(R) for one Feistel round.
// It builds the byte-exact input seed_LE(8) || epoch_LE(4) || R_LE(4) ||
// round(1), hashes it with SHA-256, and returns the first four bytes of
// the digest interpreted as a little-endian u32. This 17-byte layout is
// the only binding between the seed material and the resulting
// permutation; any change to it breaks cross-implementation compatibility.
func FeistelRound(r uint32, seed uint64, epoch uint32, round uint8) uint32 {
	var buf [17]byte
	binary.LittleEndian.PutUint64(buf[0:8], seed)
	binary.LittleEndian.PutUint32(buf[8:12], epoch)
	binary.LittleEndian.PutUint32(buf[12:16], r)
	buf[16] = round

	digest := sha256d.Sum256(buf[:])
	return binary.LittleEndian.Uint32(digest[0:4])
}

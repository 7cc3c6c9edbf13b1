package sample

import "encoding/binary"

// Serialize writes s's canonical byte layout, the exact input to the leaf
// hash: version_LE(4) || dtype_LE(4) || ndims_LE(4) || dims[0..MaxDims)_LE
// (always all four entries, unused trailing dims padded with 0) ||
// data[0..TotalElements)_LE(4 each). The dims padding convention means two
// samples that differ only in which of their MaxDims slots are "used"
// still serialize identically when NDims and the leading dims agree.
func Serialize(s *Sample) []byte {
	headerLen := 4 + 4 + 4 + MaxDims*4
	out := make([]byte, headerLen+int(s.TotalElements)*4)

	off := 0
	binary.LittleEndian.PutUint32(out[off:], s.Version)
	off += 4
	binary.LittleEndian.PutUint32(out[off:], s.DType)
	off += 4
	binary.LittleEndian.PutUint32(out[off:], s.NDims)
	off += 4
	for i := 0; i < MaxDims; i++ {
		var d uint32
		if uint32(i) < s.NDims {
			d = s.Dims[i]
		}
		binary.LittleEndian.PutUint32(out[off:], d)
		off += 4
	}
	for i := uint32(0); i < s.TotalElements; i++ {
		binary.LittleEndian.PutUint32(out[off:], uint32(s.Data[i]))
		off += 4
	}
	return out
}

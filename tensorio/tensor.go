package tensorio

import (
	"encoding/binary"
	"io"

	"github.com/detpipe-core/detpipe/fixed"
	"github.com/detpipe-core/detpipe/sample"
)

// WriteTensor writes s in the Tensor file layout: magic(4) ||
// version(u8) || dtype(u8) || ndims(u8) || pad(u8) ||
// dims[0..MaxDims)_LE(4 each) || data[0..TotalElements)_LE(4 each).
func WriteTensor(w io.Writer, s *sample.Sample) error {
	header := make([]byte, 8+sample.MaxDims*4)
	copy(header[0:4], tensorMagic[:])
	header[4] = formatVersion
	header[5] = byte(s.DType)
	header[6] = byte(s.NDims)
	header[7] = 0 // pad

	off := 8
	for i := 0; i < sample.MaxDims; i++ {
		var d uint32
		if uint32(i) < s.NDims {
			d = s.Dims[i]
		}
		binary.LittleEndian.PutUint32(header[off:], d)
		off += 4
	}
	if _, err := w.Write(header); err != nil {
		return err
	}

	data := make([]byte, len(s.Data)*4)
	for i, v := range s.Data {
		binary.LittleEndian.PutUint32(data[i*4:], uint32(int32(v)))
	}
	_, err := w.Write(data)
	return err
}

// ReadTensor decodes a Tensor file, validating magic, version, dtype and
// the ndims/dims/total_elements consistency; malformed input sets
// format_error and io_error as appropriate on faults.
func ReadTensor(r io.Reader, faults *fixed.FaultFlags) (*sample.Sample, error) {
	header := make([]byte, 8+sample.MaxDims*4)
	if _, err := io.ReadFull(r, header); err != nil {
		faults.IOError = true
		return nil, ErrShortRead
	}

	if [4]byte(header[0:4]) != tensorMagic {
		faults.FormatError = true
		return nil, ErrBadMagic
	}
	if header[4] != formatVersion {
		faults.FormatError = true
		return nil, ErrBadVersion
	}
	if header[5] != dtypeQ16_16 {
		faults.FormatError = true
		return nil, ErrBadDType
	}
	ndims := uint32(header[6])
	if ndims > sample.MaxDims {
		faults.FormatError = true
		return nil, ErrElementMismatch
	}

	var dims [sample.MaxDims]uint32
	off := 8
	total := uint64(1)
	for i := 0; i < sample.MaxDims; i++ {
		dims[i] = binary.LittleEndian.Uint32(header[off:])
		off += 4
	}
	for i := uint32(0); i < ndims; i++ {
		total *= uint64(dims[i])
	}
	if total > 1<<32-1 {
		faults.FormatError = true
		return nil, ErrElementMismatch
	}

	data := make([]byte, total*4)
	if _, err := io.ReadFull(r, data); err != nil {
		faults.IOError = true
		return nil, ErrShortRead
	}

	values := make([]fixed.Fixed, total)
	for i := range values {
		values[i] = fixed.Fixed(binary.LittleEndian.Uint32(data[i*4:]))
	}

	s := &sample.Sample{
		Version:       uint32(formatVersion),
		DType:         uint32(dtypeQ16_16),
		NDims:         ndims,
		Dims:          dims,
		TotalElements: uint32(total),
		Data:          values,
	}
	return s, nil
}

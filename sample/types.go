package sample

import (
	"errors"

	"github.com/detpipe-core/detpipe/fixed"
)

// MaxDims is the maximum number of dimensions a Sample may declare.
const MaxDims = 4

// DTypeQ16_16 is the only dtype this module understands: Q16.16 fixed point.
const DTypeQ16_16 uint32 = 0

// Sentinel errors for Sample/Dataset construction. These are programmer
// errors (malformed shape metadata), distinct from the sticky FaultFlags
// used for data-path faults — a caller must fix these before the data
// path can run at all.
var (
	ErrTooManyDims    = errors.New("sample: ndims exceeds MaxDims")
	ErrElementMismatch = errors.New("sample: total_elements does not match product of dims")
	ErrDataLengthMismatch = errors.New("sample: data length does not match total_elements")
	ErrEmptyDataset   = errors.New("sample: dataset has no samples")
)

// Sample is a tensor-like record: a row-major, non-owning view over a
// slice of fixed.Fixed, together with its shape metadata.
type Sample struct {
	Version       uint32
	DType         uint32
	NDims         uint32
	Dims          [MaxDims]uint32
	TotalElements uint32
	Data          []fixed.Fixed // non-owning; length must equal TotalElements
}

// Validate checks the Sample's internal shape invariant: TotalElements
// must equal the product of the first NDims entries of Dims, and Data
// must have exactly that many elements.
func (s *Sample) Validate() error {
	if s.NDims > MaxDims {
		return ErrTooManyDims
	}
	product := uint64(1)
	for i := uint32(0); i < s.NDims; i++ {
		product *= uint64(s.Dims[i])
	}
	if product != uint64(s.TotalElements) {
		return ErrElementMismatch
	}
	if uint32(len(s.Data)) != s.TotalElements {
		return ErrDataLengthMismatch
	}
	return nil
}

// Dataset is an immutable, hashed collection of Samples sharing a uniform
// shape header. Samples are logically owned by the loader; the core only
// ever reads them.
type Dataset struct {
	NumSamples  uint32
	SampleShape Sample // shape header; Data is unused/nil here
	Samples     []Sample
	DatasetHash [32]byte
}

// At returns the i-th sample, or an error if i is out of range.
func (d *Dataset) At(i uint32) (*Sample, error) {
	if i >= uint32(len(d.Samples)) {
		return nil, ErrEmptyDataset
	}
	return &d.Samples[i], nil
}

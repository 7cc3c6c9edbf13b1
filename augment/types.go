package augment

import (
	"errors"

	"github.com/detpipe-core/detpipe/fixed"
)

// Augment IDs, fixed and stable — changing any of these would change
// every op_id downstream and silently break reproducibility against
// previously committed batches.
const (
	idHFlip      uint32 = 0x01
	idVFlip      uint32 = 0x02
	idCropY      uint32 = 0x03
	idCropX      uint32 = 0x04
	idBrightness uint32 = 0x05
	idNoise      uint32 = 0x06
)

// Flags selects which operations actually modify the sample. Every
// operation still runs and still consumes its PRF draws regardless of
// these flags — see the package doc for why.
type Flags struct {
	HFlip         bool
	VFlip         bool
	RandomCrop    bool
	AdditiveNoise bool
	Brightness    bool
}

// Config configures one run of the augmentation chain.
type Config struct {
	Flags           Flags
	CropHeight      uint32
	CropWidth       uint32
	NoiseStd        fixed.Fixed
	BrightnessDelta fixed.Fixed
}

// ErrOutputTooSmall indicates the caller-supplied output buffer cannot
// hold the cropped sample; the core never allocates to make one fit.
var ErrOutputTooSmall = errors.New("augment: output buffer too small for crop dimensions")

// ErrShapeTooShallow indicates a sample has fewer than 2 dimensions, so it
// has no (H, W) spatial axes for crop/flip to operate on.
var ErrShapeTooShallow = errors.New("augment: sample must have at least 2 dimensions")

// packOpID builds the op_id for one PRF draw, following a fixed,
// documented bit layout:
//
//	bits [0:8)   augment id
//	bits [8:24)  sample index, low 16 bits
//	bits [24:32) element index, low 8 bits (0 for sample-level draws)
//
// epoch is not re-encoded here: it is already a dedicated argument of
// prf.PRF, so folding it into op_id as well would be redundant, not
// additional entropy.
func packOpID(augmentID, sampleIdx, elementIdxLow8 uint32) uint32 {
	return (augmentID & 0xFF) | ((sampleIdx & 0xFFFF) << 8) | ((elementIdxLow8 & 0xFF) << 24)
}

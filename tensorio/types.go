package tensorio

import "errors"

// Magic bytes identifying each binary container format.
var (
	tensorMagic = [4]byte{'T', 'E', 'N', 'S'}
	statMagic   = [4]byte{'S', 'T', 'A', 'T'}
)

const (
	formatVersion = 1
	dtypeQ16_16   = 0
)

// Sentinel errors for malformed on-disk data. These accompany (never
// replace) the corresponding FaultFlags bit set on the caller's faults.
var (
	ErrBadMagic         = errors.New("tensorio: bad magic")
	ErrBadVersion       = errors.New("tensorio: unsupported version")
	ErrBadDType         = errors.New("tensorio: unsupported dtype")
	ErrElementMismatch  = errors.New("tensorio: total_elements does not match dims product")
	ErrShortRead        = errors.New("tensorio: truncated input")
	ErrEmptyField       = errors.New("tensorio: empty csv field")
	ErrMalformedDecimal = errors.New("tensorio: malformed decimal literal")
)

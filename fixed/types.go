package fixed

// Fixed is a Q16.16 signed fixed-point number: real value = int32(v) / 65536.
// Range is [-32768.0, +32767.99998474121], resolution 2^-16.
type Fixed int32

// Named constants for the Q16.16 representation.
const (
	One  Fixed = 1 << 16 // 1.0
	Half Fixed = 1 << 15 // 0.5
	Zero Fixed = 0

	MaxFixed Fixed = 1<<31 - 1
	MinFixed Fixed = -1 << 31
)

// FaultFlags is an append-only, sticky bitset threaded by reference through
// every fallible primitive. Once a bit is set it is never cleared implicitly;
// clearing is the caller's explicit choice (Reset). Any fault present at the
// time a batch or epoch commitment is constructed invalidates that
// commitment: downstream verification must refuse to accept it.
type FaultFlags struct {
	Overflow     bool
	Underflow    bool
	DivZero      bool
	Domain       bool
	Precision    bool
	IOError      bool
	FormatError  bool
	HashMismatch bool
}

// AnyFault reports whether any sticky bit is set.
func (f *FaultFlags) AnyFault() bool {
	return f.Overflow || f.Underflow || f.DivZero || f.Domain ||
		f.Precision || f.IOError || f.FormatError || f.HashMismatch
}

// Reset clears every bit. Callers decide when (if ever) to call this —
// the data path itself never clears a sticky bit.
func (f *FaultFlags) Reset() {
	*f = FaultFlags{}
}

// Merge ORs every bit of other into f, preserving stickiness.
func (f *FaultFlags) Merge(other FaultFlags) {
	f.Overflow = f.Overflow || other.Overflow
	f.Underflow = f.Underflow || other.Underflow
	f.DivZero = f.DivZero || other.DivZero
	f.Domain = f.Domain || other.Domain
	f.Precision = f.Precision || other.Precision
	f.IOError = f.IOError || other.IOError
	f.FormatError = f.FormatError || other.FormatError
	f.HashMismatch = f.HashMismatch || other.HashMismatch
}

// Package tensorio implements the three on-disk formats the core
// exchanges with callers: the binary Tensor file, the binary Statistics
// file, and the integer-only CSV decimal format. All three layouts are
// exact and non-negotiable — byte order, field widths and the decimal
// parsing algorithm must match bit-for-bit across implementations.
//
// Every decode path sets the appropriate sticky FaultFlags bit:
// format_error for malformed layout and io_error for truncated reads,
// each together with a returned Go error; overflow/underflow for
// out-of-range decimals, which are clamped to the Fixed range and
// returned with a nil error, so only the flag records them. Callers that
// only check the error still get a well-defined, non-panicking result.
package tensorio

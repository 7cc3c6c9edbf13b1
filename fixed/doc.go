// Package fixed implements the Q16.16 saturating fixed-point arithmetic
// primitives (the "DVM", deterministic virtual machine) that every other
// package in this module builds on.
//
// A Fixed value is a signed 32-bit two's-complement integer whose real
// value is v/65536. All exits from the representable range go through
// Clamp32 and set a sticky fault bit on the caller-owned FaultFlags;
// native wraparound on '+ - *' is never used in the data path. Rounding,
// where it applies (RoundShiftRNE, MulQ16), is always round-to-nearest,
// ties-to-even — the single rounding rule for the whole pipeline, chosen
// so that two conforming platforms produce byte-identical results.
//
// Every function here is total: it returns a defined value for every
// input and never panics. Faults accumulate in FaultFlags instead of
// aborting, so a full pass over a sample/batch/epoch can be completed in
// one go and inspected afterwards.
package fixed

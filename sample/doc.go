// Package sample defines the tensor-like Sample and Dataset records the
// rest of this module operates on, plus the canonical byte serialization
// that feeds into leaf hashing.
//
// A Sample never owns its data: Data is a non-owning reference to a
// caller-supplied, contiguous, row-major slice of fixed.Fixed. Dataset
// samples are likewise read-only from the core's point of view — loading
// and lifetime management belong to an external collaborator, not to
// this package.
package sample

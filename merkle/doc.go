// Package merkle computes domain-separated SHA-256 Merkle roots over
// sample, batch and epoch hashes.
//
// Odd-leaf policy: when a level has an odd number of nodes, the last node
// is promoted unchanged into the next level rather than duplicated and
// hashed with itself. This diverges from the RFC6962 "duplicate last
// leaf" convention and changes every interior digest from a root computed
// that way — any reimplementation MUST match this promotion rule
// bit-for-bit, not the duplicate-and-hash convention.
//
// Complexity: Root runs in O(n) hashes over n leaves. Determinism: Root
// is a pure function of its leaf slice; no floating point or ambient
// entropy is involved anywhere in this package.
package merkle

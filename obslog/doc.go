// Package obslog emits one structured JSON event per batch or epoch
// commitment, wrapping github.com/rs/zerolog. It is a pure side
// channel: it only ever observes already-computed hashes and
// fault-flag snapshots, and never reads from or writes to the
// data-path buffers it is told about.
package obslog

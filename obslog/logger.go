package obslog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/detpipe-core/detpipe/fixed"
	"github.com/detpipe-core/detpipe/sha256d"
)

// Logger emits batch/epoch commitment events as JSON to an io.Writer,
// stderr by default.
type Logger struct {
	z zerolog.Logger
}

// New builds a Logger writing to out; if out is nil, stderr is used.
func New(out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}
	return &Logger{z: zerolog.New(out).With().Timestamp().Logger()}
}

// BatchCommitted logs the result of filling one batch: its hash, the
// fault flags accumulated while building it, and how long it took.
func (l *Logger) BatchCommitted(epoch, batchIndex uint32, batchHash sha256d.Digest, faults fixed.FaultFlags, elapsed time.Duration) {
	l.z.Info().
		Uint32("epoch", epoch).
		Uint32("batch_index", batchIndex).
		Hex("batch_hash", batchHash[:]).
		Bool("any_fault", faults.AnyFault()).
		Dict("faults", faultDict(faults)).
		Dur("elapsed", elapsed).
		Msg("batch committed")
}

// EpochCommitted logs the result of completing one epoch: the epoch
// hash, the provenance chain's new head, and whether any fault was
// sticky at commit time (a caller must refuse to advance provenance if
// so — this log line records that decision, it does not make it).
func (l *Logger) EpochCommitted(epoch uint32, epochHash, provenanceHash sha256d.Digest, faults fixed.FaultFlags, elapsed time.Duration) {
	l.z.Info().
		Uint32("epoch", epoch).
		Hex("epoch_hash", epochHash[:]).
		Hex("provenance_hash", provenanceHash[:]).
		Bool("any_fault", faults.AnyFault()).
		Dict("faults", faultDict(faults)).
		Dur("elapsed", elapsed).
		Msg("epoch committed")
}

// Error logs an operator-facing error unrelated to a specific
// batch/epoch commitment (e.g. a config or dataset load failure).
func (l *Logger) Error(msg string, err error) {
	l.z.Error().Err(err).Msg(msg)
}

func faultDict(f fixed.FaultFlags) *zerolog.Event {
	return zerolog.Dict().
		Bool("overflow", f.Overflow).
		Bool("underflow", f.Underflow).
		Bool("div_zero", f.DivZero).
		Bool("domain", f.Domain).
		Bool("precision", f.Precision).
		Bool("io_error", f.IOError).
		Bool("format_error", f.FormatError).
		Bool("hash_mismatch", f.HashMismatch)
}

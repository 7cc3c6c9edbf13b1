package tensorio

import (
	"encoding/binary"
	"io"

	"github.com/detpipe-core/detpipe/fixed"
	"github.com/detpipe-core/detpipe/normalize"
)

// WriteStats writes cfg in the Statistics file layout: magic(4) ||
// version(u8) || num_channels(u8) || pad(u8 x 2) || for each channel:
// mean_LE(4) || inv_std_LE(4).
func WriteStats(w io.Writer, cfg *normalize.Config) error {
	n := len(cfg.Means)
	header := []byte{statMagic[0], statMagic[1], statMagic[2], statMagic[3], formatVersion, byte(n), 0, 0}
	if _, err := w.Write(header); err != nil {
		return err
	}

	body := make([]byte, n*8)
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint32(body[i*8:], uint32(int32(cfg.Means[i])))
		binary.LittleEndian.PutUint32(body[i*8+4:], uint32(int32(cfg.InvStds[i])))
	}
	_, err := w.Write(body)
	return err
}

// ReadStats decodes a Statistics file into a normalize.Config.
func ReadStats(r io.Reader, faults *fixed.FaultFlags) (*normalize.Config, error) {
	header := make([]byte, 8)
	if _, err := io.ReadFull(r, header); err != nil {
		faults.IOError = true
		return nil, ErrShortRead
	}
	if [4]byte(header[0:4]) != statMagic {
		faults.FormatError = true
		return nil, ErrBadMagic
	}
	if header[4] != formatVersion {
		faults.FormatError = true
		return nil, ErrBadVersion
	}
	n := int(header[5])

	body := make([]byte, n*8)
	if _, err := io.ReadFull(r, body); err != nil {
		faults.IOError = true
		return nil, ErrShortRead
	}

	cfg := &normalize.Config{
		Means:   make([]fixed.Fixed, n),
		InvStds: make([]fixed.Fixed, n),
	}
	for i := 0; i < n; i++ {
		cfg.Means[i] = fixed.Fixed(binary.LittleEndian.Uint32(body[i*8:]))
		cfg.InvStds[i] = fixed.Fixed(binary.LittleEndian.Uint32(body[i*8+4:]))
	}
	return cfg, nil
}

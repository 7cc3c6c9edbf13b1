package tensorio

import (
	"math/big"
	"strings"

	"github.com/detpipe-core/detpipe/fixed"
)

// maxFracDigits bounds how many fractional digits are accumulated into
// the exact rational before scaling; digits beyond this are still
// required to be valid [0-9] characters but are not used.
const maxFracDigits = 16

var (
	big10    = big.NewInt(10)
	bigOne   = big.NewInt(1)
	bigScale = big.NewInt(1 << 16)
)

// ParseRow splits line on commas and decodes each field as a decimal via
// ParseDecimal, in order. An empty field between commas is a format
// fault, surfaced both as a sticky flag and via the returned error.
func ParseRow(line string, faults *fixed.FaultFlags) ([]fixed.Fixed, error) {
	fields := strings.Split(line, ",")
	out := make([]fixed.Fixed, len(fields))
	var firstErr error
	for i, f := range fields {
		v, err := ParseDecimal(f, faults)
		out[i] = v
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return out, firstErr
}

// ParseDecimal parses one ASCII decimal literal — optional leading '-',
// optional single '.', digit runs using only [0-9], no scientific
// notation — into a Q16.16 Fixed. Parsing builds the exact rational
// (int*10^k + frac) / 10^k, scales by 65536, and divides by 10^k with
// round-to-nearest-even at the tie, then clamps to [MinFixed, MaxFixed].
func ParseDecimal(field string, faults *fixed.FaultFlags) (fixed.Fixed, error) {
	s := strings.TrimSpace(field)
	if s == "" {
		faults.FormatError = true
		return 0, ErrEmptyField
	}

	neg := false
	i := 0
	if s[0] == '-' {
		neg = true
		i = 1
	}

	intStart := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	intPart := s[intStart:i]

	var fracPart string
	if i < len(s) && s[i] == '.' {
		i++
		fracStart := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		fracPart = s[fracStart:i]
	}

	if i != len(s) || (intPart == "" && fracPart == "") {
		faults.FormatError = true
		return 0, ErrMalformedDecimal
	}

	intVal := new(big.Int)
	if intPart != "" {
		intVal.SetString(intPart, 10)
	}

	used := fracPart
	if len(used) > maxFracDigits {
		used = used[:maxFracDigits]
	}
	fracVal := new(big.Int)
	if used != "" {
		fracVal.SetString(used, 10)
	}
	pow10k := new(big.Int).Exp(big10, big.NewInt(int64(len(used))), nil)

	numerator := new(big.Int).Mul(intVal, pow10k)
	numerator.Add(numerator, fracVal)
	numerator.Mul(numerator, bigScale)

	quot, rem := new(big.Int).QuoRem(numerator, pow10k, new(big.Int))
	doubled := new(big.Int).Lsh(rem, 1)
	switch doubled.Cmp(pow10k) {
	case 1:
		quot.Add(quot, bigOne)
	case 0:
		if quot.Bit(0) == 1 {
			quot.Add(quot, bigOne)
		}
	}

	if neg {
		quot.Neg(quot)
	}

	maxB := big.NewInt(int64(fixed.MaxFixed))
	minB := big.NewInt(int64(fixed.MinFixed))
	if quot.Cmp(maxB) > 0 {
		faults.Overflow = true
		return fixed.MaxFixed, nil
	}
	if quot.Cmp(minB) < 0 {
		faults.Underflow = true
		return fixed.MinFixed, nil
	}
	return fixed.Fixed(quot.Int64()), nil
}

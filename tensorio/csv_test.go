package tensorio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/detpipe-core/detpipe/fixed"
	"github.com/detpipe-core/detpipe/tensorio"
)

func TestParseDecimalBasic(t *testing.T) {
	cases := []struct {
		in   string
		want fixed.Fixed
	}{
		{"1", fixed.One},
		{"-1", -fixed.One},
		{"0.5", fixed.Half},
		{"-0.5", -fixed.Half},
		{"0", fixed.Zero},
		{".5", fixed.Half},
	}
	for _, c := range cases {
		var faults fixed.FaultFlags
		got, err := tensorio.ParseDecimal(c.in, &faults)
		require.NoError(t, err, c.in)
		assert.False(t, faults.AnyFault(), c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestParseDecimalRoundsTowardNearestStep(t *testing.T) {
	// An exact tie (frac landing exactly halfway between two 1/65536
	// steps) requires the fraction's denominator to carry a factor of
	// 2^17; no decimal literal truncated to <=16 fractional digits can
	// produce that, so every field here has an unambiguous nearest step.
	cases := []struct {
		in   string
		want fixed.Fixed
	}{
		{"0.0000152587890625", fixed.Fixed(1)},   // exactly 1/65536
		{"0.00001", fixed.Fixed(1)},               // rounds up to nearest step
		{"0.000007", fixed.Fixed(0)},              // rounds down to nearest step
	}
	for _, c := range cases {
		var faults fixed.FaultFlags
		got, err := tensorio.ParseDecimal(c.in, &faults)
		require.NoError(t, err, c.in)
		assert.False(t, faults.AnyFault(), c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestParseDecimalEmptyFieldIsFormatFault(t *testing.T) {
	var faults fixed.FaultFlags
	_, err := tensorio.ParseDecimal("   ", &faults)
	require.ErrorIs(t, err, tensorio.ErrEmptyField)
	assert.True(t, faults.FormatError)
}

func TestParseDecimalMalformedIsFormatFault(t *testing.T) {
	cases := []string{"1.2.3", "abc", "1e10", "--1", "1.-2"}
	for _, c := range cases {
		var faults fixed.FaultFlags
		_, err := tensorio.ParseDecimal(c, &faults)
		require.Error(t, err, c)
		assert.True(t, faults.FormatError, c)
	}
}

func TestParseDecimalOverflowClamps(t *testing.T) {
	var faults fixed.FaultFlags
	got, err := tensorio.ParseDecimal("999999999", &faults)
	require.NoError(t, err)
	assert.Equal(t, fixed.MaxFixed, got)
	assert.True(t, faults.Overflow)
}

func TestParseDecimalUnderflowClamps(t *testing.T) {
	var faults fixed.FaultFlags
	got, err := tensorio.ParseDecimal("-999999999", &faults)
	require.NoError(t, err)
	assert.Equal(t, fixed.MinFixed, got)
	assert.True(t, faults.Underflow)
}

func TestParseRow(t *testing.T) {
	var faults fixed.FaultFlags
	values, err := tensorio.ParseRow("1,-0.5,0.25", &faults)
	require.NoError(t, err)
	assert.False(t, faults.AnyFault())
	require.Equal(t, []fixed.Fixed{fixed.One, -fixed.Half, fixed.Fixed(16384)}, values)
}

func TestParseRowEmptyFieldBetweenCommas(t *testing.T) {
	var faults fixed.FaultFlags
	_, err := tensorio.ParseRow("1,,3", &faults)
	require.Error(t, err)
	assert.True(t, faults.FormatError)
}

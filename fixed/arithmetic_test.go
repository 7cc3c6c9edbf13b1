package fixed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/detpipe-core/detpipe/fixed"
)

func TestAdd32Overflow(t *testing.T) {
	var faults fixed.FaultFlags
	got := fixed.Add32(fixed.MaxFixed, 1, &faults)
	require.Equal(t, fixed.MaxFixed, got)
	assert.True(t, faults.Overflow)
	assert.True(t, faults.AnyFault())
}

func TestAdd32Underflow(t *testing.T) {
	var faults fixed.FaultFlags
	got := fixed.Add32(fixed.MinFixed, -1, &faults)
	require.Equal(t, fixed.MinFixed, got)
	assert.True(t, faults.Underflow)
}

func TestAdd32InRange(t *testing.T) {
	var faults fixed.FaultFlags
	got := fixed.Add32(100, 200, &faults)
	require.Equal(t, fixed.Fixed(300), got)
	assert.False(t, faults.AnyFault())
}

func TestRoundShiftRNEHalfToEven(t *testing.T) {
	cases := []struct {
		name string
		x    int64
		want fixed.Fixed
	}{
		{"1.5->2 (even)", 0x00018000, 2},
		{"2.5->2 (even)", 0x00028000, 2},
		{"3.5->4 (even)", 0x00038000, 4},
		{"-1.5->-2 (even)", -98304, -2}, // 0xFFFFFFFFFFFE8000 as int64
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var faults fixed.FaultFlags
			got := fixed.RoundShiftRNE(tc.x, 16, &faults)
			require.Equal(t, tc.want, got)
			assert.False(t, faults.AnyFault())
		})
	}
}

func TestRoundShiftRNEZeroShift(t *testing.T) {
	var faults fixed.FaultFlags
	got := fixed.RoundShiftRNE(42, 0, &faults)
	require.Equal(t, fixed.Fixed(42), got)
}

func TestRoundShiftRNEDomainFault(t *testing.T) {
	var faults fixed.FaultFlags
	got := fixed.RoundShiftRNE(1, 63, &faults)
	require.Equal(t, fixed.Fixed(0), got)
	assert.True(t, faults.Domain)
}

func TestMulQ16Quarter(t *testing.T) {
	var faults fixed.FaultFlags
	got := fixed.MulQ16(fixed.Half, fixed.Half, &faults)
	require.Equal(t, fixed.Fixed(16384), got) // 0.25
	assert.False(t, faults.AnyFault())
}

func TestDivQ16ByZero(t *testing.T) {
	var faults fixed.FaultFlags
	got := fixed.DivQ16(fixed.One, 0, &faults)
	require.Equal(t, fixed.Fixed(0), got)
	assert.True(t, faults.DivZero)
}

func TestDivQ16Exact(t *testing.T) {
	var faults fixed.FaultFlags
	got := fixed.DivQ16(fixed.One, fixed.Fixed(2<<16), &faults) // 1 / 2
	require.Equal(t, fixed.Half, got)
	assert.False(t, faults.AnyFault())
}

func TestFromFloat64RoundTrip(t *testing.T) {
	require.Equal(t, fixed.Half, fixed.FromFloat64(0.5))
	require.InDelta(t, 0.5, fixed.ToFloat64(fixed.FromFloat64(0.5)), 1e-9)
}

func TestFromFloat64Clamps(t *testing.T) {
	require.Equal(t, fixed.MaxFixed, fixed.FromFloat64(1e9))
	require.Equal(t, fixed.MinFixed, fixed.FromFloat64(-1e9))
}

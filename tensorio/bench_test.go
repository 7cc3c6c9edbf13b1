package tensorio_test

import (
	"bytes"
	"testing"

	"github.com/detpipe-core/detpipe/fixed"
	"github.com/detpipe-core/detpipe/sample"
	"github.com/detpipe-core/detpipe/tensorio"
)

func BenchmarkParseDecimal(b *testing.B) {
	var faults fixed.FaultFlags
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tensorio.ParseDecimal("-123.456789", &faults)
	}
}

func BenchmarkWriteTensor(b *testing.B) {
	in := sample.Sample{
		Version: 1, DType: sample.DTypeQ16_16, NDims: 2, TotalElements: 4,
		Data: []fixed.Fixed{1, 2, 3, 4},
	}
	in.Dims[0], in.Dims[1] = 2, 2
	var buf bytes.Buffer
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		_ = tensorio.WriteTensor(&buf, &in)
	}
}

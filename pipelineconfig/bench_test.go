package pipelineconfig_test

import (
	"testing"

	"github.com/detpipe-core/detpipe/pipelineconfig"
)

func BenchmarkParse(b *testing.B) {
	data := []byte(sampleYAML)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pipelineconfig.Parse(data)
	}
}

package augment_test

import (
	"testing"

	"github.com/detpipe-core/detpipe/augment"
	"github.com/detpipe-core/detpipe/fixed"
	"github.com/detpipe-core/detpipe/sample"
)

func BenchmarkPipeline(b *testing.B) {
	in := makeImage(64, 64)
	out := sample.Sample{Data: make([]fixed.Fixed, 32*32)}
	cfg := &augment.Config{
		CropHeight: 32, CropWidth: 32,
		Flags:           augment.Flags{HFlip: true, VFlip: true, RandomCrop: true, Brightness: true, AdditiveNoise: true},
		NoiseStd:        fixed.Fixed(500),
		BrightnessDelta: fixed.FromFloat64(0.2),
	}

	var faults fixed.FaultFlags
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = augment.Pipeline(&in, &out, cfg, 0xDEADBEEF, uint32(i), uint32(i), &faults)
	}
}

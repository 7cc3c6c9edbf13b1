package pipeline_test

import (
	"testing"

	"github.com/detpipe-core/detpipe/augment"
	"github.com/detpipe-core/detpipe/fixed"
	"github.com/detpipe-core/detpipe/normalize"
	"github.com/detpipe-core/detpipe/pipeline"
)

func BenchmarkRunBatch(b *testing.B) {
	ds := makeImageDataset(256, 16, 16)
	augCfg := &augment.Config{
		CropHeight: 8, CropWidth: 8,
		Flags: augment.Flags{HFlip: true, VFlip: true, RandomCrop: true, Brightness: true, AdditiveNoise: true},
	}
	normCfg := &normalize.Config{Means: []fixed.Fixed{fixed.Zero}, InvStds: []fixed.Fixed{fixed.One}}

	var faults fixed.FaultFlags
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pipeline.RunBatch(ds, augCfg, normCfg, 32, uint32(i)%8, 0, 0xDEADBEEF, &faults)
	}
}

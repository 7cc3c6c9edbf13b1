package augment_test

import (
	"fmt"

	"github.com/detpipe-core/detpipe/augment"
	"github.com/detpipe-core/detpipe/fixed"
	"github.com/detpipe-core/detpipe/sample"
)

func ExamplePipeline() {
	in := sample.Sample{
		Version: 1, DType: sample.DTypeQ16_16,
		NDims: 2, TotalElements: 16,
		Data: []fixed.Fixed{
			0, 1, 2, 3,
			4, 5, 6, 7,
			8, 9, 10, 11,
			12, 13, 14, 15,
		},
	}
	in.Dims[0], in.Dims[1] = 4, 4

	out := sample.Sample{Data: make([]fixed.Fixed, 2*2)}
	cfg := &augment.Config{CropHeight: 2, CropWidth: 2} // all flags disabled: centre crop only

	var faults fixed.FaultFlags
	if err := augment.Pipeline(&in, &out, cfg, 42, 0, 0, &faults); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(out.Dims[0], out.Dims[1], out.Data, faults.AnyFault())
	// Output: 2 2 [5 6 9 10] false
}

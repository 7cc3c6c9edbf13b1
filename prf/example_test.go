package prf_test

import (
	"fmt"

	"github.com/detpipe-core/detpipe/fixed"
	"github.com/detpipe-core/detpipe/prf"
)

// ExampleUniformUint32 draws a value uniformly distributed over [0, 10)
// for a fixed (seed, epoch, op_id).
func ExampleUniformUint32() {
	var faults fixed.FaultFlags
	v := prf.UniformUint32(0x123456789ABCDEF0, 0, 42, 10, &faults)
	fmt.Println(v < 10, faults.AnyFault())
	// Output: true false
}

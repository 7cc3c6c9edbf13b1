package permute_test

import (
	"fmt"

	"github.com/detpipe-core/detpipe/fixed"
	"github.com/detpipe-core/detpipe/permute"
)

// ExamplePermute shuffles index 0 of a 100-sample dataset for epoch 0.
func ExamplePermute() {
	var faults fixed.FaultFlags
	shuffled := permute.Permute(0, 100, 0x123456789ABCDEF0, 0, &faults)
	fmt.Println(shuffled, faults.AnyFault())
	// Output: 26 false
}

package merkle_test

import (
	"fmt"

	"github.com/detpipe-core/detpipe/fixed"
	"github.com/detpipe-core/detpipe/merkle"
	"github.com/detpipe-core/detpipe/sha256d"
)

func ExampleRoot() {
	a := sha256d.Sum256([]byte("a"))
	b := sha256d.Sum256([]byte("b"))
	c := sha256d.Sum256([]byte("c"))

	var faults fixed.FaultFlags
	root := merkle.Root([]sha256d.Digest{a, b, c}, &faults)
	fmt.Println(root == merkle.NodeHash(merkle.NodeHash(a, b), c))
	// Output: true
}

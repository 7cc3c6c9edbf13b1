package provenance_test

import (
	"fmt"

	"github.com/detpipe-core/detpipe/provenance"
	"github.com/detpipe-core/detpipe/sha256d"
)

func ExampleProvenance_Advance() {
	datasetHash := sha256d.Sum256([]byte("dataset"))
	configHash := sha256d.Sum256([]byte("config"))

	p := provenance.Init(datasetHash, configHash, 7)
	epochHash := sha256d.Sum256([]byte("epoch-0-batches"))
	p.Advance(epochHash)

	fmt.Println(p.CurrentEpoch, p.TotalEpochs)
	// Output: 1 1
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/detpipe-core/detpipe/fixed"
	"github.com/detpipe-core/detpipe/sample"
	"github.com/detpipe-core/detpipe/sha256d"
	"github.com/detpipe-core/detpipe/tensorio"
)

// loadDataset reads every *.tensor file in dir, in lexical filename order,
// decoding each with tensorio.ReadTensor and folding it into a Dataset.
// dataset_hash is the SHA-256 of the samples' canonical serialized bytes,
// concatenated in load order — this CLI is the "external collaborator"
// sample.doc.go defers loading and hashing policy to.
func loadDataset(dir string) (*sample.Dataset, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dataset dir %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".tensor" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	if len(names) == 0 {
		return nil, fmt.Errorf("dataset dir %s has no .tensor files", dir)
	}

	samples := make([]sample.Sample, 0, len(names))
	var hasher sha256d.Hasher
	var shape sample.Sample

	for i, name := range names {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", name, err)
		}
		var faults fixed.FaultFlags
		s, err := tensorio.ReadTensor(f, &faults)
		closeErr := f.Close()
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		if closeErr != nil {
			return nil, fmt.Errorf("close %s: %w", name, closeErr)
		}
		if faults.AnyFault() {
			return nil, fmt.Errorf("decode %s: sticky fault set", name)
		}
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("validate %s: %w", name, err)
		}
		if i == 0 {
			shape = sample.Sample{NDims: s.NDims, Dims: s.Dims}
		}
		hasher.Update(sample.Serialize(s))
		samples = append(samples, *s)
	}

	return &sample.Dataset{
		NumSamples:  uint32(len(samples)),
		SampleShape: shape,
		Samples:     samples,
		DatasetHash: hasher.Final(),
	}, nil
}

// hashConfigFile hashes a config file's raw bytes, used as config_hash for
// provenance chains. The pipeline itself never sees this file; only its
// resolved pipelineconfig.Config does.
func hashConfigFile(path string) (sha256d.Digest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sha256d.Digest{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return sha256d.Sum256(data), nil
}

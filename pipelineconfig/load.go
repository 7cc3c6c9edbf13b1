package pipelineconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/detpipe-core/detpipe/augment"
	"github.com/detpipe-core/detpipe/fixed"
	"github.com/detpipe-core/detpipe/normalize"
)

// Load reads and parses the YAML configuration file at path, converting
// every floating-point literal to fixed.Fixed via fixed.FromFloat64.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pipelineconfig: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML document already read into memory, performing
// the same float->Fixed conversion as Load.
func Parse(data []byte) (*Config, error) {
	var raw rawDocument
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("pipelineconfig: parse yaml: %w", err)
	}

	means := make([]fixed.Fixed, len(raw.Normalize.Means))
	for i, v := range raw.Normalize.Means {
		means[i] = fixed.FromFloat64(v)
	}
	invStds := make([]fixed.Fixed, len(raw.Normalize.InvStds))
	for i, v := range raw.Normalize.InvStds {
		invStds[i] = fixed.FromFloat64(v)
	}

	cfg := &Config{
		Seed:      raw.Seed,
		Epoch:     raw.Epoch,
		BatchSize: raw.BatchSize,
		Normalize: normalize.Config{Means: means, InvStds: invStds},
		Augment: augment.Config{
			Flags: augment.Flags{
				HFlip:         raw.Augment.HFlip,
				VFlip:         raw.Augment.VFlip,
				RandomCrop:    raw.Augment.RandomCrop,
				AdditiveNoise: raw.Augment.AdditiveNoise,
				Brightness:    raw.Augment.Brightness,
			},
			CropHeight:      raw.Augment.CropHeight,
			CropWidth:       raw.Augment.CropWidth,
			NoiseStd:        fixed.FromFloat64(raw.Augment.NoiseStd),
			BrightnessDelta: fixed.FromFloat64(raw.Augment.BrightnessDelta),
		},
	}
	return cfg, nil
}

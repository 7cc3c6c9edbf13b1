package pipelineconfig

import (
	"github.com/detpipe-core/detpipe/augment"
	"github.com/detpipe-core/detpipe/normalize"
)

// rawDocument mirrors the YAML document's on-disk shape, with floats
// still as float64 — the Fixed conversion happens after unmarshaling,
// in Load.
type rawDocument struct {
	Seed      uint64       `yaml:"seed"`
	Epoch     uint32       `yaml:"epoch"`
	BatchSize uint32       `yaml:"batch_size"`
	Normalize rawNormalize `yaml:"normalize"`
	Augment   rawAugment   `yaml:"augment"`
}

type rawNormalize struct {
	Means   []float64 `yaml:"means"`
	InvStds []float64 `yaml:"inv_stds"`
}

type rawAugment struct {
	HFlip           bool    `yaml:"h_flip"`
	VFlip           bool    `yaml:"v_flip"`
	RandomCrop      bool    `yaml:"random_crop"`
	AdditiveNoise   bool    `yaml:"additive_noise"`
	Brightness      bool    `yaml:"brightness"`
	CropHeight      uint32  `yaml:"crop_height"`
	CropWidth       uint32  `yaml:"crop_width"`
	NoiseStd        float64 `yaml:"noise_std"`
	BrightnessDelta float64 `yaml:"brightness_delta"`
}

// Config is the fully resolved, Fixed-valued pipeline configuration
// ready to hand to the data path.
type Config struct {
	Seed      uint64
	Epoch     uint32
	BatchSize uint32
	Normalize normalize.Config
	Augment   augment.Config
}

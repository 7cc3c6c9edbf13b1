// Package pipelineconfig loads a YAML pipeline configuration file into
// the in-memory Config types the core consumes: augment.Config and
// normalize.Config for the data path, plus the seed/epoch/batch_size
// this run should use.
//
// YAML floating-point literals are converted to fixed.Fixed at load
// time via fixed.FromFloat64 — the only place in the whole module
// floating point is permitted, since it runs before the data path ever
// sees a value.
package pipelineconfig

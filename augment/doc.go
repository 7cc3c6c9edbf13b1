// Package augment runs the fixed-order deterministic augmentation chain
// over a single sample: random_crop -> horizontal_flip -> vertical_flip ->
// brightness -> additive_noise. The order never changes, regardless of
// which operations are enabled in Config: a disabled operation still
// consumes exactly the PRF draws its enabled counterpart would have, so
// that flipping a config flag can never change the randomness consumed by
// any other operation. Without this rule, toggling one flag would shift
// every later draw and silently break reproducibility across configs.
//
// Samples are assumed to carry spatial dimensions in their last two axes
// (..., H, W); any leading axes (e.g. channels) are treated as repeated
// planes that flips and crops apply to identically.
//
// State machine per sample (no backtracking, no branches beyond
// enabled/disabled): Start -> CropApplied -> HFlipApplied -> VFlipApplied
// -> BrightnessApplied -> NoiseApplied -> End.
package augment

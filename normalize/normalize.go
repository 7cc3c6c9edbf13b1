package normalize

import (
	"github.com/detpipe-core/detpipe/fixed"
	"github.com/detpipe-core/detpipe/sample"
)

// Normalize writes cfg's affine transform of in into out, element by
// element. For i < cfg.NumFeatures(), out[i] = (in[i]-mean[i])*inv_std[i];
// for i >= cfg.NumFeatures(), out[i] = in[i] unchanged. out and in may
// alias the same backing array (in-place operation): each output element
// depends only on the same-indexed input element, so ascending-order
// in-place writes never clobber data a later iteration still needs.
//
// Overflow/underflow in the subtract or multiply sets the corresponding
// sticky fault on faults and processing continues through the remaining
// elements — there is no early exit.
func Normalize(in, out []fixed.Fixed, cfg *Config, faults *fixed.FaultFlags) {
	n := cfg.NumFeatures()
	limit := n
	if len(in) < limit {
		limit = len(in)
	}
	for i := 0; i < limit; i++ {
		diff := fixed.Sub32(in[i], cfg.Means[i], faults)
		out[i] = fixed.MulQ16(diff, cfg.InvStds[i], faults)
	}
	for i := limit; i < len(in); i++ {
		out[i] = in[i]
	}
}

// Sample applies Normalize to a whole sample.Sample, copying shape
// metadata (version, dtype, ndims, dims, total_elements) verbatim — shape
// never changes, only the values. in and out may be the same Sample.
func Sample(in *sample.Sample, out *sample.Sample, cfg *Config, faults *fixed.FaultFlags) {
	out.Version = in.Version
	out.DType = in.DType
	out.NDims = in.NDims
	out.Dims = in.Dims
	out.TotalElements = in.TotalElements
	Normalize(in.Data, out.Data, cfg, faults)
}

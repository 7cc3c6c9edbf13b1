package normalize

import "github.com/detpipe-core/detpipe/fixed"

// Config holds the precomputed per-feature statistics. Means and InvStds
// must be the same length; that length is NumFeatures.
type Config struct {
	Means   []fixed.Fixed
	InvStds []fixed.Fixed
}

// NumFeatures returns the number of features this Config covers.
func (c *Config) NumFeatures() int {
	return len(c.Means)
}

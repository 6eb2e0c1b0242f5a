// SPDX-License-Identifier: MIT

package compare

// DefaultRescale is the rescale policy when no option is given.
const DefaultRescale = false

// Options configures a comparison.
//
// Fields:
//   - Rescale: min-max normalize each vectorized RDM to [0,1] before the
//     method runs. Applied for every method, Distance included; Distance is
//     therefore NOT scale invariant and reports distances between the
//     normalized vectors.
type Options struct {
	Rescale bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the zero-configuration Options.
func DefaultOptions() Options {
	return Options{Rescale: DefaultRescale}
}

// WithRescale toggles min-max normalization of both inputs.
func WithRescale(on bool) Option {
	return func(o *Options) {
		o.Rescale = on
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

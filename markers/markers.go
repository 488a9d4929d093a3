// Package markers rescales numeric values into scatter-plot marker sizes.
package markers

import (
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/ehrlens/errs"
	"github.com/arloliu/ehrlens/internal/options"
)

const (
	// DefaultMinSize is the marker size assigned to the smallest value.
	DefaultMinSize = 10.0
	// DefaultMaxSize is the marker size assigned to the largest value.
	DefaultMaxSize = 1000.0
)

// Config holds the target size range.
type Config struct {
	MinSize float64
	MaxSize float64
}

// Option configures Scale.
type Option = options.Option[*Config]

// WithRange sets the output size range. minSize may exceed maxSize, which
// inverts the scale (largest value gets the smallest marker).
func WithRange(minSize, maxSize float64) Option {
	return options.New(func(c *Config) error {
		if !isFinite(minSize) || !isFinite(maxSize) {
			return fmt.Errorf("%w: marker size range [%v, %v] must be finite", errs.ErrInvalidInput, minSize, maxSize)
		}
		c.MinSize, c.MaxSize = minSize, maxSize

		return nil
	})
}

// Scale linearly maps values onto [MinSize, MaxSize]:
//
//	out[i] = (values[i]-min) * (MaxSize-MinSize) / (max-min) + MinSize
//
// The smallest value maps exactly to MinSize and the largest exactly to
// MaxSize. The output has the same length and order as values; values is not
// modified. NaN inputs are not filtered and propagate to the output.
//
// Parameters:
//   - values: Values to rescale
//   - opts: WithRange to override the default [10, 1000] range
//
// Returns:
//   - []float64: Marker sizes
//   - error: errs.ErrInvalidInput for empty input or a non-finite range,
//     errs.ErrDegenerateInput when every value is equal
func Scale(values []float64, opts ...Option) ([]float64, error) {
	cfg := &Config{MinSize: DefaultMinSize, MaxSize: DefaultMaxSize}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no values to scale", errs.ErrInvalidInput)
	}

	lo, hi := slices.Min(values), slices.Max(values)
	span := hi - lo
	if span == 0 {
		return nil, fmt.Errorf("%w: %d values all equal %v", errs.ErrDegenerateInput, len(values), lo)
	}

	sizeSpan := cfg.MaxSize - cfg.MinSize
	floor, ceil := min(cfg.MinSize, cfg.MaxSize), max(cfg.MinSize, cfg.MaxSize)
	out := make([]float64, len(values))
	for i, v := range values {
		switch v {
		case lo:
			out[i] = cfg.MinSize
		case hi:
			out[i] = cfg.MaxSize
		default:
			// Clamp rounding drift so interior values never pass the endpoints.
			out[i] = math.Min(math.Max((v-lo)*sizeSpan/span+cfg.MinSize, floor), ceil)
		}
	}

	return out, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

package trend

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arloliu/ehrlens/errs"
	"github.com/arloliu/ehrlens/internal/options"
)

// DefaultPrecision is the number of decimal places reported coefficients are rounded to.
const DefaultPrecision int32 = 2

// FitConfig holds configuration for FitRows.
type FitConfig struct {
	// EntityColumn names a column carried through but excluded from the time points.
	EntityColumn string
	// Parallel fits rows concurrently.
	Parallel bool
	// Precision is the number of decimal places coefficients are rounded to.
	Precision int32
	// Logger receives debug events; defaults to a no-op logger.
	Logger zerolog.Logger
}

// defaultFitConfig returns default config (no entity column, sequential, 2 decimals).
func defaultFitConfig() FitConfig {
	return FitConfig{
		Precision: DefaultPrecision,
		Logger:    zerolog.Nop(),
	}
}

// Option is a functional option for FitConfig.
type Option = options.Option[*FitConfig]

// WithEntityColumn names the identifier column of the heatmap.
func WithEntityColumn(name string) Option {
	return options.NoError(func(cfg *FitConfig) {
		cfg.EntityColumn = name
	})
}

// WithParallel enables or disables concurrent row fitting.
func WithParallel(enabled bool) Option {
	return options.NoError(func(cfg *FitConfig) {
		cfg.Parallel = enabled
	})
}

// WithPrecision sets the number of decimal places (0 to 15).
func WithPrecision(places int32) Option {
	return options.New(func(cfg *FitConfig) error {
		if places < 0 || places > 15 {
			return fmt.Errorf("%w: precision %d out of range [0, 15]", errs.ErrInvalidInput, places)
		}
		cfg.Precision = places

		return nil
	})
}

// WithLogger sets the logger used for debug events.
func WithLogger(l zerolog.Logger) Option {
	return options.NoError(func(cfg *FitConfig) {
		cfg.Logger = l
	})
}

package histogram

import (
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gonum.org/v1/plot/vg"

	"github.com/arloliu/ehrlens/errs"
	"github.com/arloliu/ehrlens/internal/options"
)

// DefaultIDColumn is the identifier column of an observation table.
const DefaultIDColumn = "IDEHR"

// Style describes how a histogram is drawn.
type Style struct {
	// Width and Height of the chart canvas.
	Width  vg.Length `validate:"gt=0"`
	Height vg.Length `validate:"gt=0"`
	// FontSize in points, applied to the title, axis labels and tick labels.
	FontSize float64 `validate:"gt=0"`
	// Bins is the number of equal-width histogram bins.
	Bins int `validate:"gt=0"`
	// Format is the image encoding passed to gonum/plot.
	Format string `validate:"oneof=png svg pdf eps jpg jpeg tif tiff"`
}

// DefaultStyle returns a 10in × 6in PNG with 12pt text and 10 bins.
func DefaultStyle() Style {
	return Style{
		Width:    10 * vg.Inch,
		Height:   6 * vg.Inch,
		FontSize: 12,
		Bins:     10,
		Format:   "png",
	}
}

var validate = validator.New()

// Validate checks every Style field against its constraints.
func (s Style) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: style: %w", errs.ErrInvalidInput, err)
	}

	return nil
}

// Config holds configuration for Summarize and the render functions.
type Config struct {
	Style    Style
	IDColumn string
	// Report receives the unique-entity line of RenderObservationHistogram.
	Report io.Writer
	Logger zerolog.Logger
}

func defaultConfig() Config {
	return Config{
		Style:    DefaultStyle(),
		IDColumn: DefaultIDColumn,
		Report:   os.Stdout,
		Logger:   zerolog.Nop(),
	}
}

// newConfig applies opts over the defaults and validates the resulting style.
func newConfig(opts []Option) (Config, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return Config{}, err
	}
	if err := cfg.Style.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// WithStyle replaces the whole chart style.
func WithStyle(s Style) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Style = s
	})
}

// WithBins sets the number of histogram bins.
func WithBins(n int) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Style.Bins = n
	})
}

// WithIDColumn sets the identifier column.
func WithIDColumn(name string) Option {
	return options.New(func(cfg *Config) error {
		if name == "" {
			return fmt.Errorf("%w: empty identifier column name", errs.ErrInvalidInput)
		}
		cfg.IDColumn = name

		return nil
	})
}

// WithReport sets where the unique-entity line is written.
// A nil writer discards it.
func WithReport(w io.Writer) Option {
	return options.NoError(func(cfg *Config) {
		if w == nil {
			w = io.Discard
		}
		cfg.Report = w
	})
}

// WithLogger sets the logger used for debug events.
func WithLogger(l zerolog.Logger) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Logger = l
	})
}

// Package dataset loads clinical CSV extracts into gota DataFrames.
//
// It plays the role pandas' read_csv plays in a notebook: it is the caller-side
// collaborator that turns files on disk into the in-memory tables the lookup,
// histogram and trend packages consume. Files may be plain or compressed; the
// codec is picked from the extension (see format.CompressionFromPath).
//
// Missing cells are normalized to gota's NA marker so that
// series.Element.IsNA reports them consistently regardless of column type.
package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/arloliu/ehrlens/compress"
	"github.com/arloliu/ehrlens/errs"
	"github.com/arloliu/ehrlens/format"
	"github.com/arloliu/ehrlens/internal/options"
)

// naMarker is the literal every gota element type parses as NA.
const naMarker = "NaN"

// DefaultMissingTokens are the cell values treated as missing, a subset of
// the pandas read_csv defaults.
var DefaultMissingTokens = []string{"", "NA", "N/A", "NaN", "nan", "null", "NULL", "<NA>"}

// Config holds CSV parsing settings.
type Config struct {
	MissingTokens []string
	Types         map[string]series.Type
	Delimiter     rune
}

// Option configures Load and Read.
type Option = options.Option[*Config]

func defaultConfig() *Config {
	return &Config{
		MissingTokens: DefaultMissingTokens,
		Delimiter:     ',',
	}
}

// WithMissingTokens replaces the set of cell values treated as missing.
func WithMissingTokens(tokens ...string) Option {
	return options.NoError(func(c *Config) {
		c.MissingTokens = slices.Clone(tokens)
	})
}

// WithTypes forces the series type of the named columns instead of detecting it.
// Identifier columns such as IDEHR usually want series.String so that leading
// zeros survive. Repeated calls merge, later ones winning per column.
func WithTypes(types map[string]series.Type) Option {
	return options.NoError(func(c *Config) {
		if c.Types == nil {
			c.Types = make(map[string]series.Type, len(types))
		}
		maps.Copy(c.Types, types)
	})
}

// WithDelimiter sets the field delimiter (default ',').
func WithDelimiter(d rune) Option {
	return options.New(func(c *Config) error {
		if d == '"' || d == '\r' || d == '\n' {
			return fmt.Errorf("%w: delimiter %q", errs.ErrInvalidInput, d)
		}
		c.Delimiter = d

		return nil
	})
}

// Load reads the CSV table at path, decompressing it first when the extension
// names a supported codec.
//
// Parameters:
//   - path: File path, e.g. "cross_ref_cols_tabs.csv" or "labs.csv.zst"
//   - opts: Parsing options
//
// Returns:
//   - dataframe.DataFrame: The loaded table
//   - error: I/O, decompression or parse error
func Load(path string, opts ...Option) (dataframe.DataFrame, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("read %s: %w", path, err)
	}

	codec, err := compress.CreateCodec(format.CompressionFromPath(path), path)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	plain, err := codec.Decompress(raw)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("decompress %s: %w", path, err)
	}

	df, err := Read(bytes.NewReader(plain), opts...)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("load %s: %w", path, err)
	}

	return df, nil
}

// Read parses an uncompressed CSV stream with a header row.
func Read(r io.Reader, opts ...Option) (dataframe.DataFrame, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return dataframe.DataFrame{}, err
	}

	cr := csv.NewReader(r)
	cr.Comma = cfg.Delimiter

	records, err := cr.ReadAll()
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w: parse csv: %w", errs.ErrInvalidInput, err)
	}
	if len(records) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("%w: empty csv: no header row", errs.ErrInvalidInput)
	}

	// Header cells are never missing; only data rows are normalized.
	for _, rec := range records[1:] {
		for i, cell := range rec {
			if slices.Contains(cfg.MissingTokens, cell) {
				rec[i] = naMarker
			}
		}
	}

	loadOpts := []dataframe.LoadOption{dataframe.HasHeader(true)}
	if len(cfg.Types) > 0 {
		loadOpts = append(loadOpts, dataframe.WithTypes(cfg.Types))
	}

	df := dataframe.LoadRecords(records, loadOpts...)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %w", errs.ErrInvalidInput, df.Err)
	}

	return df, nil
}

// Write encodes df as CSV with a header row. Missing cells are written empty.
func Write(w io.Writer, df dataframe.DataFrame) error {
	if df.Err != nil {
		return df.Err
	}

	cw := csv.NewWriter(w)
	names := df.Names()
	if err := cw.Write(names); err != nil {
		return err
	}

	nrow, ncol := df.Dims()
	row := make([]string, ncol)
	for i := 0; i < nrow; i++ {
		for j := 0; j < ncol; j++ {
			row[j] = formatCell(df.Elem(i, j))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func formatCell(e series.Element) string {
	switch {
	case e.IsNA():
		return ""
	case e.Type() == series.Float:
		return strconv.FormatFloat(e.Float(), 'f', -1, 64)
	default:
		return e.String()
	}
}

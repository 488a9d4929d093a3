package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gota/gota/series"
	"github.com/rs/zerolog"
	"gonum.org/v1/plot/vg"

	"github.com/arloliu/ehrlens"
	"github.com/arloliu/ehrlens/dataset"
	"github.com/arloliu/ehrlens/histogram"
	"github.com/arloliu/ehrlens/markers"
	"github.com/arloliu/ehrlens/trend"
)

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	return fs
}

func requireFlag(name, value string) error {
	if value == "" {
		return fmt.Errorf("%w: -%s is required", errUsage, name)
	}

	return nil
}

func runLookup(args []string, stdout io.Writer, log zerolog.Logger) error {
	fs := newFlagSet("lookup")
	ref := fs.String("ref", "", "Reference table listing which columns each file contains")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlag("ref", *ref); err != nil {
		return err
	}

	table, err := ehrlens.LoadTable(*ref)
	if err != nil {
		return err
	}

	files, err := ehrlens.FilesWithColumns(fs.Args(), table)
	if err != nil {
		return err
	}

	for _, f := range files {
		if _, err := fmt.Fprintln(stdout, f); err != nil {
			return err
		}
	}
	log.Info().Strs("columns", fs.Args()).Int("files", len(files)).Msg("lookup complete")

	return nil
}

func runHist(args []string, stdout io.Writer, log zerolog.Logger) error {
	def := histogram.DefaultStyle()

	fs := newFlagSet("hist")
	data := fs.String("data", "", "Observation table")
	column := fs.String("column", "", "Observation column to summarize")
	label := fs.String("label", "", "Chart title (defaults to the column name)")
	out := fs.String("out", "", "Output chart file; the extension selects the format")
	idColumn := fs.String("id", histogram.DefaultIDColumn, "Identifier column")
	bins := fs.Int("bins", def.Bins, "Number of histogram bins")
	width := fs.Float64("width", float64(def.Width/vg.Inch), "Chart width in inches")
	height := fs.Float64("height", float64(def.Height/vg.Inch), "Chart height in inches")
	fontSize := fs.Float64("font", def.FontSize, "Font size in points")
	if err := fs.Parse(args); err != nil {
		return err
	}
	for _, req := range []struct{ name, value string }{
		{"data", *data},
		{"column", *column},
		{"out", *out},
	} {
		if err := requireFlag(req.name, req.value); err != nil {
			return err
		}
	}
	if *label == "" {
		*label = *column
	}

	style := histogram.Style{
		Width:    vg.Length(*width) * vg.Inch,
		Height:   vg.Length(*height) * vg.Inch,
		FontSize: *fontSize,
		Bins:     *bins,
		Format:   strings.ToLower(strings.TrimPrefix(filepath.Ext(*out), ".")),
	}
	if err := style.Validate(); err != nil {
		return err
	}

	table, err := ehrlens.LoadTable(*data, dataset.WithTypes(map[string]series.Type{*idColumn: series.String}))
	if err != nil {
		return err
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}

	s, err := histogram.RenderObservationHistogram(f, table, *column, *label,
		histogram.WithStyle(style),
		histogram.WithIDColumn(*idColumn),
		histogram.WithReport(stdout),
		histogram.WithLogger(log),
	)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(*out)
		return err
	}

	log.Info().
		Str("column", *column).
		Int("unique_ids", s.UniqueIDs).
		Int("rows", s.Rows).
		Str("out", *out).
		Msg("histogram written")

	return nil
}

func runScale(args []string, stdout io.Writer, log zerolog.Logger) error {
	fs := newFlagSet("scale")
	minSize := fs.Float64("min", markers.DefaultMinSize, "Marker size of the smallest value")
	maxSize := fs.Float64("max", markers.DefaultMaxSize, "Marker size of the largest value")
	if err := fs.Parse(args); err != nil {
		return err
	}

	values := make([]float64, fs.NArg())
	for i, arg := range fs.Args() {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("%w: value %q: %w", errUsage, arg, err)
		}
		values[i] = v
	}

	sizes, err := markers.Scale(values, markers.WithRange(*minSize, *maxSize))
	if err != nil {
		return err
	}

	for _, s := range sizes {
		if _, err := fmt.Fprintln(stdout, strconv.FormatFloat(s, 'g', -1, 64)); err != nil {
			return err
		}
	}
	log.Debug().Int("values", len(values)).Msg("scaled marker sizes")

	return nil
}

func runTrend(args []string, stdout io.Writer, log zerolog.Logger) error {
	fs := newFlagSet("trend")
	data := fs.String("data", "", "Heatmap table with time-point columns 0..n")
	n := fs.Int("n", 0, "Index of the last time-point column")
	entity := fs.String("entity", ehrlens.IDColumn, "Entity column carried through unfitted; empty for none")
	parallel := fs.Bool("parallel", false, "Fit rows concurrently")
	precision := fs.Int("precision", int(trend.DefaultPrecision), "Decimal places of the coefficients")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlag("data", *data); err != nil {
		return err
	}

	var loadOpts []dataset.Option
	if *entity != "" {
		loadOpts = append(loadOpts, dataset.WithTypes(map[string]series.Type{*entity: series.String}))
	}
	heatmap, err := ehrlens.LoadTable(*data, loadOpts...)
	if err != nil {
		return err
	}

	res, err := trend.FitRows(heatmap, *n,
		trend.WithEntityColumn(*entity),
		trend.WithParallel(*parallel),
		trend.WithPrecision(int32(min(max(*precision, -1), 16))), //nolint: gosec
		trend.WithLogger(log),
	)
	if err != nil {
		return err
	}

	if err := dataset.Write(stdout, res.Table); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	log.Info().
		Int("rows", len(res.Rows)).
		Int("fitted", res.Fitted).
		Int("undefined", res.Undefined()).
		Msg("trend fit complete")

	return nil
}

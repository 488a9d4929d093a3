package histogram

import (
	"fmt"
	"io"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/arloliu/ehrlens/errs"
)

// Axis labels of every observation histogram.
const (
	XLabel = "No. of observations"
	YLabel = "No. of IDEHRs"
)

// Render draws the per-entity counts of s as a histogram and encodes it to w.
//
// The chart is titled label, has grid lines, and uses the configured Style.
// A summary with no retained rows has nothing to bin and yields
// errs.ErrNoObservations.
func Render(w io.Writer, s *Summary, label string, opts ...Option) error {
	cfg, err := newConfig(opts)
	if err != nil {
		return err
	}

	return render(w, s, label, cfg)
}

// RenderObservationHistogram summarizes column, writes
// "No. of unique IDEHR: <count>" to the report writer and renders the chart
// to w.
//
// The summary is returned even when rendering fails, so the statistic stays
// available for an empty column.
//
// Example:
//
//	s, err := histogram.RenderObservationHistogram(f, obs, "SYSTOLIC", "Systolic BP")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(s.UniqueIDs)
func RenderObservationHistogram(w io.Writer, table dataframe.DataFrame, column, label string, opts ...Option) (*Summary, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	s, err := summarize(table, column, cfg)
	if err != nil {
		return nil, err
	}

	if _, err := fmt.Fprintf(cfg.Report, "No. of unique IDEHR: %d\n", s.UniqueIDs); err != nil {
		return s, fmt.Errorf("write report: %w", err)
	}

	return s, render(w, s, label, cfg)
}

func render(w io.Writer, s *Summary, label string, cfg Config) error {
	if s == nil || s.Rows == 0 {
		col := ""
		if s != nil {
			col = s.Column
		}

		return errs.Invalid(errs.ErrNoObservations, "column %q has nothing to bin", col)
	}

	p := plot.New()
	p.Title.Text = label
	p.X.Label.Text = XLabel
	p.Y.Label.Text = YLabel
	applyFontSize(p, vg.Points(cfg.Style.FontSize))

	h, err := plotter.NewHist(plotter.Values(s.Values()), cfg.Style.Bins)
	if err != nil {
		return fmt.Errorf("build histogram: %w", err)
	}
	p.Add(plotter.NewGrid(), h)

	wt, err := p.WriterTo(cfg.Style.Width, cfg.Style.Height, cfg.Style.Format)
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrInvalidInput, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write %s chart: %w", cfg.Style.Format, err)
	}

	cfg.Logger.Debug().
		Str("column", s.Column).
		Int("bins", cfg.Style.Bins).
		Str("format", cfg.Style.Format).
		Msg("rendered observation histogram")

	return nil
}

func applyFontSize(p *plot.Plot, size vg.Length) {
	p.Title.TextStyle.Font.Size = size
	p.X.Label.TextStyle.Font.Size = size
	p.Y.Label.TextStyle.Font.Size = size
	p.X.Tick.Label.Font.Size = size
	p.Y.Tick.Label.Font.Size = size
}

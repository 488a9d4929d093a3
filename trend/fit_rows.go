package trend

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/exascience/pargo/parallel"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/arloliu/ehrlens/errs"
	"github.com/arloliu/ehrlens/internal/frame"
	"github.com/arloliu/ehrlens/internal/options"
	"github.com/arloliu/ehrlens/internal/pool"
)

// FitRows fits a degree-1 and a degree-2 polynomial to every complete row of
// a heatmap table and appends the leading coefficients as new columns.
//
// The time-point columns are every column of heatmap except the entity
// column (if one is configured), taken in table order as x = 0, 1, …, n.
// A row is fitted only when it holds exactly n+1 finite values; otherwise all
// of its coefficients are Undefined. A table with fewer than n+1 time-point
// columns therefore yields Undefined for every row.
//
// The input table is not modified. The returned table has the same rows in
// the same order with deg1_m, deg2_x2 and deg2_x1 appended as float columns,
// NA where undefined.
//
// Parameters:
//   - heatmap: Rows are entities, columns are time buckets 0..n
//   - n: Index of the last time bucket; at least 2
//   - opts: WithEntityColumn, WithParallel, WithPrecision, WithLogger
//
// Returns:
//   - *Result: Augmented table plus tagged per-row coefficients
//   - error: errs.ErrInvalidInput (with errs.ErrInsufficientPoints for n < 2,
//     errs.ErrRowWidth for more than n+1 time-point columns,
//     errs.ErrColumnNotFound for a missing entity column, or
//     errs.ErrDuplicateColumn when an output column already exists)
//
// Example:
//
//	res, err := trend.FitRows(heatmap, 11, trend.WithEntityColumn("IDEHR"))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res) // Result{Rows: 2000, Fitted: 1412, Undefined: 588}
func FitRows(heatmap dataframe.DataFrame, n int, opts ...Option) (*Result, error) {
	cfg := defaultFitConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	if n < 2 {
		return nil, errs.Invalid(errs.ErrInsufficientPoints, "n = %d: a degree-2 fit needs n >= 2", n)
	}

	timeCols, err := timePointColumns(heatmap, cfg.EntityColumn)
	if err != nil {
		return nil, err
	}
	if len(timeCols) > n+1 {
		return nil, errs.Invalid(errs.ErrRowWidth, "%d time-point columns for n = %d (max %d)", len(timeCols), n, n+1)
	}

	cols := make([]series.Series, len(timeCols))
	for j, name := range timeCols {
		cols[j] = heatmap.Col(name)
	}

	x := make([]float64, n+1)
	for i := range x {
		x[i] = float64(i)
	}

	nrow := heatmap.Nrow()
	rows := make([]RowFit, nrow)
	rowErrs := make([]error, nrow)

	fitRange := func(low, high int) {
		y, cleanup := pool.GetFloat64Slice(n + 1)
		defer cleanup()

		for i := low; i < high; i++ {
			if !completeRow(cols, i, n+1, y) {
				continue
			}
			rows[i], rowErrs[i] = fitRow(x, y, cfg.Precision)
		}
	}

	if cfg.Parallel && nrow > 1 {
		parallel.Range(0, nrow, 0, fitRange)
	} else {
		fitRange(0, nrow)
	}

	fitted := 0
	for i, rerr := range rowErrs {
		if rerr != nil {
			return nil, fmt.Errorf("row %d: %w", i, rerr)
		}
		if rows[i].Defined() {
			fitted++
		}
	}

	out := heatmap.CBind(dataframe.New(
		coefficientSeries(ColumnSlope, rows, func(r RowFit) Coefficient { return r.Slope }),
		coefficientSeries(ColumnQuadratic, rows, func(r RowFit) Coefficient { return r.Quadratic }),
		coefficientSeries(ColumnLinear, rows, func(r RowFit) Coefficient { return r.Linear }),
	))
	if out.Err != nil {
		return nil, fmt.Errorf("append fit columns: %w", out.Err)
	}

	cfg.Logger.Debug().
		Int("rows", nrow).
		Int("fitted", fitted).
		Int("undefined", nrow-fitted).
		Int("n", n).
		Bool("parallel", cfg.Parallel).
		Msg("fitted heatmap rows")

	return &Result{Table: out, Rows: rows, Fitted: fitted}, nil
}

// timePointColumns validates heatmap and returns its time-point column names.
func timePointColumns(heatmap dataframe.DataFrame, entity string) ([]string, error) {
	if entity != "" {
		if err := frame.RequireColumns(heatmap, entity); err != nil {
			return nil, err
		}
	} else if err := frame.RequireColumns(heatmap); err != nil {
		return nil, err
	}

	names := heatmap.Names()
	for _, out := range []string{ColumnSlope, ColumnQuadratic, ColumnLinear} {
		if slices.Contains(names, out) {
			return nil, errs.Invalid(errs.ErrDuplicateColumn, "heatmap already has a %q column", out)
		}
	}

	return slices.DeleteFunc(names, func(name string) bool { return name == entity }), nil
}

// completeRow copies row i into y and reports whether it holds want finite values.
func completeRow(cols []series.Series, i, want int, y []float64) bool {
	if len(cols) != want {
		return false
	}

	for j, col := range cols {
		v, ok := frame.FiniteFloat(col.Elem(i))
		if !ok {
			return false
		}
		y[j] = v
	}

	return true
}

// fitRow runs the two independent fits over one complete row.
func fitRow(x, y []float64, precision int32) (RowFit, error) {
	lin, err := PolyFit(x, y, 1)
	if err != nil {
		return RowFit{}, fmt.Errorf("degree-1 fit: %w", err)
	}
	r2lin := rSquared(x, y, lin)

	quad, err := PolyFit(x, y, 2)
	if err != nil {
		return RowFit{}, fmt.Errorf("degree-2 fit: %w", err)
	}
	r2quad := rSquared(x, y, quad)

	return RowFit{
		Slope:     NewCoefficient(roundHalfEven(lin[1], precision)),
		Quadratic: NewCoefficient(roundHalfEven(quad[2], precision)),
		Linear:    NewCoefficient(roundHalfEven(quad[1], precision)),
		RSquared1: r2lin,
		RSquared2: r2quad,
	}, nil
}

// coefficientSeries builds a float series from one coefficient of every row.
// Values go through their string form so that undefined entries load as NA.
func coefficientSeries(name string, rows []RowFit, pick func(RowFit) Coefficient) series.Series {
	vals := make([]string, len(rows))
	for i, r := range rows {
		if v, ok := pick(r).Float(); ok {
			vals[i] = strconv.FormatFloat(v, 'g', -1, 64)
		} else {
			vals[i] = frame.NA
		}
	}

	return series.New(vals, series.Float, name)
}

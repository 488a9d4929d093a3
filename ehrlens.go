// Package ehrlens provides helpers for exploratory analysis of a tabular
// clinical (EHR) dataset held in gota DataFrames.
//
// The helpers are small, independent and stateless:
//
//   - Column lookup: which source tables contain every one of a set of columns
//   - Observation histogram: how many observations each patient (IDEHR) has
//     for a column, drawn as a histogram
//   - Marker sizes: linear rescaling of values into scatter-plot marker sizes
//   - Row trends: degree-1 and degree-2 polynomial fits over the time buckets
//     of a heatmap table
//
// # Basic Usage
//
// Loading tables and finding the files that carry a set of columns:
//
//	import "github.com/arloliu/ehrlens"
//
//	ref, _ := ehrlens.LoadTable("cross_ref_cols_tabs.csv")
//	files, _ := ehrlens.FilesWithColumns([]string{"SYSTOLIC", "DIASTOLIC"}, ref)
//	fmt.Println(files) // [vitals_2019 vitals_2020]
//
// Fitting per-patient trends over twelve monthly buckets:
//
//	heatmap, _ := ehrlens.LoadTable("heatmap.csv.zst")
//	res, _ := ehrlens.FitHeatmapRows(heatmap, 11)
//	for i, row := range res.Rows {
//	    if !row.Defined() {
//	        continue // incomplete row
//	    }
//	    fmt.Println(i, row.Slope, row.Quadratic)
//	}
//
// # Package Structure
//
// This package provides top-level wrappers with the defaults most notebooks
// use. For fine-grained control use the lookup, histogram, markers, trend and
// dataset packages directly.
package ehrlens

import (
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/arloliu/ehrlens/dataset"
	"github.com/arloliu/ehrlens/histogram"
	"github.com/arloliu/ehrlens/internal/hash"
	"github.com/arloliu/ehrlens/lookup"
	"github.com/arloliu/ehrlens/markers"
	"github.com/arloliu/ehrlens/trend"
)

// IDColumn is the patient identifier column shared by observation and heatmap tables.
const IDColumn = histogram.DefaultIDColumn

// LoadTable loads a CSV table, decompressing .zst, .sz/.s2 and .lz4 files.
//
// The IDEHR column, when present, is always loaded as strings so identifiers
// with leading zeros survive.
//
// Example:
//
//	obs, err := ehrlens.LoadTable("observations.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
func LoadTable(path string, opts ...dataset.Option) (dataframe.DataFrame, error) {
	opts = append([]dataset.Option{
		dataset.WithTypes(map[string]series.Type{IDColumn: series.String}),
	}, opts...)

	return dataset.Load(path, opts...)
}

// FilesWithColumns returns the sorted names of reference-table files that
// contain every one of columns.
//
// See lookup.FilesWithColumns for the reference table layout and errors.
func FilesWithColumns(columns []string, ref dataframe.DataFrame) ([]string, error) {
	return lookup.FilesWithColumns(columns, ref)
}

// NewColumnIndex precomputes a reference table for repeated lookups.
//
// Example:
//
//	idx, err := ehrlens.NewColumnIndex(ref)
//	if err != nil {
//	    return err
//	}
//	vitals, _ := idx.Files("SYSTOLIC", "DIASTOLIC")
//	labs, _ := idx.Files("HBA1C")
func NewColumnIndex(ref dataframe.DataFrame) (*lookup.Index, error) {
	return lookup.NewIndex(ref)
}

// ObservationHistogram prints the number of unique IDEHRs with an observation
// in column to stdout and renders the per-IDEHR observation count histogram to w.
//
// Use histogram options to change the identifier column, the chart style or
// the report writer.
func ObservationHistogram(w io.Writer, table dataframe.DataFrame, column, label string, opts ...histogram.Option) (*histogram.Summary, error) {
	return histogram.RenderObservationHistogram(w, table, column, label, opts...)
}

// MarkerSizes rescales values onto the default [10, 1000] marker size range.
//
// Example:
//
//	sizes, _ := ehrlens.MarkerSizes([]float64{1, 2, 3})
//	// sizes == [10, 505, 1000]
func MarkerSizes(values []float64) ([]float64, error) {
	return markers.Scale(values)
}

// FitHeatmapRows fits every complete row of an IDEHR-keyed heatmap.
//
// The IDEHR column is carried through and excluded from the time points;
// the remaining columns must be the buckets 0..n in order. Extra options are
// applied after the defaults.
func FitHeatmapRows(heatmap dataframe.DataFrame, n int, opts ...trend.Option) (*trend.Result, error) {
	opts = append([]trend.Option{trend.WithEntityColumn(IDColumn)}, opts...)

	return trend.FitRows(heatmap, n, opts...)
}

// ColumnID returns the 64-bit xxHash identifier lookup indexes use for a
// column name.
func ColumnID(name string) uint64 {
	return hash.ID(name)
}

package trend

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
)

// Names of the columns FitRows appends, in order.
const (
	ColumnSlope     = "deg1_m"
	ColumnQuadratic = "deg2_x2"
	ColumnLinear    = "deg2_x1"
)

// RowFit holds the fitted coefficients of one heatmap row.
//
// Fields:
//   - Slope: m of the degree-1 fit y = m·x + b (deg1_m)
//   - Quadratic: a of the degree-2 fit y = a·x² + b·x + c (deg2_x2)
//   - Linear: b of the same degree-2 fit (deg2_x1)
//   - RSquared1, RSquared2: goodness of fit of each model, 0 when undefined
//
// Either all three coefficients are defined or none is.
type RowFit struct {
	Slope     Coefficient
	Quadratic Coefficient
	Linear    Coefficient
	RSquared1 float64
	RSquared2 float64
}

// Defined reports whether the row was fitted.
func (r RowFit) Defined() bool {
	return r.Slope.Defined()
}

// String returns a string representation of the row fit.
func (r RowFit) String() string {
	if !r.Defined() {
		return "RowFit{undefined}"
	}

	return fmt.Sprintf("RowFit{%s: %s, %s: %s, %s: %s, R²: %.4f/%.4f}",
		ColumnSlope, r.Slope, ColumnQuadratic, r.Quadratic, ColumnLinear, r.Linear,
		r.RSquared1, r.RSquared2)
}

// Result represents the outcome of FitRows.
//
// Fields:
//   - Table: The input heatmap with deg1_m, deg2_x2 and deg2_x1 appended
//   - Rows: Tagged per-row coefficients, aligned with Table's rows
//   - Fitted: Number of rows with defined coefficients
type Result struct {
	Table  dataframe.DataFrame
	Rows   []RowFit
	Fitted int
}

// Undefined returns the number of rows that could not be fitted.
func (r *Result) Undefined() int {
	return len(r.Rows) - r.Fitted
}

// String returns a string representation of the result.
func (r *Result) String() string {
	return fmt.Sprintf("Result{Rows: %d, Fitted: %d, Undefined: %d}", len(r.Rows), r.Fitted, r.Undefined())
}

// Package trend summarizes per-entity trends in a heatmap table by fitting
// low-degree polynomials to each row.
//
// A heatmap table has one row per entity (typically a patient, keyed by IDEHR)
// and n+1 columns holding a measurement in consecutive time buckets 0..n.
// FitRows fits two independent least-squares polynomials to every complete
// row and appends the leading coefficients as new columns:
//
//   - deg1_m:  slope m of y = m·x + b
//   - deg2_x2: quadratic term a of y = a·x² + b·x + c
//   - deg2_x1: linear term b of the same quadratic fit
//
// Each coefficient is rounded to two decimal places.
//
// # Complete and incomplete rows
//
// A row is fitted only when all n+1 time points hold a finite value. Any
// missing (NA, NaN or ±Inf) point makes all three coefficients Undefined for
// that row; other rows are unaffected. Undefined is an explicit state of the
// Coefficient type, not a NaN, so callers can branch on it:
//
//	res, err := trend.FitRows(heatmap, 11)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for i, row := range res.Rows {
//	    if !row.Slope.Defined() {
//	        continue // incomplete history
//	    }
//	    fmt.Printf("row %d: slope %s\n", i, row.Slope)
//	}
//
// In the returned table the undefined coefficients are stored as gota NA so
// the appended columns stay numeric.
//
// # Usage Patterns
//
// ## Carrying an identifier column
//
// Heatmaps exported from a notebook usually keep the entity identifier as a
// column. Name it with WithEntityColumn so it is carried through unchanged and
// excluded from the time points:
//
//	res, err := trend.FitRows(heatmap, 11, trend.WithEntityColumn("IDEHR"))
//
// ## Large tables
//
// Rows are independent, so WithParallel(true) spreads them over all CPUs. The
// output is identical to the sequential result.
//
// # Fitting Methodology
//
//  1. Build the Vandermonde matrix of x = 0, 1, …, n for the requested degree
//  2. Solve the least-squares system with a QR factorization (gonum/mat)
//  3. Compute R² of the fitted curve against the row
//  4. Round the reported coefficients half-to-even at the configured precision
//
// PolyFit exposes step 2 directly for callers fitting their own series.
package trend

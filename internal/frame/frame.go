// Package frame holds small helpers over gota DataFrames shared by the
// analysis packages.
package frame

import (
	"fmt"
	"math"
	"slices"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/arloliu/ehrlens/errs"
)

// IsMissing reports whether a cell counts as missing.
//
// gota marks parse failures and "NaN" literals as NA; a float element built
// directly from a NaN value is treated the same way.
func IsMissing(e series.Element) bool {
	if e.IsNA() {
		return true
	}

	return e.Type() == series.Float && math.IsNaN(e.Float())
}

// FiniteFloat returns the cell as float64 and whether it is a usable number.
// Missing, non-numeric and infinite cells are not usable.
func FiniteFloat(e series.Element) (float64, bool) {
	if IsMissing(e) {
		return 0, false
	}

	v := e.Float()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	return v, true
}

// RequireColumns checks that df loaded cleanly and contains every named column.
func RequireColumns(df dataframe.DataFrame, columns ...string) error {
	if df.Err != nil {
		return fmt.Errorf("%w: %w", errs.ErrInvalidInput, df.Err)
	}

	names := df.Names()
	for _, c := range columns {
		if !slices.Contains(names, c) {
			return errs.Invalid(errs.ErrColumnNotFound, "column %q", c)
		}
	}

	return nil
}

// NA is the literal gota parses as a missing element of any type.
const NA = "NaN"

package trend

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/arloliu/ehrlens/errs"
)

// PolyFit fits y ≈ c[0] + c[1]·x + … + c[degree]·x^degree by least squares.
//
// The system is solved through a QR factorization of the Vandermonde matrix,
// which is numerically stable for the small, evenly spaced x ranges of heatmap
// rows.
//
// Parameters:
//   - x: Independent variable
//   - y: Observed values, same length as x
//   - degree: Polynomial degree (0 or more)
//
// Returns:
//   - []float64: Coefficients, lowest power first (the reverse of numpy.polyfit)
//   - error: errs.ErrInvalidInput for mismatched lengths or a negative degree,
//     errs.ErrInsufficientPoints when len(x) <= degree, or the solver error
//     for a rank-deficient system
//
// Example:
//
//	c, err := trend.PolyFit([]float64{0, 1, 2}, []float64{3, 5, 7}, 1)
//	// c ≈ [3, 2]
func PolyFit(x, y []float64, degree int) ([]float64, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: mismatched data lengths: %d x vs %d y", errs.ErrInvalidInput, len(x), len(y))
	}
	if degree < 0 {
		return nil, fmt.Errorf("%w: negative degree %d", errs.ErrInvalidInput, degree)
	}
	if len(x) <= degree {
		return nil, errs.Invalid(errs.ErrInsufficientPoints, "degree %d needs %d points, got %d", degree, degree+1, len(x))
	}

	a := vandermonde(x, degree)
	b := mat.NewDense(len(y), 1, y)
	c := mat.NewDense(degree+1, 1, nil)

	var qr mat.QR
	qr.Factorize(a)
	if err := qr.SolveTo(c, false, b); err != nil {
		return nil, fmt.Errorf("least squares solve failed: %w", err)
	}

	return mat.Col(nil, 0, c), nil
}

// vandermonde returns the len(x)×(degree+1) matrix with rows [1, x, x², …].
func vandermonde(x []float64, degree int) *mat.Dense {
	v := mat.NewDense(len(x), degree+1, nil)
	for i, xi := range x {
		p := 1.0
		for j := 0; j <= degree; j++ {
			v.Set(i, j, p)
			p *= xi
		}
	}

	return v
}

// evaluate computes the polynomial with coefficients c (lowest power first) at x.
func evaluate(c []float64, x float64) float64 {
	y := 0.0
	for i := len(c) - 1; i >= 0; i-- {
		y = y*x + c[i]
	}

	return y
}

// rSquared calculates the coefficient of determination of the fit c over (x, y).
//
// Formula: R² = 1 - (SS_res / SS_tot)
//   - SS_res: Sum of squares of residuals (observed - predicted)²
//   - SS_tot: Total sum of squares (observed - mean)²
//
// A constant row has SS_tot = 0; it scores 1 when the fit is exact and 0
// otherwise.
func rSquared(x, y, c []float64) float64 {
	if len(y) == 0 {
		return 0
	}

	mean := 0.0
	for _, v := range y {
		mean += v
	}
	mean /= float64(len(y))

	ssTot, ssRes := 0.0, 0.0
	for i := range y {
		d := y[i] - mean
		ssTot += d * d
		r := y[i] - evaluate(c, x[i])
		ssRes += r * r
	}

	if ssTot == 0 {
		if ssRes <= 1e-18 {
			return 1
		}

		return 0
	}

	return math.Max(0, 1-ssRes/ssTot)
}

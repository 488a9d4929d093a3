package trend

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Coefficient is a fitted polynomial coefficient or the Undefined marker.
//
// The zero value is Undefined.
type Coefficient struct {
	value   float64
	defined bool
}

// Undefined marks a coefficient that could not be computed because its row
// was incomplete.
var Undefined = Coefficient{}

// undefinedText is how an undefined coefficient prints.
const undefinedText = "undefined"

// NewCoefficient returns a defined Coefficient holding v.
func NewCoefficient(v float64) Coefficient {
	return Coefficient{value: v, defined: true}
}

// Defined reports whether the coefficient holds a computed value.
func (c Coefficient) Defined() bool {
	return c.defined
}

// Float returns the value and whether it is defined.
func (c Coefficient) Float() (float64, bool) {
	return c.value, c.defined
}

// String formats a defined value with the shortest exact representation and
// an undefined one as "undefined".
func (c Coefficient) String() string {
	if !c.defined {
		return undefinedText
	}

	return strconv.FormatFloat(c.value, 'f', -1, 64)
}

// roundHalfEven rounds v to places decimal digits, ties to even.
// Non-finite values are returned unchanged.
func roundHalfEven(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}

	r, _ := decimal.NewFromFloat(v).RoundBank(places).Float64()
	if r == 0 {
		return 0 // drop negative zero
	}

	return r
}

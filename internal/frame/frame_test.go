package frame

import (
	"math"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/ehrlens/errs"
)

func TestIsMissing(t *testing.T) {
	s := series.New([]string{"1.5", NA, "abc"}, series.Float, "x")
	require.False(t, IsMissing(s.Elem(0)))
	require.True(t, IsMissing(s.Elem(1)))
	require.True(t, IsMissing(s.Elem(2)))

	f := series.New([]float64{2, math.NaN()}, series.Float, "f")
	require.False(t, IsMissing(f.Elem(0)))
	require.True(t, IsMissing(f.Elem(1)))

	str := series.New([]string{"P001", NA}, series.String, "id")
	require.False(t, IsMissing(str.Elem(0)))
	require.True(t, IsMissing(str.Elem(1)))
}

func TestFiniteFloat(t *testing.T) {
	s := series.New([]float64{3, math.Inf(1), math.NaN()}, series.Float, "x")

	v, ok := FiniteFloat(s.Elem(0))
	require.True(t, ok)
	require.Equal(t, 3.0, v)

	_, ok = FiniteFloat(s.Elem(1))
	require.False(t, ok)

	_, ok = FiniteFloat(s.Elem(2))
	require.False(t, ok)

	ints := series.New([]string{"4", NA}, series.Int, "i")
	v, ok = FiniteFloat(ints.Elem(0))
	require.True(t, ok)
	require.Equal(t, 4.0, v)
	_, ok = FiniteFloat(ints.Elem(1))
	require.False(t, ok)
}

func TestRequireColumns(t *testing.T) {
	df := dataframe.New(
		series.New([]string{"P1"}, series.String, "IDEHR"),
		series.New([]int{1}, series.Int, "AGE"),
	)

	require.NoError(t, RequireColumns(df, "IDEHR", "AGE"))

	err := RequireColumns(df, "IDEHR", "SEX")
	require.ErrorIs(t, err, errs.ErrColumnNotFound)
	require.ErrorIs(t, err, errs.ErrInvalidInput)

	err = RequireColumns(dataframe.DataFrame{Err: errs.ErrRowWidth}, "IDEHR")
	require.ErrorIs(t, err, errs.ErrInvalidInput)
	require.ErrorIs(t, err, errs.ErrRowWidth)
}

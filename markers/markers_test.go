package markers

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ehrlens/errs"
)

func TestScale(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		opts   []Option
		want   []float64
	}{
		{
			name:   "default range",
			values: []float64{0, 5, 10},
			want:   []float64{10, 505, 1000},
		},
		{
			name:   "order preserved for unsorted input",
			values: []float64{3, 1, 2},
			want:   []float64{1000, 10, 505},
		},
		{
			name:   "custom range",
			values: []float64{2, 4, 6, 10},
			opts:   []Option{WithRange(0, 8)},
			want:   []float64{0, 2, 4, 8},
		},
		{
			name:   "inverted range",
			values: []float64{0, 1},
			opts:   []Option{WithRange(100, 20)},
			want:   []float64{100, 20},
		},
		{
			name:   "negative values",
			values: []float64{-4, -2, 0},
			opts:   []Option{WithRange(1, 3)},
			want:   []float64{1, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Scale(tt.values, tt.opts...)
			require.NoError(t, err)
			require.InDeltaSlice(t, tt.want, got, 1e-9)
		})
	}
}

func TestScaleDoesNotMutateInput(t *testing.T) {
	in := []float64{5, 1, 9}
	orig := slices.Clone(in)

	_, err := Scale(in)
	require.NoError(t, err)
	require.Equal(t, orig, in)
}

func TestScaleDegenerate(t *testing.T) {
	_, err := Scale([]float64{5, 5, 5}, WithRange(10, 1000))
	require.ErrorIs(t, err, errs.ErrDegenerateInput)

	_, err = Scale([]float64{7})
	require.ErrorIs(t, err, errs.ErrDegenerateInput)
}

func TestScaleInvalid(t *testing.T) {
	_, err := Scale(nil)
	require.ErrorIs(t, err, errs.ErrInvalidInput)

	_, err = Scale([]float64{1, 2}, WithRange(math.NaN(), 5))
	require.ErrorIs(t, err, errs.ErrInvalidInput)

	_, err = Scale([]float64{1, 2}, WithRange(0, math.Inf(1)))
	require.ErrorIs(t, err, errs.ErrInvalidInput)
}

// Boundary exactness and monotonicity over random inputs.
func TestScaleProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 200; trial++ {
		n := 2 + rng.Intn(50)
		values := make([]float64, n)
		for i := range values {
			values[i] = rng.NormFloat64() * 1e3
		}
		if slices.Min(values) == slices.Max(values) {
			continue
		}

		out, err := Scale(values)
		require.NoError(t, err)
		require.Len(t, out, n)
		require.Equal(t, DefaultMinSize, slices.Min(out))
		require.Equal(t, DefaultMaxSize, slices.Max(out))

		for i := range values {
			for j := range values {
				if values[i] < values[j] {
					require.LessOrEqual(t, out[i], out[j])
				}
			}
		}
	}
}

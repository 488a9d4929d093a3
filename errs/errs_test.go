package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvalid(t *testing.T) {
	err := Invalid(ErrColumnNotFound, "column %q", "AGE")

	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, ErrColumnNotFound)
	require.NotErrorIs(t, err, ErrEmptyColumns)
	require.Equal(t, `invalid input: column not found: column "AGE"`, err.Error())
}

func TestDegenerateIsNotInvalidInput(t *testing.T) {
	require.False(t, errors.Is(ErrDegenerateInput, ErrInvalidInput))
}

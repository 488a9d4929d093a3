package collision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ehrlens/errs"
	"github.com/arloliu/ehrlens/internal/hash"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker(4)

	require.NotNil(t, tracker)
	require.False(t, tracker.HasCollision())
}

func TestTracker_Track(t *testing.T) {
	tracker := NewTracker(2)

	require.NoError(t, tracker.Track("AGE", hash.ID("AGE")))
	require.NoError(t, tracker.Track("SEX", hash.ID("SEX")))

	require.False(t, tracker.HasCollision())
}

func TestTracker_Duplicate(t *testing.T) {
	tracker := NewTracker(2)

	require.NoError(t, tracker.Track("AGE", 42))
	err := tracker.Track("AGE", 42)

	require.ErrorIs(t, err, errs.ErrDuplicateColumn)
	require.ErrorIs(t, err, errs.ErrInvalidInput)
	require.False(t, tracker.HasCollision())
}

func TestTracker_Collision(t *testing.T) {
	tracker := NewTracker(3)

	require.NoError(t, tracker.Track("AGE", 42))
	require.NoError(t, tracker.Track("SEX", 42))
	require.True(t, tracker.HasCollision())

	// A duplicate of the colliding name is still caught.
	err := tracker.Track("SEX", 42)
	require.ErrorIs(t, err, errs.ErrDuplicateColumn)
}

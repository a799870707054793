package rating_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dukastore/internal/domain"
	"dukastore/internal/rating"
)

func TestAverage(t *testing.T) {
	require.Equal(t, 0.0, rating.Average(nil))
	require.Equal(t, 0.0, rating.Average([]domain.Review{}))

	reviews := []domain.Review{
		{Rating: 5}, {Rating: 4}, {Rating: 2},
	}
	require.InDelta(t, 11.0/3.0, rating.Average(reviews), 1e-9)
}

func TestStars(t *testing.T) {
	require.Equal(t, "No ratings", rating.Stars(0))
	require.Equal(t, "★★★", rating.Stars(3))
	// Half rounds away from zero.
	require.Equal(t, "★★★★", rating.Stars(3.5))
	require.Equal(t, "★★★", rating.Stars(3.4))
	require.Equal(t, "★★★★★", rating.Stars(4.6))
}

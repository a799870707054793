package rating

import (
	"math"
	"strings"

	"dukastore/internal/domain"
)

// Average returns the arithmetic mean of the review ratings, 0 when there
// are none.
func Average(reviews []domain.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}

// Stars renders a rating as filled stars. The count is math.Round of the
// rating (half rounds away from zero); a zero rating yields "No ratings".
func Stars(rating float64) string {
	if rating == 0 {
		return "No ratings"
	}
	return strings.Repeat("★", int(math.Round(rating)))
}

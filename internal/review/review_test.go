package review_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/review"
)

func TestFromRating_DerivationTable(t *testing.T) {
	cases := []struct {
		rating        int
		experience    string
		delivery      string
		communication string
		recommend     string
	}{
		{1, "Poor", "Flexible", "Good", "Maybe"},
		{2, "Fair", "Flexible", "Good", "Maybe"},
		{3, "Good", "Flexible", "Good", "Yes"},
		{4, "Very Good", "On Time", "Excellent", "Yes"},
		{5, "Excellent", "On Time", "Excellent", "Yes"},
	}

	for _, tc := range cases {
		f, err := review.FromRating(tc.rating, "Landing Page", "")
		require.NoError(t, err)

		assert.Equal(t, tc.experience, f.OverallExperience, "rating %d", tc.rating)
		assert.Equal(t, tc.delivery, f.Delivery, "rating %d", tc.rating)
		assert.Equal(t, tc.communication, f.Communication, "rating %d", tc.rating)
		assert.Equal(t, tc.recommend, f.WouldRecommend, "rating %d", tc.rating)
		assert.Equal(t, "Landing Page", f.ProjectType)
		assert.True(t, f.Complete())
	}
}

func TestFromRating_OutOfRange(t *testing.T) {
	for _, rating := range []int{0, -1, 6} {
		_, err := review.FromRating(rating, "Landing Page", "")
		assert.ErrorIs(t, err, review.ErrInvalidRating)
	}
}

func TestFields_Complete(t *testing.T) {
	full := review.FromSelections("Good", "AI Automation", "On Time", "Good", "", "Yes")
	assert.True(t, full.Complete(), "comment is optional")

	missing := []review.Fields{
		review.FromSelections("", "AI Automation", "On Time", "Good", "c", "Yes"),
		review.FromSelections("Good", "", "On Time", "Good", "c", "Yes"),
		review.FromSelections("Good", "AI Automation", "", "Good", "c", "Yes"),
		review.FromSelections("Good", "AI Automation", "On Time", "", "c", "Yes"),
		review.FromSelections("Good", "AI Automation", "On Time", "Good", "c", ""),
	}
	for i, f := range missing {
		assert.False(t, f.Complete(), "case %d", i)
	}
}

func TestSubmission_Row(t *testing.T) {
	f, err := review.FromRating(5, "Landing Page", "  ")
	require.NoError(t, err)

	row := review.Submission{
		ClientName:      " Jane Doe ",
		ClientEmail:     "",
		Rating:          5,
		Fields:          f,
		GeneratedReview: "Great work.",
	}.Row(models.ReviewStatusPending)

	assert.Equal(t, "Jane Doe", row.ClientName)
	assert.Nil(t, row.ClientEmail)
	assert.Nil(t, row.OptionalComment)
	require.NotNil(t, row.Rating)
	assert.Equal(t, 5, *row.Rating)
	assert.Equal(t, "Excellent", row.OverallExperience)
	assert.Equal(t, "Yes", row.WouldRecommend)
	assert.Equal(t, "Great work.", row.GeneratedReview)
	assert.Equal(t, models.ReviewStatusPending, row.Status)
}

func TestStars(t *testing.T) {
	three := 3
	assert.Equal(t, 3, review.Stars(models.Review{Rating: &three, OverallExperience: "Excellent"}))

	assert.Equal(t, 5, review.Stars(models.Review{OverallExperience: "Excellent"}))
	assert.Equal(t, 4, review.Stars(models.Review{OverallExperience: "Good"}))
	assert.Equal(t, 3, review.Stars(models.Review{OverallExperience: "Average"}))
	assert.Equal(t, 2, review.Stars(models.Review{OverallExperience: "Poor"}))
	assert.Equal(t, 2, review.Stars(models.Review{OverallExperience: "Very Good"}))
}

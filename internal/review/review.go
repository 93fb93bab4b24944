// Package review holds the canonical construction of a review: the fields
// sent to the generation gateway and the row that gets persisted. Both the
// star-rating form and the explicit-selection widget build through here.
package review

import (
	"errors"
	"strings"

	"portfolio-backend/internal/models"
)

const (
	MinRating = 1
	MaxRating = 5
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// Option sets offered by the explicit-selection widget.
var (
	ExperienceOptions    = []string{"Excellent", "Good", "Average", "Poor"}
	ProjectTypeOptions   = []string{"Website Development", "AI Automation", "Portfolio Site", "E-commerce", "Landing Page", "Other"}
	DeliveryOptions      = []string{"Very Fast", "On Time", "Delayed", "Flexible"}
	CommunicationOptions = []string{"Excellent", "Good", "Average", "Poor"}
	RecommendOptions     = []string{"Yes", "Maybe", "No"}
)

// Fields is the gateway payload. The JSON keys are the wire contract of the
// generate-review endpoint.
type Fields struct {
	OverallExperience string `json:"overallExperience"`
	ProjectType       string `json:"projectType"`
	Delivery          string `json:"delivery"`
	Communication     string `json:"communication"`
	OptionalComment   string `json:"optionalComment,omitempty"`
	WouldRecommend    string `json:"wouldRecommend"`
}

// Complete reports whether all five required fields are present.
func (f Fields) Complete() bool {
	return f.OverallExperience != "" &&
		f.ProjectType != "" &&
		f.Delivery != "" &&
		f.Communication != "" &&
		f.WouldRecommend != ""
}

var ratingLabels = map[int]string{
	1: "Poor",
	2: "Fair",
	3: "Good",
	4: "Very Good",
	5: "Excellent",
}

// RatingLabel maps a star rating to its experience label, or "" when the
// rating is out of range.
func RatingLabel(rating int) string {
	return ratingLabels[rating]
}

// FromRating derives the four categorical fields from a 1-5 star rating.
func FromRating(rating int, projectType, comment string) (Fields, error) {
	if rating < MinRating || rating > MaxRating {
		return Fields{}, ErrInvalidRating
	}

	f := Fields{
		OverallExperience: RatingLabel(rating),
		ProjectType:       projectType,
		Delivery:          "Flexible",
		Communication:     "Good",
		OptionalComment:   comment,
		WouldRecommend:    "Maybe",
	}
	if rating >= 4 {
		f.Delivery = "On Time"
		f.Communication = "Excellent"
	}
	if rating >= 3 {
		f.WouldRecommend = "Yes"
	}
	return f, nil
}

// FromSelections takes explicit values for every field.
func FromSelections(experience, projectType, delivery, communication, comment, recommend string) Fields {
	return Fields{
		OverallExperience: experience,
		ProjectType:       projectType,
		Delivery:          delivery,
		Communication:     communication,
		OptionalComment:   comment,
		WouldRecommend:    recommend,
	}
}

// Submission is everything a visitor provides when publishing.
type Submission struct {
	ClientName      string
	ClientEmail     string
	Rating          int
	Fields          Fields
	GeneratedReview string
}

// Row builds the insert for a submission. Blank email and comment become
// NULL; a zero rating is stored as NULL.
func (s Submission) Row(status string) models.NewReview {
	row := models.NewReview{
		ClientName:        strings.TrimSpace(s.ClientName),
		ClientEmail:       nullable(s.ClientEmail),
		OverallExperience: s.Fields.OverallExperience,
		ProjectType:       s.Fields.ProjectType,
		Delivery:          s.Fields.Delivery,
		Communication:     s.Fields.Communication,
		OptionalComment:   nullable(s.Fields.OptionalComment),
		WouldRecommend:    s.Fields.WouldRecommend,
		GeneratedReview:   s.GeneratedReview,
		Status:            status,
	}
	if s.Rating != 0 {
		rating := s.Rating
		row.Rating = &rating
	}
	return row
}

// Stars is the number of filled stars shown for a review: the stored rating
// when there is one, otherwise a mapping of the experience label.
func Stars(r models.Review) int {
	if r.Rating != nil && *r.Rating >= MinRating && *r.Rating <= MaxRating {
		return *r.Rating
	}
	switch r.OverallExperience {
	case "Excellent":
		return 5
	case "Good":
		return 4
	case "Average":
		return 3
	default:
		return 2
	}
}

func nullable(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

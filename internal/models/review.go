package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
)

// Review is a row of the reviews table. Column names double as JSON keys so
// the same struct decodes PostgREST payloads.
type Review struct {
	ID                uuid.UUID  `json:"id"`
	ClientName        string     `json:"client_name"`
	ClientEmail       *string    `json:"client_email"`
	OverallExperience string     `json:"overall_experience"`
	ProjectType       string     `json:"project_type"`
	Delivery          string     `json:"delivery"`
	Communication     string     `json:"communication"`
	OptionalComment   *string    `json:"optional_comment"`
	WouldRecommend    string     `json:"would_recommend"`
	GeneratedReview   string     `json:"generated_review"`
	Rating            *int       `json:"rating"`
	Status            string     `json:"status"`
	CreatedAt         time.Time  `json:"created_at"`
	ApprovedAt        *time.Time `json:"approved_at"`
}

// NewReview is the insert shape; the store assigns id and created_at.
type NewReview struct {
	ClientName        string     `json:"client_name"`
	ClientEmail       *string    `json:"client_email"`
	OverallExperience string     `json:"overall_experience"`
	ProjectType       string     `json:"project_type"`
	Delivery          string     `json:"delivery"`
	Communication     string     `json:"communication"`
	OptionalComment   *string    `json:"optional_comment"`
	WouldRecommend    string     `json:"would_recommend"`
	GeneratedReview   string     `json:"generated_review"`
	Rating            *int       `json:"rating"`
	Status            string     `json:"status"`
	ApprovedAt        *time.Time `json:"approved_at"`
}

func IsValidReviewStatus(status string) bool {
	return status == ReviewStatusPending || status == ReviewStatusApproved
}

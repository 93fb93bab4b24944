package models

// DraftReviewRequest is the star-rating form sent before publishing.
type DraftReviewRequest struct {
	ClientName      string `json:"clientName" example:"Jane Doe"`
	ProjectType     string `json:"projectType" example:"Landing Page"`
	Rating          int    `json:"rating" example:"5"`
	OptionalComment string `json:"optionalComment,omitempty"`
}

// PublishReviewRequest carries the form again plus the text produced by a
// previous draft call. The categorical fields are re-derived from Rating.
type PublishReviewRequest struct {
	ClientName      string `json:"clientName" example:"Jane Doe"`
	ClientEmail     string `json:"clientEmail,omitempty" example:"jane@example.com"`
	ProjectType     string `json:"projectType" example:"Landing Page"`
	Rating          int    `json:"rating" example:"5"`
	OptionalComment string `json:"optionalComment,omitempty"`
	GeneratedReview string `json:"generatedReview"`
}

// UpdateOrderStatusRequest sets an order's status. Version, when present,
// must match the stored version or the write is rejected.
type UpdateOrderStatusRequest struct {
	Status  string `json:"status" example:"in-progress"`
	Version *int64 `json:"version,omitempty"`
}

type UpdateOrderNotesRequest struct {
	Notes   string `json:"notes"`
	Version *int64 `json:"version,omitempty"`
}

type ModerateReviewRequest struct {
	Status string `json:"status" example:"approved"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

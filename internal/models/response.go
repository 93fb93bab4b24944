package models

import "time"

type GenerateReviewResponse struct {
	Review string `json:"review"`
}

// DraftReviewResponse returns the generated text together with the fields
// that were derived from the rating and sent to the model.
type DraftReviewResponse struct {
	Review            string `json:"review"`
	OverallExperience string `json:"overallExperience"`
	Delivery          string `json:"delivery"`
	Communication     string `json:"communication"`
	WouldRecommend    string `json:"wouldRecommend"`
}

type Testimonial struct {
	ID          string    `json:"id"`
	ClientName  string    `json:"clientName"`
	ProjectType string    `json:"projectType"`
	Review      string    `json:"review"`
	Stars       int       `json:"stars"`
	CreatedAt   time.Time `json:"createdAt"`
}

type TestimonialsResponse struct {
	Testimonials []Testimonial `json:"testimonials"`
}

type OrdersResponse struct {
	Orders []Order `json:"orders"`
}

type ReviewsResponse struct {
	Reviews []Review `json:"reviews"`
}

type DashboardStats struct {
	TotalOrders      int `json:"totalOrders"`
	PendingOrders    int `json:"pendingOrders"`
	InProgressOrders int `json:"inProgressOrders"`
	CompletedOrders  int `json:"completedOrders"`
	TotalReviews     int `json:"totalReviews"`
}

// DashboardResponse holds both lists. Each list loads independently, so one
// may carry an error while the other is populated.
type DashboardResponse struct {
	Orders       []Order        `json:"orders"`
	Reviews      []Review       `json:"reviews"`
	OrdersError  string         `json:"ordersError,omitempty"`
	ReviewsError string         `json:"reviewsError,omitempty"`
	Stats        DashboardStats `json:"stats"`
}

type SessionResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int    `json:"expiresIn"`
	ExpiresAt    int64  `json:"expiresAt"`
	UserID       string `json:"userId"`
	Email        string `json:"email"`
}

type SessionInfoResponse struct {
	UserID string `json:"userId"`
	Email  string `json:"email,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// StatsFor computes the dashboard counters from the loaded sets.
func StatsFor(orders []Order, reviews []Review) DashboardStats {
	stats := DashboardStats{
		TotalOrders:  len(orders),
		TotalReviews: len(reviews),
	}
	for _, o := range orders {
		switch o.Status {
		case OrderStatusPending:
			stats.PendingOrders++
		case OrderStatusInProgress:
			stats.InProgressOrders++
		case OrderStatusCompleted:
			stats.CompletedOrders++
		}
	}
	return stats
}

package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	OrderStatusPending     = "pending"
	OrderStatusInProgress  = "in-progress"
	OrderStatusPreviewSent = "preview-sent"
	OrderStatusCompleted   = "completed"
	OrderStatusCancelled   = "cancelled"
)

// OrderStatuses lists every accepted status in display order. Transitions
// between them are unconstrained.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusInProgress,
	OrderStatusPreviewSent,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

type Order struct {
	ID               uuid.UUID `json:"id"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email"`
	WhatsApp         string    `json:"whatsapp"`
	BusinessName     string    `json:"business_name"`
	Niche            string    `json:"niche"`
	WebsiteGoal      string    `json:"website_goal"`
	WebsiteGoalOther *string   `json:"website_goal_other"`
	KeyFeatures      *string   `json:"key_features"`
	SpecialRequests  *string   `json:"special_requests"`
	ReferenceStyle   *string   `json:"reference_style"`
	Status           string    `json:"status"`
	AdminNotes       *string   `json:"admin_notes"`
	Version          int64     `json:"version"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func IsValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

var websiteGoalLabels = map[string]string{
	"personal":  "Personal Website / Landing Page",
	"ecommerce": "Ecommerce / Online Store",
	"ai-tool":   "AI Automation Tool",
}

// GoalText is the human label for the order's website goal.
func (o Order) GoalText() string {
	if o.WebsiteGoal == "other" && o.WebsiteGoalOther != nil && *o.WebsiteGoalOther != "" {
		return *o.WebsiteGoalOther
	}
	if label, ok := websiteGoalLabels[o.WebsiteGoal]; ok {
		return label
	}
	return o.WebsiteGoal
}

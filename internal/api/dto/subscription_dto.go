package dto

import (
	"time"

	"github.com/spec-kit/saas-platform/internal/domain"
)

// SubscriptionUpdateRequest payload for plan changes.
type SubscriptionUpdateRequest struct {
	Plan    string  `json:"plan" validate:"required,oneof=FREE STARTER PROFESSIONAL ENTERPRISE"`
	Status  *string `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE CANCELLED TRIAL"`
	EndDate *string `json:"endDate" validate:"omitempty"`
}

// SubscriptionListRequest payload for the admin listing endpoint.
type SubscriptionListRequest struct {
	Page  int `json:"page" validate:"omitempty,min=1"`
	Limit int `json:"limit" validate:"omitempty,min=1,max=100"`
}

// SubscriptionResponse mirrors the subscription row.
type SubscriptionResponse struct {
	ID        string                    `json:"id"`
	UserID    string                    `json:"userId"`
	Plan      domain.SubscriptionPlan   `json:"plan"`
	Status    domain.SubscriptionStatus `json:"status"`
	StartDate time.Time                 `json:"startDate"`
	EndDate   *time.Time                `json:"endDate,omitempty"`
	CreatedAt time.Time                 `json:"createdAt"`
	UpdatedAt time.Time                 `json:"updatedAt"`
}

// SubscriptionOwnerResponse is the embedded owner summary on admin listings.
type SubscriptionOwnerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SubscriptionWithOwnerResponse is an admin listing row.
type SubscriptionWithOwnerResponse struct {
	SubscriptionResponse
	User SubscriptionOwnerResponse `json:"user"`
}

// NewSubscriptionResponse maps a domain subscription.
func NewSubscriptionResponse(sub *domain.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:        sub.ID,
		UserID:    sub.UserID,
		Plan:      sub.Plan,
		Status:    sub.Status,
		StartDate: sub.StartDate,
		EndDate:   sub.EndDate,
		CreatedAt: sub.CreatedAt,
		UpdatedAt: sub.UpdatedAt,
	}
}

// NewSubscriptionWithOwnerResponse maps an admin listing row.
func NewSubscriptionWithOwnerResponse(sub *domain.SubscriptionWithOwner) SubscriptionWithOwnerResponse {
	return SubscriptionWithOwnerResponse{
		SubscriptionResponse: NewSubscriptionResponse(&sub.Subscription),
		User: SubscriptionOwnerResponse{
			ID:    sub.User.ID,
			Name:  sub.User.Name,
			Email: sub.User.Email,
		},
	}
}

package dto

import (
	"time"

	"github.com/spec-kit/saas-platform/internal/domain"
	"github.com/spec-kit/saas-platform/internal/service"
)

// UserUpdateRequest payload for profile updates. All fields optional; role
// takes effect only for admin callers.
type UserUpdateRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Role     *string `json:"role" validate:"omitempty,oneof=USER ADMIN"`
}

// UserResponse is a profile without the password hash.
type UserResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Email        string                `json:"email"`
	Role         domain.Role           `json:"role"`
	Subscription *SubscriptionResponse `json:"subscription,omitempty"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

// NewUserResponse maps a profile, dropping the password hash.
func NewUserResponse(profile *service.UserProfile) UserResponse {
	resp := UserResponse{
		ID:        profile.User.ID,
		Name:      profile.User.Name,
		Email:     profile.User.Email,
		Role:      profile.User.Role,
		CreatedAt: profile.User.CreatedAt,
		UpdatedAt: profile.User.UpdatedAt,
	}
	if profile.Subscription != nil {
		sub := NewSubscriptionResponse(profile.Subscription)
		resp.Subscription = &sub
	}
	return resp
}

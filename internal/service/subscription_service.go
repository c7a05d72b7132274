package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/saas-platform/internal/auth"
	"github.com/spec-kit/saas-platform/internal/domain"
	"github.com/spec-kit/saas-platform/internal/repository"
	apperrors "github.com/spec-kit/saas-platform/pkg/util"
)

// SubscriptionService manages the one-to-one user subscription.
type SubscriptionService struct {
	subs repository.SubscriptionRepository
}

// SubscriptionUpdateInput carries plan changes. Nil fields are untouched.
type SubscriptionUpdateInput struct {
	Plan    domain.SubscriptionPlan
	Status  *domain.SubscriptionStatus
	EndDate *time.Time
}

// NewSubscriptionService builds the service.
func NewSubscriptionService(subs repository.SubscriptionRepository) *SubscriptionService {
	return &SubscriptionService{subs: subs}
}

// GetOwn returns the caller's subscription.
func (s *SubscriptionService) GetOwn(ctx context.Context, identity auth.Identity) (*domain.Subscription, error) {
	sub, err := s.subs.GetByUserID(ctx, identity.UserID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("Subscription")
		}
		return nil, err
	}
	return sub, nil
}

// Update changes the subscription for targetUserID. Non-admin callers may
// only target themselves; an empty target defaults to the caller.
func (s *SubscriptionService) Update(ctx context.Context, identity auth.Identity, targetUserID string, input SubscriptionUpdateInput) (*domain.Subscription, error) {
	if targetUserID == "" {
		targetUserID = identity.UserID
	}
	if !auth.CanTouchResource(identity, targetUserID) {
		return nil, apperrors.NewForbidden("Unauthorized to update this subscription")
	}

	sub, err := s.subs.GetByUserID(ctx, targetUserID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("Subscription")
		}
		return nil, err
	}

	sub.Plan = input.Plan
	if input.Status != nil {
		sub.Status = *input.Status
	}
	if input.EndDate != nil {
		sub.EndDate = input.EndDate
	}
	if err := s.subs.Update(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// List returns all subscriptions with owner summaries. Admin only.
func (s *SubscriptionService) List(ctx context.Context, identity auth.Identity, limit, offset int) ([]domain.SubscriptionWithOwner, int64, error) {
	if !auth.IsAdmin(identity) {
		return nil, 0, apperrors.NewForbidden("Unauthorized access")
	}

	subs, err := s.subs.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.subs.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return subs, total, nil
}

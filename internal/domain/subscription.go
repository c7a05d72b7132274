package domain

import "time"

// SubscriptionPlan enumerates billing tiers.
type SubscriptionPlan string

const (
	PlanFree         SubscriptionPlan = "FREE"
	PlanStarter      SubscriptionPlan = "STARTER"
	PlanProfessional SubscriptionPlan = "PROFESSIONAL"
	PlanEnterprise   SubscriptionPlan = "ENTERPRISE"
)

// SubscriptionStatus enumerates subscription lifecycle states.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "ACTIVE"
	SubscriptionInactive  SubscriptionStatus = "INACTIVE"
	SubscriptionCancelled SubscriptionStatus = "CANCELLED"
	SubscriptionTrial     SubscriptionStatus = "TRIAL"
)

// Subscription links one user to one billing plan. user_id carries a unique
// constraint so the relation stays one-to-one.
type Subscription struct {
	ID        string
	UserID    string
	Plan      SubscriptionPlan
	Status    SubscriptionStatus
	StartDate time.Time
	EndDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SubscriptionOwner is the embedded user summary on admin listings.
type SubscriptionOwner struct {
	ID    string
	Name  string
	Email string
}

// SubscriptionWithOwner pairs a subscription with its owning account.
type SubscriptionWithOwner struct {
	Subscription
	User SubscriptionOwner
}

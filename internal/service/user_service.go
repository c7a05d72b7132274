package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/saas-platform/internal/auth"
	"github.com/spec-kit/saas-platform/internal/domain"
	"github.com/spec-kit/saas-platform/internal/repository"
	apperrors "github.com/spec-kit/saas-platform/pkg/util"
)

// UserService manages account profiles.
type UserService struct {
	users      repository.UserRepository
	subs       repository.SubscriptionRepository
	bcryptCost int
}

// UserUpdateInput describes a profile update. Nil fields are untouched.
// Role is honored only for admin callers.
type UserUpdateInput struct {
	Name     *string
	Email    *string
	Password *string
	Role     *domain.Role
}

// UserProfile pairs a user with their subscription for API responses.
type UserProfile struct {
	User         domain.User
	Subscription *domain.Subscription
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, subs repository.SubscriptionRepository, bcryptCost int) *UserService {
	return &UserService{users: users, subs: subs, bcryptCost: bcryptCost}
}

// Get returns a profile. An empty targetID means the caller's own profile;
// other accounts require admin.
func (s *UserService) Get(ctx context.Context, identity auth.Identity, targetID string) (*UserProfile, error) {
	if targetID == "" {
		targetID = identity.UserID
	}
	if !auth.CanAccessUser(identity, targetID) {
		return nil, apperrors.NewForbidden("Unauthorized access")
	}

	user, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("User")
		}
		return nil, err
	}
	return s.profile(ctx, user)
}

// List returns paginated profiles. Admin only.
func (s *UserService) List(ctx context.Context, identity auth.Identity, limit, offset int) ([]UserProfile, int64, error) {
	if !auth.IsAdmin(identity) {
		return nil, 0, apperrors.NewForbidden("Unauthorized access")
	}

	users, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	profiles := make([]UserProfile, 0, len(users))
	for i := range users {
		profile, err := s.profile(ctx, &users[i])
		if err != nil {
			return nil, 0, err
		}
		profiles = append(profiles, *profile)
	}
	return profiles, total, nil
}

// Update modifies an account. Authorization runs before the existence check
// for accounts; the role field is stripped for non-admin callers and a
// changed email must stay unique.
func (s *UserService) Update(ctx context.Context, identity auth.Identity, targetID string, input UserUpdateInput) (*UserProfile, error) {
	if targetID == "" {
		targetID = identity.UserID
	}
	if !auth.CanAccessUser(identity, targetID) {
		return nil, apperrors.NewForbidden("Unauthorized access")
	}

	user, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("User")
		}
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil && *input.Email != user.Email {
		if _, err := s.users.GetByEmail(ctx, *input.Email); err == nil {
			return nil, apperrors.NewConflict("Email already in use")
		} else if err != pgx.ErrNoRows {
			return nil, err
		}
		user.Email = *input.Email
	}
	if input.Password != nil {
		hash, err := auth.HashPassword(*input.Password, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	user.Role = auth.SanitizeRoleUpdate(identity, user.Role, input.Role)

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return s.profile(ctx, user)
}

// Delete removes an account: self or admin. Related rows cascade in the
// database.
func (s *UserService) Delete(ctx context.Context, identity auth.Identity, targetID string) error {
	if !auth.CanAccessUser(identity, targetID) {
		return apperrors.NewForbidden("Unauthorized access")
	}

	if _, err := s.users.GetByID(ctx, targetID); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("User")
		}
		return err
	}
	return s.users.Delete(ctx, targetID)
}

func (s *UserService) profile(ctx context.Context, user *domain.User) (*UserProfile, error) {
	sub, err := s.subs.GetByUserID(ctx, user.ID)
	if err != nil {
		if err != pgx.ErrNoRows {
			return nil, err
		}
		sub = nil
	}
	return &UserProfile{User: *user, Subscription: sub}, nil
}

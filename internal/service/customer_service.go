package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/saas-platform/internal/auth"
	"github.com/spec-kit/saas-platform/internal/domain"
	"github.com/spec-kit/saas-platform/internal/repository"
	apperrors "github.com/spec-kit/saas-platform/pkg/util"
)

// CustomerService manages per-user customer records.
type CustomerService struct {
	customers repository.CustomerRepository
}

// CustomerInput carries create/update payloads.
type CustomerInput struct {
	Name    string
	Email   string
	Phone   *string
	Company *string
}

// NewCustomerService builds the service.
func NewCustomerService(customers repository.CustomerRepository) *CustomerService {
	return &CustomerService{customers: customers}
}

// ListOwn returns the caller's customers.
func (s *CustomerService) ListOwn(ctx context.Context, identity auth.Identity) ([]domain.Customer, error) {
	return s.customers.ListByUser(ctx, identity.UserID)
}

// Create adds a customer owned by the caller.
func (s *CustomerService) Create(ctx context.Context, identity auth.Identity, input CustomerInput) (*domain.Customer, error) {
	customer := &domain.Customer{
		UserID:  identity.UserID,
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Company: input.Company,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Update modifies a customer. Existence is checked before ownership, so a
// missing id yields 404 even for callers who would be denied.
func (s *CustomerService) Update(ctx context.Context, identity auth.Identity, id string, input CustomerInput) (*domain.Customer, error) {
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("Customer")
		}
		return nil, err
	}
	if !auth.CanTouchResource(identity, customer.UserID) {
		return nil, apperrors.NewForbidden("Unauthorized to update this customer")
	}

	customer.Name = input.Name
	customer.Email = input.Email
	customer.Phone = input.Phone
	customer.Company = input.Company
	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Delete removes a customer, owner or admin only.
func (s *CustomerService) Delete(ctx context.Context, identity auth.Identity, id string) error {
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("Customer")
		}
		return err
	}
	if !auth.CanTouchResource(identity, customer.UserID) {
		return apperrors.NewForbidden("Unauthorized to delete this customer")
	}
	return s.customers.Delete(ctx, id)
}

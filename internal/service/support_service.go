package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/saas-platform/internal/auth"
	"github.com/spec-kit/saas-platform/internal/domain"
	"github.com/spec-kit/saas-platform/internal/events"
	"github.com/spec-kit/saas-platform/internal/repository"
	apperrors "github.com/spec-kit/saas-platform/pkg/util"
)

// SupportService manages support tickets.
type SupportService struct {
	tickets    repository.SupportTicketRepository
	dispatcher events.Dispatcher
}

// TicketInput carries create/update payloads.
type TicketInput struct {
	Title       string
	Description string
	Status      domain.TicketStatus
}

// NewSupportService builds the service.
func NewSupportService(tickets repository.SupportTicketRepository, dispatcher events.Dispatcher) *SupportService {
	return &SupportService{tickets: tickets, dispatcher: dispatcher}
}

// Create files a ticket owned by the caller.
func (s *SupportService) Create(ctx context.Context, identity auth.Identity, input TicketInput) (*domain.SupportTicket, error) {
	ticket := &domain.SupportTicket{
		UserID:      identity.UserID,
		Title:       input.Title,
		Description: input.Description,
		Status:      domain.TicketStatusOpen,
	}
	if input.Status != "" {
		ticket.Status = input.Status
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventTicketCreated,
		UserID:    identity.UserID,
		Timestamp: time.Now(),
		Payload:   events.TicketCreatedPayload{TicketID: ticket.ID, Title: ticket.Title},
	})
	return ticket, nil
}

// Get returns a single ticket. Existence is checked before ownership.
func (s *SupportService) Get(ctx context.Context, identity auth.Identity, id string) (*domain.SupportTicket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("Ticket")
		}
		return nil, err
	}
	if !auth.CanTouchResource(identity, ticket.UserID) {
		return nil, apperrors.NewForbidden("Unauthorized to access this ticket")
	}
	return ticket, nil
}

// List returns tickets: admins see all, users only their own.
func (s *SupportService) List(ctx context.Context, identity auth.Identity, limit, offset int) ([]domain.SupportTicket, int64, error) {
	var owner *string
	if !auth.IsAdmin(identity) {
		owner = &identity.UserID
	}

	tickets, err := s.tickets.List(ctx, owner, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.tickets.Count(ctx, owner)
	if err != nil {
		return nil, 0, err
	}
	return tickets, total, nil
}

// Update modifies a ticket, owner or admin only.
func (s *SupportService) Update(ctx context.Context, identity auth.Identity, id string, input TicketInput) (*domain.SupportTicket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("Ticket")
		}
		return nil, err
	}
	if !auth.CanTouchResource(identity, ticket.UserID) {
		return nil, apperrors.NewForbidden("Unauthorized to update this ticket")
	}

	oldStatus := ticket.Status
	ticket.Title = input.Title
	ticket.Description = input.Description
	if input.Status != "" {
		ticket.Status = input.Status
	}
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}

	if ticket.Status != oldStatus {
		s.publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventTicketStatusChanged,
			UserID:    ticket.UserID,
			Timestamp: time.Now(),
			Payload: events.TicketStatusChangedPayload{
				TicketID:  ticket.ID,
				OldStatus: oldStatus,
				NewStatus: ticket.Status,
			},
		})
	}
	return ticket, nil
}

// Delete removes a ticket, owner or admin only.
func (s *SupportService) Delete(ctx context.Context, identity auth.Identity, id string) error {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("Ticket")
		}
		return err
	}
	if !auth.CanTouchResource(identity, ticket.UserID) {
		return apperrors.NewForbidden("Unauthorized to delete this ticket")
	}
	return s.tickets.Delete(ctx, id)
}

func (s *SupportService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/saas-platform/internal/api/dto"
	"github.com/spec-kit/saas-platform/internal/domain"
	"github.com/spec-kit/saas-platform/internal/service"
	apperrors "github.com/spec-kit/saas-platform/pkg/util"
)

// SupportHandler exposes support ticket endpoints.
type SupportHandler struct {
	support *service.SupportService
}

// NewSupportHandler constructs handler.
func NewSupportHandler(supportService *service.SupportService) *SupportHandler {
	return &SupportHandler{support: supportService}
}

// Get handles GET /api/support. With ?id= it returns one ticket; otherwise
// a paginated listing (admins see every ticket, users their own).
func (h *SupportHandler) Get(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	if id := c.Query("id"); id != "" {
		ticket, err := h.support.Get(c.UserContext(), identity, id)
		if err != nil {
			return err
		}
		return c.JSON(dto.NewTicketResponse(ticket))
	}

	page, limit, offset := parsePage(c)
	tickets, total, err := h.support.List(c.UserContext(), identity, limit, offset)
	if err != nil {
		return err
	}

	items := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		items = append(items, dto.NewTicketResponse(&tickets[i]))
	}
	return c.JSON(fiber.Map{
		"data":       items,
		"pagination": dto.NewPagination(total, page, limit),
	})
}

// Create handles POST /api/support.
func (h *SupportHandler) Create(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req dto.TicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	ticket, err := h.support.Create(c.UserContext(), identity, service.TicketInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TicketStatus(req.Status),
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewTicketResponse(ticket))
}

// Update handles PUT /api/support?id=.
func (h *SupportHandler) Update(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	id := c.Query("id")
	if id == "" {
		return apperrors.NewValidationError("Ticket ID is required", nil)
	}

	var req dto.TicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	ticket, err := h.support.Update(c.UserContext(), identity, id, service.TicketInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TicketStatus(req.Status),
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTicketResponse(ticket))
}

// Delete handles DELETE /api/support?id=.
func (h *SupportHandler) Delete(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	id := c.Query("id")
	if id == "" {
		return apperrors.NewValidationError("Ticket ID is required", nil)
	}

	if err := h.support.Delete(c.UserContext(), identity, id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Ticket deleted successfully"})
}

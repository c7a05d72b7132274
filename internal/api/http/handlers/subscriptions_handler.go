package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/saas-platform/internal/api/dto"
	"github.com/spec-kit/saas-platform/internal/domain"
	"github.com/spec-kit/saas-platform/internal/service"
	apperrors "github.com/spec-kit/saas-platform/pkg/util"
)

// SubscriptionsHandler exposes the one-to-one subscription endpoints.
type SubscriptionsHandler struct {
	subs *service.SubscriptionService
}

// NewSubscriptionsHandler constructs handler.
func NewSubscriptionsHandler(subscriptionService *service.SubscriptionService) *SubscriptionsHandler {
	return &SubscriptionsHandler{subs: subscriptionService}
}

// Get handles GET /api/subscriptions. Returns the caller's subscription.
func (h *SubscriptionsHandler) Get(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	sub, err := h.subs.GetOwn(c.UserContext(), identity)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSubscriptionResponse(sub))
}

// Update handles PUT /api/subscriptions. ?userId= lets admins target any
// account; for everyone else it must be absent or their own id.
func (h *SubscriptionsHandler) Update(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req dto.SubscriptionUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	input := service.SubscriptionUpdateInput{
		Plan: domain.SubscriptionPlan(req.Plan),
	}
	if req.Status != nil {
		status := domain.SubscriptionStatus(*req.Status)
		input.Status = &status
	}
	if req.EndDate != nil {
		endDate, err := time.Parse(time.RFC3339, *req.EndDate)
		if err != nil {
			return apperrors.NewValidationError("endDate must be RFC 3339", nil)
		}
		input.EndDate = &endDate
	}

	sub, err := h.subs.Update(c.UserContext(), identity, c.Query("userId"), input)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSubscriptionResponse(sub))
}

// List handles POST /api/subscriptions: the admin-only listing endpoint.
func (h *SubscriptionsHandler) List(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	req := dto.SubscriptionListRequest{Page: 1, Limit: 10}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return apperrors.NewValidationError("invalid payload", nil)
		}
		if err := dto.Validate(req); err != nil {
			return err
		}
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.Limit <= 0 {
		req.Limit = 10
	}

	subs, total, err := h.subs.List(c.UserContext(), identity, req.Limit, (req.Page-1)*req.Limit)
	if err != nil {
		return err
	}

	items := make([]dto.SubscriptionWithOwnerResponse, 0, len(subs))
	for i := range subs {
		items = append(items, dto.NewSubscriptionWithOwnerResponse(&subs[i]))
	}
	return c.JSON(fiber.Map{
		"data":       items,
		"pagination": dto.NewPagination(total, req.Page, req.Limit),
	})
}

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/saas-platform/internal/api/dto"
	"github.com/spec-kit/saas-platform/internal/service"
	apperrors "github.com/spec-kit/saas-platform/pkg/util"
)

// FAQsHandler exposes knowledge-base endpoints. Reads consult no identity;
// writes are admin-only.
type FAQsHandler struct {
	faqs *service.FAQService
}

// NewFAQsHandler constructs handler.
func NewFAQsHandler(faqService *service.FAQService) *FAQsHandler {
	return &FAQsHandler{faqs: faqService}
}

// Get handles GET /api/faqs. With ?id= it returns one entry; otherwise a
// paginated listing optionally filtered by ?category=.
func (h *FAQsHandler) Get(c *fiber.Ctx) error {
	if id := c.Query("id"); id != "" {
		faq, err := h.faqs.Get(c.UserContext(), id)
		if err != nil {
			return err
		}
		return c.JSON(dto.NewFAQResponse(faq))
	}

	var category *string
	if cat := c.Query("category"); cat != "" {
		category = &cat
	}

	page, limit, offset := parsePage(c)
	faqs, total, err := h.faqs.List(c.UserContext(), category, limit, offset)
	if err != nil {
		return err
	}

	items := make([]dto.FAQResponse, 0, len(faqs))
	for i := range faqs {
		items = append(items, dto.NewFAQResponse(&faqs[i]))
	}
	return c.JSON(fiber.Map{
		"data":       items,
		"pagination": dto.NewPagination(total, page, limit),
	})
}

// Create handles POST /api/faqs. Admin only.
func (h *FAQsHandler) Create(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req dto.FAQRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	faq, err := h.faqs.Create(c.UserContext(), identity, service.FAQInput{
		Question: req.Question,
		Answer:   req.Answer,
		Category: req.Category,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewFAQResponse(faq))
}

// Update handles PUT /api/faqs?id=. Admin only.
func (h *FAQsHandler) Update(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	id := c.Query("id")
	if id == "" {
		return apperrors.NewValidationError("FAQ ID is required", nil)
	}

	var req dto.FAQRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	faq, err := h.faqs.Update(c.UserContext(), identity, id, service.FAQInput{
		Question: req.Question,
		Answer:   req.Answer,
		Category: req.Category,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewFAQResponse(faq))
}

// Delete handles DELETE /api/faqs?id=. Admin only.
func (h *FAQsHandler) Delete(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	id := c.Query("id")
	if id == "" {
		return apperrors.NewValidationError("FAQ ID is required", nil)
	}

	if err := h.faqs.Delete(c.UserContext(), identity, id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "FAQ deleted successfully"})
}

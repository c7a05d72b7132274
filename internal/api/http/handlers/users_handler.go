package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/saas-platform/internal/api/dto"
	"github.com/spec-kit/saas-platform/internal/domain"
	"github.com/spec-kit/saas-platform/internal/service"
	apperrors "github.com/spec-kit/saas-platform/pkg/util"
)

// UsersHandler exposes profile endpoints. Targeting another account via
// ?id= requires admin.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{users: userService}
}

// Get handles GET /api/users. With ?id= it returns that account (self or
// admin); without it, admins get the paginated listing and everyone else
// their own profile.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	targetID := c.Query("id")
	if targetID == "" && identity.Role == domain.RoleAdmin {
		page, limit, offset := parsePage(c)
		profiles, total, err := h.users.List(c.UserContext(), identity, limit, offset)
		if err != nil {
			return err
		}
		items := make([]dto.UserResponse, 0, len(profiles))
		for i := range profiles {
			items = append(items, dto.NewUserResponse(&profiles[i]))
		}
		return c.JSON(fiber.Map{
			"data":       items,
			"pagination": dto.NewPagination(total, page, limit),
		})
	}

	profile, err := h.users.Get(c.UserContext(), identity, targetID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserResponse(profile))
}

// Update handles PUT /api/users. ?id= defaults to the caller.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	input := service.UserUpdateInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		input.Role = &role
	}

	profile, err := h.users.Update(c.UserContext(), identity, c.Query("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserResponse(profile))
}

// Delete handles DELETE /api/users. ?id= is required.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	targetID := c.Query("id")
	if targetID == "" {
		return apperrors.NewValidationError("User ID is required", nil)
	}

	if err := h.users.Delete(c.UserContext(), identity, targetID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}

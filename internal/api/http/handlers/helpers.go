package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/saas-platform/internal/auth"
	apperrors "github.com/spec-kit/saas-platform/pkg/util"
)

// requireIdentity fetches the gate-attached identity. Handlers behind the
// gate should never see this fail; it guards against a route wired outside
// the gated group by mistake.
func requireIdentity(c *fiber.Ctx) (auth.Identity, error) {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return auth.Identity{}, apperrors.NewUnauthorized("authentication required")
	}
	return identity, nil
}

func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

// parsePage reads ?page and ?limit with the API's defaults.
func parsePage(c *fiber.Ctx) (page, limit, offset int) {
	page = parseInt(c.Query("page"), 1)
	limit = parseInt(c.Query("limit"), 10)
	offset = (page - 1) * limit
	return page, limit, offset
}

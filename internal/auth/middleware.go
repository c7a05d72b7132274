package auth

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/saas-platform/internal/domain"
)

const identityKey = "auth_identity"

// Identity is the trusted per-request identity attached by the gate after a
// token verifies. Handlers must read identity from here and never from
// client-supplied headers.
type Identity struct {
	UserID string
	Email  string
	Role   domain.Role
}

// AuthMiddleware is the single choke point in front of protected routes.
type AuthMiddleware struct {
	tokens *TokenManager
	exempt []string
}

// NewAuthMiddleware constructs the gate with the exempt path prefixes.
func NewAuthMiddleware(tokens *TokenManager, exemptPrefixes []string) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, exempt: exemptPrefixes}
}

// Handle enforces authentication for every non-exempt request. Exactly two
// outcomes: rejected with 401, or forwarded with Identity attached. Rejected
// responses never distinguish signature, expiry and malformation failures.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	if m.isExempt(c.Path()) {
		return c.Next()
	}

	token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication token is required",
		})
	}

	claims, err := m.tokens.ParseToken(token)
	if err != nil {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid authentication token",
		})
	}

	// Locals always overwrites; nothing a client sends can preseed this key.
	c.Locals(identityKey, Identity{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	})
	return c.Next()
}

func (m *AuthMiddleware) isExempt(path string) bool {
	for _, prefix := range m.exempt {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}

// IdentityFromContext retrieves the identity the gate attached.
func IdentityFromContext(c *fiber.Ctx) (Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return Identity{}, false
	}
	identity, ok := val.(Identity)
	return identity, ok
}

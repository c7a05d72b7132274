package handlers

import "github.com/gofiber/fiber/v2"

// HelloHandler serves the public smoke-test endpoint.
type HelloHandler struct{}

// NewHelloHandler returns a new handler instance.
func NewHelloHandler() *HelloHandler {
	return &HelloHandler{}
}

// Hello handles GET /api/hello. It sits on the gate's exemption list, so it
// answers without a token.
func (h *HelloHandler) Hello(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Hello from the backend!"})
}

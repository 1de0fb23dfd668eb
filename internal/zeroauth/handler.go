package zeroauth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/paybr/cielo_facade/internal/result"
)

// Handler exposes the zero-auth verification endpoint.
type Handler struct {
	service *Service
}

// NewHandler constructs a zero-auth handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Verify validates a card through a zero-value authorization.
func (h *Handler) Verify(c *fiber.Ctx) error {
	var payload Payload
	if err := c.BodyParser(&payload); err != nil {
		res := result.Invalid[Response]("Zero auth data is required")
		return c.Status(res.StatusCode).JSON(res)
	}

	res := h.service.Verify(c.UserContext(), &payload)
	return c.Status(res.StatusCode).JSON(res)
}

package creditcard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/paybr/cielo_facade/internal/result"
)

// Handler exposes the credit-card charge endpoint.
type Handler struct {
	service *Service
}

// NewHandler constructs a credit-card handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Charge processes a complete credit-card payment request.
func (h *Handler) Charge(c *fiber.Ctx) error {
	var payload CompletePayload
	if err := c.BodyParser(&payload); err != nil {
		res := result.Invalid[Outcome]("Card data is required")
		return c.Status(res.StatusCode).JSON(res)
	}

	res := h.service.ProcessCharge(c.UserContext(), &payload)
	return c.Status(res.StatusCode).JSON(res)
}

package bin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/paybr/cielo_facade/internal/result"
)

// Handler exposes the BIN lookup and eligibility endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a BIN handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// BatchRequest is the body of a multi-BIN lookup.
type BatchRequest struct {
	Bins []string `json:"bins"`
}

// ExtractRequest is the body of a BIN extraction.
type ExtractRequest struct {
	CardNumber string `json:"cardNumber"`
}

// ExtractResponse carries the extracted BIN prefix.
type ExtractResponse struct {
	Bin string `json:"bin"`
}

// Lookup fetches metadata for the BIN in the path.
func (h *Handler) Lookup(c *fiber.Ctx) error {
	res := h.service.Lookup(c.UserContext(), c.Params("bin"))
	return c.Status(res.StatusCode).JSON(res)
}

// Eligibility reports whether the BIN in the path may be processed.
func (h *Handler) Eligibility(c *fiber.Ctx) error {
	res := h.service.CheckEligibility(c.UserContext(), c.Params("bin"))
	return c.Status(res.StatusCode).JSON(res)
}

// Batch resolves up to ten BINs in one call.
func (h *Handler) Batch(c *fiber.Ctx) error {
	var req BatchRequest
	if err := c.BodyParser(&req); err != nil {
		res := result.Invalid[BatchResult]("A list of BINs is required")
		return c.Status(res.StatusCode).JSON(res)
	}

	res := h.service.LookupBatch(c.UserContext(), req.Bins)
	return c.Status(res.StatusCode).JSON(res)
}

// Extract returns the 6-digit BIN prefix of a full card number.
func (h *Handler) Extract(c *fiber.Ctx) error {
	var req ExtractRequest
	if err := c.BodyParser(&req); err != nil {
		res := result.Invalid[ExtractResponse]("Card number is required")
		return c.Status(res.StatusCode).JSON(res)
	}

	prefix, ok := h.service.ExtractBin(req.CardNumber)
	if !ok {
		res := result.Invalid[ExtractResponse]("Card number must be between 13-19 digits")
		return c.Status(res.StatusCode).JSON(res)
	}

	res := result.OK(ExtractResponse{Bin: prefix})
	return c.Status(res.StatusCode).JSON(res)
}

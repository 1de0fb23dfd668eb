package zeroauth

import (
	"context"
	"log/slog"

	"github.com/paybr/cielo_facade/internal/card"
	"github.com/paybr/cielo_facade/internal/result"
	"github.com/paybr/cielo_facade/internal/validate"
)

// Gateway carries a validated zero-auth request to the payment
// processor.
type Gateway interface {
	VerifyCard(ctx context.Context, payload Payload) result.Result[Response]
}

// Service validates zero-auth payloads and delegates verification to the
// gateway collaborator.
type Service struct {
	gateway Gateway
	logger  *slog.Logger
}

// NewService wires the zero-auth flow.
func NewService(gateway Gateway, logger *slog.Logger) *Service {
	return &Service{gateway: gateway, logger: logger}
}

// Verify validates the payload and, when well-formed, asks the gateway
// to verify the card. Validation failures never reach the gateway.
func (s *Service) Verify(ctx context.Context, payload *Payload) result.Result[Response] {
	if payload == nil {
		return result.Invalid[Response]("Zero auth data is required")
	}

	validation := validate.ToAPI(ValidatePayload(*payload))
	if !validation.Success {
		return result.Forward[Response](validation)
	}

	if s.logger != nil {
		s.logger.Info("forwarding zero-auth verification to gateway",
			"brand", validation.Data.Brand,
			"card", card.MaskNumber(validation.Data.CardNumber))
	}

	return s.gateway.VerifyCard(ctx, validation.Data)
}

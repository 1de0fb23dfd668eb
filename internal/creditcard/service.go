package creditcard

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/paybr/cielo_facade/internal/card"
	"github.com/paybr/cielo_facade/internal/policy"
	"github.com/paybr/cielo_facade/internal/result"
	"github.com/paybr/cielo_facade/internal/validate"
)

// Gateway is the collaborator that carries a validated charge to the
// payment processor. Transport concerns (headers, retries, timeouts)
// live behind this interface.
type Gateway interface {
	CreateSale(ctx context.Context, payload CompletePayload) result.Result[SaleResponse]
}

// Service orchestrates a credit-card charge: resolve defaults, apply the
// payment value policy, validate every field group and only then call
// the gateway.
type Service struct {
	gateway   Gateway
	policy    *policy.Validator
	validator StrictCardValidator
	clock     card.Clock
	logger    *slog.Logger
}

// NewService wires the charge orchestration.
func NewService(gateway Gateway, policyValidator *policy.Validator, clock card.Clock, logger *slog.Logger) *Service {
	if clock == nil {
		clock = card.SystemClock{}
	}
	if policyValidator == nil {
		policyValidator = policy.NewValidator(nil)
	}
	return &Service{
		gateway:   gateway,
		policy:    policyValidator,
		validator: NewStrictCardValidator(clock),
		clock:     clock,
		logger:    logger,
	}
}

// GenerateMerchantOrderId produces a 23-digit order identifier: a
// millisecond timestamp followed by a six-digit random suffix.
func (s *Service) GenerateMerchantOrderId() string {
	now := s.clock.Now().UTC()
	return fmt.Sprintf("%s%03d%06d",
		now.Format("20060102150405"),
		now.Nanosecond()/int(time.Millisecond),
		rand.IntN(1_000_000))
}

// ResolveDefaults returns a copy of the payload with a generated
// MerchantOrderId when none was supplied. The caller's payload is never
// mutated.
func (s *Service) ResolveDefaults(payload CompletePayload) CompletePayload {
	out := payload
	if out.MerchantOrderId == "" {
		out.MerchantOrderId = s.GenerateMerchantOrderId()
	}
	return out
}

// ApplySecureValues replaces the payload's amount and installments with
// the policy-validated values, returning a new payload.
func (s *Service) ApplySecureValues(ctx context.Context, payload CompletePayload) result.Result[CompletePayload] {
	values := s.policy.ValidatePaymentValues(ctx, payload.Payment.Amount, payload.Payment.Installments)
	if !values.Success {
		return result.Forward[CompletePayload](values)
	}

	out := payload
	out.Payment.Amount = values.Data.Amount
	out.Payment.Installments = values.Data.Installments
	return result.OK(out)
}

// ValidateFields runs the customer, payment and card validators in
// order, short-circuiting on the first failing group. The returned
// payload carries the normalized card record.
func (s *Service) ValidateFields(payload CompletePayload) result.Result[CompletePayload] {
	customer := validate.ToAPI(ValidateCustomer(payload.Customer))
	if !customer.Success {
		return result.Forward[CompletePayload](customer)
	}

	payment := validate.ToAPI(ValidatePayment(payload.Payment))
	if !payment.Success {
		return result.Forward[CompletePayload](payment)
	}

	cardRes := validate.ToAPI(s.validator.Validate(payload.Payment.CreditCard))
	if !cardRes.Success {
		return result.Forward[CompletePayload](cardRes)
	}

	out := payload
	out.Customer = customer.Data
	out.Payment = payment.Data
	out.Payment.CreditCard = cardRes.Data
	return result.OK(out)
}

// Charge runs the gateway leg of the flow: defaults, policy, validation
// and the external call. The raw gateway response is returned; use
// ProcessCharge for the interpreted outcome.
func (s *Service) Charge(ctx context.Context, payload *CompletePayload) result.Result[SaleResponse] {
	if payload == nil {
		return result.Invalid[SaleResponse]("Card data is required")
	}

	resolved := s.ResolveDefaults(*payload)

	secured := s.ApplySecureValues(ctx, resolved)
	if !secured.Success {
		return result.Forward[SaleResponse](secured)
	}

	validated := s.ValidateFields(secured.Data)
	if !validated.Success {
		return result.Forward[SaleResponse](validated)
	}

	if s.logger != nil {
		s.logger.Info("forwarding charge to gateway",
			"order_id", validated.Data.MerchantOrderId,
			"amount", validated.Data.Payment.Amount,
			"installments", validated.Data.Payment.Installments,
			"card", card.MaskNumber(validated.Data.Payment.CreditCard.CardNumber))
	}

	return s.gateway.CreateSale(ctx, validated.Data)
}

// ProcessCharge runs the complete flow and interprets the gateway
// response into an Outcome.
func (s *Service) ProcessCharge(ctx context.Context, payload *CompletePayload) result.Result[Outcome] {
	saleRes := s.Charge(ctx, payload)
	if !saleRes.Success {
		return result.Forward[Outcome](saleRes)
	}
	return s.InterpretResponse(&saleRes.Data)
}

// ValidateResponse checks that the four mandatory fields are present on
// a gateway response. A nil response yields a structured failure like
// every other entry point.
func (s *Service) ValidateResponse(response *SaleResponse) result.Result[SaleResponse] {
	if response == nil {
		return result.Invalid[SaleResponse]("Response data is required")
	}
	if response.PaymentId == "" {
		return result.Invalid[SaleResponse]("PaymentId é obrigatório na resposta")
	}
	if response.Status == "" {
		return result.Invalid[SaleResponse]("Status é obrigatório na resposta")
	}
	if response.ReturnCode == "" {
		return result.Invalid[SaleResponse]("ReturnCode é obrigatório na resposta")
	}
	if response.ReturnMessage == "" {
		return result.Invalid[SaleResponse]("ReturnMessage é obrigatório na resposta")
	}
	return result.OK(*response)
}

// InterpretResponse classifies a gateway response: Status "1" or "2" is
// an approved charge; anything else is a rejection reported as
// PAYMENT_REJECTED with status 400.
func (s *Service) InterpretResponse(response *SaleResponse) result.Result[Outcome] {
	validation := s.ValidateResponse(response)
	if !validation.Success {
		return result.Forward[Outcome](validation)
	}

	data := validation.Data
	approved := data.Status == "1" || data.Status == "2"

	outcome := Outcome{
		TransactionID:     data.PaymentId,
		Status:            data.Status,
		IsApproved:        approved,
		Message:           data.ReturnMessage,
		AuthorizationCode: data.AuthorizationCode,
	}

	if !approved {
		res := result.Fail[Outcome](data.ReturnMessage, result.KindPaymentRejected, 400)
		res.Data = outcome
		return res
	}
	return result.OK(outcome)
}

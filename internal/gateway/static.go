package gateway

import (
	"context"

	"github.com/google/uuid"

	"github.com/paybr/cielo_facade/internal/bin"
	"github.com/paybr/cielo_facade/internal/creditcard"
	"github.com/paybr/cielo_facade/internal/result"
	"github.com/paybr/cielo_facade/internal/zeroauth"
)

// Static simulates an always-approving gateway. Used when no merchant
// credentials are configured and in tests.
type Static struct{}

// CreateSale approves the charge with synthetic identifiers.
func (Static) CreateSale(_ context.Context, _ creditcard.CompletePayload) result.Result[creditcard.SaleResponse] {
	return result.OK(creditcard.SaleResponse{
		PaymentId:         uuid.NewString(),
		Status:            "2",
		ReturnCode:        "6",
		ReturnMessage:     "Operation Successful",
		AuthorizationCode: "123456",
	})
}

// VerifyCard reports the card as valid.
func (Static) VerifyCard(_ context.Context, _ zeroauth.Payload) result.Result[zeroauth.Response] {
	return result.OK(zeroauth.Response{
		Valid:               true,
		ReturnCode:          "00",
		ReturnMessage:       "Transacao autorizada",
		IssuerTransactionId: uuid.NewString(),
	})
}

// FetchBin reports a domestic, non-corporate Visa BIN in good standing.
func (Static) FetchBin(_ context.Context, _ string) result.Result[bin.Record] {
	return result.OK(bin.Record{
		Status:     "00",
		Provider:   "VISA",
		CardType:   "Crédito",
		Issuer:     "Banco Simulado",
		IssuerCode: "001",
	})
}

// Package creditcard implements the credit-card payment flow: field
// validation and normalization, payment value policy application and the
// orchestration against the gateway.
package creditcard

import "github.com/paybr/cielo_facade/internal/card"

// Currency is the settlement currency accepted by the gateway.
type Currency string

// CurrencyBRL is the only currency the integration currently supports.
const CurrencyBRL Currency = "BRL"

// Country identifies the processing country.
type Country string

// CountryBRA is the only country the integration currently supports.
const CountryBRA Country = "BRA"

// IdentityType distinguishes the customer document kinds.
type IdentityType string

const (
	IdentityCPF  IdentityType = "CPF"
	IdentityCNPJ IdentityType = "CNPJ"
)

// CreditCard carries the card fields as received from the caller. The
// validators produce the normalized copy that travels to the gateway.
type CreditCard struct {
	CardNumber     string     `json:"CardNumber"`
	Holder         string     `json:"Holder"`
	ExpirationDate string     `json:"ExpirationDate"`
	SecurityCode   string     `json:"SecurityCode"`
	Brand          card.Brand `json:"Brand"`
}

// Customer identifies the paying customer.
type Customer struct {
	Name         string       `json:"Name"`
	Identity     string       `json:"Identity"`
	IdentityType IdentityType `json:"IdentityType"`
	Email        string       `json:"Email,omitempty"`
	BirthDate    string       `json:"BirthDate"`
}

// Payment carries the monetary terms of the charge. Amount is in minor
// currency units.
type Payment struct {
	Type           card.Type  `json:"Type"`
	Amount         int64      `json:"Amount"`
	Currency       Currency   `json:"Currency"`
	Country        Country    `json:"Country"`
	Provider       string     `json:"Provider,omitempty"`
	SoftDescriptor string     `json:"SoftDescriptor,omitempty"`
	Installments   int        `json:"Installments"`
	CreditCard     CreditCard `json:"CreditCard"`
}

// CompletePayload is the full charge request: order identification,
// customer and payment terms. It lives for one request and is never
// persisted.
type CompletePayload struct {
	MerchantOrderId string   `json:"MerchantOrderId"`
	Customer        Customer `json:"Customer"`
	Payment         Payment  `json:"Payment"`
}

// SaleResponse is the gateway's answer to a charge. PaymentId, Status,
// ReturnCode and ReturnMessage are mandatory before the response can be
// interpreted.
type SaleResponse struct {
	PaymentId         string `json:"PaymentId"`
	Status            string `json:"Status"`
	ReturnCode        string `json:"ReturnCode"`
	ReturnMessage     string `json:"ReturnMessage"`
	AuthorizationCode string `json:"AuthorizationCode,omitempty"`
	ProofOfSale       string `json:"ProofOfSale,omitempty"`
	Tid               string `json:"Tid,omitempty"`
}

// Outcome is the interpreted gateway response handed to callers.
type Outcome struct {
	TransactionID     string `json:"transactionId"`
	Status            string `json:"status"`
	IsApproved        bool   `json:"isApproved"`
	Message           string `json:"message"`
	AuthorizationCode string `json:"authorizationCode,omitempty"`
}

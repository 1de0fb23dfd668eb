// Package zeroauth implements zero-value authorization: verifying a card
// is live without charging it.
package zeroauth

import "github.com/paybr/cielo_facade/internal/card"

// Usage states how the stored card is being used.
type Usage string

const (
	UsageFirst Usage = "First"
	UsageUsed  Usage = "Used"
)

// Reason states why the stored card is being exercised.
type Reason string

const (
	ReasonUnscheduled Reason = "Unscheduled"
	ReasonRecurring   Reason = "Recurring"
)

// CardOnFile pairs usage and reason. First usage must be Unscheduled and
// repeat usage must be Recurring; any other pairing is rejected.
type CardOnFile struct {
	Usage  Usage  `json:"Usage"`
	Reason Reason `json:"Reason"`
}

// Payload is a zero-auth verification request. Its rules are looser than
// the charge flow's on purpose: no Luhn check, no expiry check, a 3-or-4
// digit security code regardless of brand.
type Payload struct {
	CardType       card.Type  `json:"CardType"`
	CardNumber     string     `json:"CardNumber"`
	Holder         string     `json:"Holder"`
	ExpirationDate string     `json:"ExpirationDate"`
	SecurityCode   string     `json:"SecurityCode"`
	Brand          card.Brand `json:"Brand"`
	CardOnFile     CardOnFile `json:"CardOnFile"`
}

// Response is the gateway's answer. A verification outcome carries
// Valid/ReturnCode/ReturnMessage; a gateway-level error carries
// Code/Message instead. Both arrive on the same wire shape.
type Response struct {
	Valid               bool   `json:"Valid"`
	ReturnCode          string `json:"ReturnCode,omitempty"`
	ReturnMessage       string `json:"ReturnMessage,omitempty"`
	IssuerTransactionId string `json:"IssuerTransactionId,omitempty"`
	Code                int    `json:"Code,omitempty"`
	Message             string `json:"Message,omitempty"`
}

// IsGatewayError reports whether the response is the gateway error shape
// rather than a verification outcome.
func (r Response) IsGatewayError() bool {
	return r.Code != 0 && r.ReturnCode == ""
}

// Package bin looks up and judges bank identification numbers: fetching
// BIN metadata through the gateway, caching it, and applying the
// business rules that decide whether a card is eligible for processing.
package bin

import "github.com/paybr/cielo_facade/internal/card"

// Record is the gateway-reported metadata for a BIN. Read-only; fetched
// fresh per call unless a cache collaborator is configured.
type Record struct {
	Status        string     `json:"Status"`
	Provider      card.Brand `json:"Provider"`
	CardType      string     `json:"CardType"`
	ForeignCard   bool       `json:"ForeignCard"`
	CorporateCard bool       `json:"CorporateCard"`
	Issuer        string     `json:"Issuer"`
	IssuerCode    string     `json:"IssuerCode"`
	Prepaid       bool       `json:"Prepaid"`
}

// Eligibility is the processing decision for a BIN, with the first
// failing rule's reason when ineligible.
type Eligibility struct {
	IsValid bool   `json:"isValid"`
	Reason  string `json:"reason,omitempty"`
}

// BatchResult carries the outcome of a multi-BIN lookup. Successful
// records and per-item errors are both exposed so callers can inspect
// partial failures instead of having them swallowed.
type BatchResult struct {
	Records []Record `json:"records"`
	Errors  []string `json:"errors,omitempty"`
}

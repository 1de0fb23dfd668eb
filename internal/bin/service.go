package bin

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/paybr/cielo_facade/internal/result"
	"github.com/paybr/cielo_facade/internal/validate"
)

// maxBatchSize bounds a multi-BIN lookup.
const maxBatchSize = 10

// Fetcher is the collaborator that resolves a BIN to its metadata,
// normally the gateway client or a cache in front of it.
type Fetcher interface {
	FetchBin(ctx context.Context, bin string) result.Result[Record]
}

// Service validates BINs, fetches their metadata and applies the
// eligibility rules.
type Service struct {
	fetcher Fetcher
	policy  EligibilityPolicy
	logger  *slog.Logger
}

// NewService wires the BIN lookup flow.
func NewService(fetcher Fetcher, policy EligibilityPolicy, logger *slog.Logger) *Service {
	return &Service{fetcher: fetcher, policy: policy, logger: logger}
}

// Lookup validates the BIN and fetches its metadata. The record's Status
// is upper-cased, defaulting to "UNKNOWN" when the gateway omits it.
func (s *Service) Lookup(ctx context.Context, bin string) result.Result[Record] {
	validation := validate.ToAPI(ValidateBIN(bin))
	if !validation.Success {
		return result.Forward[Record](validation)
	}

	res := s.fetcher.FetchBin(ctx, validation.Data)
	if res.Success {
		res.Data = normalizeRecord(res.Data)
	}
	return res
}

// CheckEligibility fetches the BIN and applies the processing rules,
// returning the decision with the first failing rule's reason.
func (s *Service) CheckEligibility(ctx context.Context, bin string) result.Result[Eligibility] {
	lookup := s.Lookup(ctx, bin)
	if !lookup.Success {
		return result.Forward[Eligibility](lookup)
	}

	eligible := s.policy.IsEligible(lookup.Data)
	decision := Eligibility{IsValid: eligible}
	if !eligible {
		decision.Reason = s.policy.ReasonIfIneligible(lookup.Data)
		if s.logger != nil {
			s.logger.Info("bin rejected", "bin", bin, "reason", decision.Reason)
		}
	}
	return result.OK(decision)
}

// ExtractBin returns the 6-digit BIN prefix of a full card number, or
// false when the number's shape is invalid. Never fails loudly.
func (s *Service) ExtractBin(number string) (string, bool) {
	shape := ValidateCardNumberShape(number)
	if !shape.Success {
		return "", false
	}
	return shape.Data[:6], true
}

// LookupBatch resolves up to ten BINs sequentially, preserving input
// order. Individual failures are collected; the batch as a whole fails
// only when nothing succeeded.
func (s *Service) LookupBatch(ctx context.Context, bins []string) result.Result[BatchResult] {
	if len(bins) == 0 {
		return result.Invalid[BatchResult]("At least one BIN is required")
	}
	if len(bins) > maxBatchSize {
		return result.Invalid[BatchResult](fmt.Sprintf("Maximum %d BINs allowed per request", maxBatchSize))
	}

	var batch BatchResult
	for _, bin := range bins {
		res := s.Lookup(ctx, bin)
		if res.Success {
			batch.Records = append(batch.Records, res.Data)
		} else {
			batch.Errors = append(batch.Errors, fmt.Sprintf("BIN %s: %s", bin, res.Error))
		}
	}

	if len(batch.Records) == 0 && len(batch.Errors) > 0 {
		return result.Invalid[BatchResult](strings.Join(batch.Errors, "; "))
	}
	return result.OK(batch)
}

func normalizeRecord(record Record) Record {
	record.Status = strings.ToUpper(record.Status)
	if record.Status == "" {
		record.Status = "UNKNOWN"
	}
	return record
}

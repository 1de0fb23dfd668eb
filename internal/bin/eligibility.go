package bin

import (
	"fmt"
	"strings"
)

// statusOK is the gateway status meaning the BIN resolved successfully.
const statusOK = "00"

// defaultBlockedIssuers are issuers the façade refuses to process.
var defaultBlockedIssuers = []string{"BLOCKED_BANK", "INVALID_ISSUER"}

// EligibilityPolicy holds the business rules applied to a fetched BIN
// record. The foreign-card flag is threaded in explicitly; nothing reads
// ambient configuration.
type EligibilityPolicy struct {
	AllowForeignCards bool
	BlockedIssuers    []string
}

// DefaultEligibilityPolicy rejects foreign cards and applies the
// standard issuer blocklist.
func DefaultEligibilityPolicy() EligibilityPolicy {
	return EligibilityPolicy{BlockedIssuers: defaultBlockedIssuers}
}

func (p EligibilityPolicy) blockedIssuers() []string {
	if p.BlockedIssuers == nil {
		return defaultBlockedIssuers
	}
	return p.BlockedIssuers
}

// IsEligible applies the processing rules in order: gateway status,
// foreign-card policy, issuer blocklist.
func (p EligibilityPolicy) IsEligible(record Record) bool {
	if record.Status != statusOK {
		return false
	}
	if record.ForeignCard && !p.AllowForeignCards {
		return false
	}
	return !p.issuerBlocked(record.Issuer)
}

// ReasonIfIneligible returns the first failing rule's reason. The order
// matches IsEligible; only one reason is ever reported.
func (p EligibilityPolicy) ReasonIfIneligible(record Record) string {
	if record.Status != statusOK {
		return fmt.Sprintf("Invalid card status: %s", record.Status)
	}
	if record.ForeignCard && !p.AllowForeignCards {
		return "Foreign cards are not allowed"
	}
	if p.issuerBlocked(record.Issuer) {
		return fmt.Sprintf("Issuer not supported: %s", record.Issuer)
	}
	return "Card not valid for processing"
}

func (p EligibilityPolicy) issuerBlocked(issuer string) bool {
	upper := strings.ToUpper(issuer)
	for _, blocked := range p.blockedIssuers() {
		if upper == blocked {
			return true
		}
	}
	return false
}

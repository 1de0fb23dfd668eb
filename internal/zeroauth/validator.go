package zeroauth

import (
	"regexp"

	"github.com/paybr/cielo_facade/internal/card"
	"github.com/paybr/cielo_facade/internal/validate"
)

var (
	numberShapePattern = regexp.MustCompile(`^[\d\s-]+$`)
	digitsPattern      = regexp.MustCompile(`^\d+$`)
)

// ValidatePayload applies the zero-auth rule set. It deliberately skips
// the Luhn and expiry checks and accepts a 3 or 4 digit security code
// for every brand; the strict rules belong to the charge flow in the
// creditcard package.
func ValidatePayload(in Payload) validate.Result[Payload] {
	var errs validate.Errs
	out := in

	if !card.ValidType(in.CardType) {
		errs.Add("CardType", "Card type is required")
	}

	switch {
	case in.CardNumber == "":
		errs.Add("CardNumber", "Card number is required")
	case !numberShapePattern.MatchString(in.CardNumber):
		errs.Add("CardNumber", "Card number must contain only digits, spaces, or hyphens")
	default:
		clean := card.CleanNumber(in.CardNumber)
		if len(clean) < 13 || len(clean) > 19 {
			errs.Add("CardNumber", "Card number must be between 13-19 digits")
		} else {
			out.CardNumber = clean
		}
	}

	if in.Holder == "" {
		errs.Add("Holder", "Holder name is required")
	}

	switch {
	case in.ExpirationDate == "":
		errs.Add("ExpirationDate", "Expiration date is required")
	case !card.ExpirationPattern.MatchString(in.ExpirationDate):
		errs.Add("ExpirationDate", "Expiration date must be in MM/YYYY format")
	}

	switch {
	case len(in.SecurityCode) < 3:
		errs.Add("SecurityCode", "Security code must be at least 3 digits")
	case !digitsPattern.MatchString(in.SecurityCode):
		errs.Add("SecurityCode", "Security code must contain only digits")
	case len(in.SecurityCode) > 4:
		errs.Add("SecurityCode", "Security code must be 3 or 4 digits")
	}

	if !card.ValidBrand(in.Brand) {
		errs.Add("Brand", "Brand is required")
	}

	if err := validateCardOnFile(in.CardOnFile); err != "" {
		errs.Add("CardOnFile", err)
	}

	if !errs.Empty() {
		return validate.Fail[Payload](errs.List())
	}
	return validate.OK(out)
}

func validateCardOnFile(cof CardOnFile) string {
	if cof.Usage != UsageFirst && cof.Usage != UsageUsed {
		return "Card on file usage is required"
	}
	if cof.Reason != ReasonUnscheduled && cof.Reason != ReasonRecurring {
		return "Card on file reason is required"
	}
	if cof.Usage == UsageFirst && cof.Reason != ReasonUnscheduled {
		return "Card on file usage and reason do not match"
	}
	if cof.Usage == UsageUsed && cof.Reason != ReasonRecurring {
		return "Card on file usage and reason do not match"
	}
	return ""
}

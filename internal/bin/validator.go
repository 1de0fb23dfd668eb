package bin

import (
	"regexp"

	"github.com/paybr/cielo_facade/internal/card"
	"github.com/paybr/cielo_facade/internal/validate"
)

var (
	binPattern         = regexp.MustCompile(`^\d{6,9}$`)
	numberShapePattern = regexp.MustCompile(`^[\d\s-]+$`)
)

// testBINs are obviously fake values rejected before any lookup.
var testBINs = map[string]bool{
	"000000": true,
	"111111": true,
	"123456": true,
}

// ValidateBIN checks that a BIN is 6-9 digits and not a known test
// value.
func ValidateBIN(bin string) validate.Result[string] {
	var errs validate.Errs
	switch {
	case bin == "":
		errs.Add("bin", "BIN is required")
	case !binPattern.MatchString(bin):
		errs.Add("bin", "BIN must be 6-9 digits")
	case testBINs[bin]:
		errs.Add("bin", "Test BINs are not allowed")
	}

	if !errs.Empty() {
		return validate.Fail[string](errs.List())
	}
	return validate.OK(bin)
}

// ValidateCardNumberShape checks that a full card number has a valid
// shape (digits, spaces or hyphens; 13-19 digits once cleaned) and
// returns the cleaned number. No Luhn check: this rule set only guards
// BIN extraction.
func ValidateCardNumberShape(number string) validate.Result[string] {
	var errs validate.Errs
	clean := card.CleanNumber(number)
	switch {
	case number == "":
		errs.Add("cardNumber", "Card number is required")
	case !numberShapePattern.MatchString(number):
		errs.Add("cardNumber", "Card number must contain only digits, spaces, or hyphens")
	case len(clean) < 13 || len(clean) > 19:
		errs.Add("cardNumber", "Card number must be between 13-19 digits")
	}

	if !errs.Empty() {
		return validate.Fail[string](errs.List())
	}
	return validate.OK(clean)
}

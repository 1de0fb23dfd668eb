package creditcard

import (
	"net/mail"
	"regexp"
	"strings"

	"github.com/paybr/cielo_facade/internal/card"
	"github.com/paybr/cielo_facade/internal/validate"
)

var (
	numberShapePattern = regexp.MustCompile(`^[\d\s-]+$`)
	holderPattern      = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	digitsPattern      = regexp.MustCompile(`^\d+$`)
	birthDatePattern   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// StrictCardValidator applies the full card rule set: Luhn, expiry,
// security-code length by declared brand and the declared-vs-detected
// brand cross-check. This is the variant the charge flow uses. The
// zero-auth flow uses the looser rules in the zeroauth package; the two
// rule sets diverge on purpose and must not be merged.
type StrictCardValidator struct {
	clock card.Clock
}

// NewStrictCardValidator builds the strict validator. A nil clock means
// the system clock.
func NewStrictCardValidator(clock card.Clock) StrictCardValidator {
	if clock == nil {
		clock = card.SystemClock{}
	}
	return StrictCardValidator{clock: clock}
}

// Validate checks and normalizes a card record: the number is cleaned,
// the holder trimmed and upper-cased, the expiration rewritten to
// MM/YYYY. All field failures accumulate.
func (v StrictCardValidator) Validate(in CreditCard) validate.Result[CreditCard] {
	var errs validate.Errs
	out := in

	out.CardNumber = validateCardNumber(in.CardNumber, &errs, true)
	out.Holder = validateHolder(in.Holder, &errs)
	out.ExpirationDate = validateExpiration(in.ExpirationDate, v.clock, &errs)
	validateSecurityCodeShape(in.SecurityCode, &errs)

	if !card.ValidBrand(in.Brand) {
		errs.Add("Brand", "Brand is required")
	}

	// Cross-field rules only make sense over individually valid fields.
	if errs.Empty() {
		expected := 3
		if in.Brand == card.BrandAmex {
			expected = 4
		}
		if len(in.SecurityCode) != expected {
			errs.Add("SecurityCode", "Security code length must match card brand (3 digits for most cards, 4 for American Express)")
		}

		if detected, ok := card.DetectBrand(out.CardNumber); !ok || detected != in.Brand {
			errs.Add("Brand", "Card brand does not match card number")
		}
	}

	if !errs.Empty() {
		return validate.Fail[CreditCard](errs.List())
	}
	return validate.OK(out)
}

// AutoDetectCardValidator derives the brand from the number instead of
// requiring it as input. Useful for payment forms that do not ask for
// the brand.
type AutoDetectCardValidator struct {
	clock card.Clock
}

// NewAutoDetectCardValidator builds the auto-detect validator. A nil
// clock means the system clock.
func NewAutoDetectCardValidator(clock card.Clock) AutoDetectCardValidator {
	if clock == nil {
		clock = card.SystemClock{}
	}
	return AutoDetectCardValidator{clock: clock}
}

// Validate checks the card fields, detects the brand from the number and
// requires the security-code length to match the detected brand. An
// undetectable brand fails the record.
func (v AutoDetectCardValidator) Validate(in CreditCard) validate.Result[CreditCard] {
	var errs validate.Errs
	out := in

	out.CardNumber = validateCardNumber(in.CardNumber, &errs, true)
	out.Holder = validateHolder(in.Holder, &errs)
	out.ExpirationDate = validateExpiration(in.ExpirationDate, v.clock, &errs)
	validateSecurityCodeShape(in.SecurityCode, &errs)

	if errs.Empty() {
		detected, ok := card.DetectBrand(out.CardNumber)
		expected := 3
		if ok && detected == card.BrandAmex {
			expected = 4
		}
		if !ok || len(in.SecurityCode) != expected {
			errs.Add("CardNumber", "Invalid card brand or security code length")
		} else {
			out.Brand = detected
		}
	}

	if !errs.Empty() {
		return validate.Fail[CreditCard](errs.List())
	}
	return validate.OK(out)
}

// validateCardNumber checks shape and length and, for the strict rule
// sets, the Luhn checksum. Returns the cleaned number.
func validateCardNumber(number string, errs *validate.Errs, luhn bool) string {
	if number == "" {
		errs.Add("CardNumber", "Card number is required")
		return number
	}
	if !numberShapePattern.MatchString(number) {
		errs.Add("CardNumber", "Card number must contain only digits, spaces, or hyphens")
		return number
	}
	clean := card.CleanNumber(number)
	if len(clean) < 13 || len(clean) > 19 {
		errs.Add("CardNumber", "Card number must be between 13-19 digits")
		return clean
	}
	if luhn && !card.ValidLuhn(clean) {
		errs.Add("CardNumber", "Invalid card number (failed Luhn check)")
	}
	return clean
}

func validateHolder(holder string, errs *validate.Errs) string {
	if holder == "" {
		errs.Add("Holder", "Holder name is required")
		return holder
	}
	if len(holder) > 100 {
		errs.Add("Holder", "Holder name is too long")
		return holder
	}
	if !holderPattern.MatchString(holder) {
		errs.Add("Holder", "Holder name must contain only letters and spaces")
		return holder
	}
	return strings.ToUpper(strings.TrimSpace(holder))
}

func validateExpiration(expiration string, clock card.Clock, errs *validate.Errs) string {
	if expiration == "" {
		errs.Add("ExpirationDate", "Expiration date is required")
		return expiration
	}
	if !card.ExpirationPattern.MatchString(expiration) {
		errs.Add("ExpirationDate", "Expiration date must be in MM/YYYY or MMYYYY format")
		return expiration
	}
	if card.Expired(expiration, clock) {
		errs.Add("ExpirationDate", "Card has expired")
		return expiration
	}
	return card.NormalizeExpiration(expiration)
}

func validateSecurityCodeShape(code string, errs *validate.Errs) {
	if code == "" {
		errs.Add("SecurityCode", "Security code is required")
		return
	}
	if !digitsPattern.MatchString(code) {
		errs.Add("SecurityCode", "Security code must contain only digits")
	}
}

// ValidateCustomer checks the customer fields.
func ValidateCustomer(in Customer) validate.Result[Customer] {
	var errs validate.Errs

	if in.Name == "" {
		errs.Add("Name", "Name is required")
	}

	switch {
	case in.Identity == "":
		errs.Add("Identity", "Identity is required")
	case len(in.Identity) > 14:
		errs.Add("Identity", "Identity must be at most 14 characters long")
	case !digitsPattern.MatchString(in.Identity):
		errs.Add("Identity", "Identity must contain only digits")
	}

	if in.IdentityType != IdentityCPF && in.IdentityType != IdentityCNPJ {
		errs.Add("IdentityType", "Invalid Identity Type")
	}

	if in.Email != "" {
		if _, err := mail.ParseAddress(in.Email); err != nil {
			errs.Add("Email", "Invalid email format")
		}
	}

	if !birthDatePattern.MatchString(in.BirthDate) {
		errs.Add("BirthDate", "BirthDate must be in format YYYY-MM-DD")
	}

	if !errs.Empty() {
		return validate.Fail[Customer](errs.List())
	}
	return validate.OK(in)
}

// ValidatePayment checks the payment terms. Installments defaults to 1
// when absent.
func ValidatePayment(in Payment) validate.Result[Payment] {
	var errs validate.Errs
	out := in

	if !card.ValidType(in.Type) {
		errs.Add("Type", "Card type is required")
	}
	if in.Amount < 1 {
		errs.Add("Amount", "Amount must be greater than 0")
	}
	if in.Currency != CurrencyBRL {
		errs.Add("Currency", "Currency is required")
	}
	if in.Country != CountryBRA {
		errs.Add("Country", "Country is required")
	}

	if in.Installments == 0 {
		out.Installments = 1
	} else if in.Installments < 1 {
		errs.Add("Installments", "Installments must be at least 1")
	} else if in.Installments > 12 {
		errs.Add("Installments", "Installments must be at most 12")
	}

	if !errs.Empty() {
		return validate.Fail[Payment](errs.List())
	}
	return validate.OK(out)
}

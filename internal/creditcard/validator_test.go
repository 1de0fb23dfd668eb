package creditcard

import (
	"strings"
	"testing"
	"time"

	"github.com/paybr/cielo_facade/internal/card"
)

func testClock() card.Clock {
	return card.FixedClock{At: time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC)}
}

func validCard() CreditCard {
	return CreditCard{
		CardNumber:     "4111111111111111",
		Holder:         "John Doe",
		ExpirationDate: "12/2025",
		SecurityCode:   "123",
		Brand:          card.BrandVisa,
	}
}

func TestStrictValidatorNormalizes(t *testing.T) {
	v := NewStrictCardValidator(testClock())

	res := v.Validate(validCard())
	if !res.Success {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if res.Data.Holder != "JOHN DOE" {
		t.Fatalf("expected holder upper-cased, got %q", res.Data.Holder)
	}
	if res.Data.ExpirationDate != "12/2025" {
		t.Fatalf("expected canonical expiration, got %q", res.Data.ExpirationDate)
	}
	if res.Data.CardNumber != "4111111111111111" {
		t.Fatalf("expected cleaned number, got %q", res.Data.CardNumber)
	}
}

func TestStrictValidatorCleansSeparators(t *testing.T) {
	v := NewStrictCardValidator(testClock())

	in := validCard()
	in.CardNumber = "4111 1111-1111 1111"
	in.ExpirationDate = "122025"

	res := v.Validate(in)
	if !res.Success {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if res.Data.CardNumber != "4111111111111111" || res.Data.ExpirationDate != "12/2025" {
		t.Fatalf("unexpected normalization: %+v", res.Data)
	}
}

func TestStrictValidatorLuhn(t *testing.T) {
	v := NewStrictCardValidator(testClock())

	in := validCard()
	in.CardNumber = "4111111111111112"

	res := v.Validate(in)
	if res.Success {
		t.Fatal("expected Luhn failure")
	}
	if !containsError(res.Errors, "CardNumber", "Luhn") {
		t.Fatalf("expected Luhn error, got %v", res.Errors)
	}
}

func TestStrictValidatorExpiredCard(t *testing.T) {
	v := NewStrictCardValidator(testClock())

	in := validCard()
	in.ExpirationDate = "05/2023"

	res := v.Validate(in)
	if res.Success || !containsError(res.Errors, "ExpirationDate", "expired") {
		t.Fatalf("expected expiry failure, got %v", res.Errors)
	}

	in.ExpirationDate = "06/2023"
	if res := v.Validate(in); !res.Success {
		t.Fatalf("current month must not be expired: %v", res.Errors)
	}
}

func TestStrictValidatorBrandMismatch(t *testing.T) {
	v := NewStrictCardValidator(testClock())

	in := validCard()
	in.Brand = card.BrandMaster

	res := v.Validate(in)
	if res.Success || !containsError(res.Errors, "Brand", "does not match") {
		t.Fatalf("expected brand mismatch, got %v", res.Errors)
	}
}

func TestStrictValidatorSecurityCodeByBrand(t *testing.T) {
	v := NewStrictCardValidator(testClock())

	// Amex requires exactly four digits.
	amex := CreditCard{
		CardNumber:     "378282246310005",
		Holder:         "John Doe",
		ExpirationDate: "12/2025",
		SecurityCode:   "123",
		Brand:          card.BrandAmex,
	}
	if res := v.Validate(amex); res.Success {
		t.Fatal("expected 3-digit code on Amex to fail")
	}
	amex.SecurityCode = "1234"
	if res := v.Validate(amex); !res.Success {
		t.Fatalf("expected 4-digit code on Amex to pass: %v", res.Errors)
	}

	// Everything else requires exactly three.
	visa := validCard()
	visa.SecurityCode = "1234"
	if res := v.Validate(visa); res.Success {
		t.Fatal("expected 4-digit code on Visa to fail")
	}
}

func TestStrictValidatorAccumulatesErrors(t *testing.T) {
	v := NewStrictCardValidator(testClock())

	res := v.Validate(CreditCard{
		CardNumber:     "",
		Holder:         "J0hn!",
		ExpirationDate: "13/2025",
		SecurityCode:   "abc",
		Brand:          "MAESTRO",
	})
	if res.Success {
		t.Fatal("expected failure")
	}
	if len(res.Errors) < 4 {
		t.Fatalf("expected every broken field reported, got %v", res.Errors)
	}
}

func TestAutoDetectValidator(t *testing.T) {
	v := NewAutoDetectCardValidator(testClock())

	in := validCard()
	in.Brand = ""

	res := v.Validate(in)
	if !res.Success {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if res.Data.Brand != card.BrandVisa {
		t.Fatalf("expected detected VISA, got %q", res.Data.Brand)
	}
}

func TestAutoDetectValidatorEloBeforeVisa(t *testing.T) {
	v := NewAutoDetectCardValidator(testClock())

	res := v.Validate(CreditCard{
		CardNumber:     "4011111111111120",
		Holder:         "John Doe",
		ExpirationDate: "12/2025",
		SecurityCode:   "123",
	})
	if !res.Success {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if res.Data.Brand != card.BrandElo {
		t.Fatalf("expected ELO, got %q", res.Data.Brand)
	}
}

func TestAutoDetectValidatorUnknownBrand(t *testing.T) {
	v := NewAutoDetectCardValidator(testClock())

	res := v.Validate(CreditCard{
		CardNumber:     "9999999999999995",
		Holder:         "John Doe",
		ExpirationDate: "12/2025",
		SecurityCode:   "123",
	})
	if res.Success {
		t.Fatal("expected failure for undetectable brand")
	}
}

func TestValidateCustomer(t *testing.T) {
	valid := Customer{
		Name:         "John Doe",
		Identity:     "12345678901",
		IdentityType: IdentityCPF,
		Email:        "john.doe@example.com",
		BirthDate:    "1990-01-01",
	}
	if res := ValidateCustomer(valid); !res.Success {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}

	// Email is optional.
	noEmail := valid
	noEmail.Email = ""
	if res := ValidateCustomer(noEmail); !res.Success {
		t.Fatalf("expected optional email, got %v", res.Errors)
	}

	bad := valid
	bad.Email = "not-an-email"
	bad.BirthDate = "01/01/1990"
	bad.IdentityType = "RG"
	res := ValidateCustomer(bad)
	if res.Success || len(res.Errors) != 3 {
		t.Fatalf("expected three errors, got %v", res.Errors)
	}
}

func TestValidatePayment(t *testing.T) {
	valid := Payment{
		Type:     card.TypeCredit,
		Amount:   10_000,
		Currency: CurrencyBRL,
		Country:  CountryBRA,
	}

	res := ValidatePayment(valid)
	if !res.Success {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if res.Data.Installments != 1 {
		t.Fatalf("expected installments defaulted to 1, got %d", res.Data.Installments)
	}

	bad := valid
	bad.Amount = 0
	bad.Installments = 13
	res = ValidatePayment(bad)
	if res.Success || len(res.Errors) != 2 {
		t.Fatalf("expected two errors, got %v", res.Errors)
	}
}

func containsError(errs []string, field, fragment string) bool {
	for _, e := range errs {
		if strings.HasPrefix(e, field+":") && strings.Contains(e, fragment) {
			return true
		}
	}
	return false
}

package validate

import (
	"testing"

	"github.com/paybr/cielo_facade/internal/result"
)

func TestErrsAccumulate(t *testing.T) {
	var errs Errs
	if !errs.Empty() {
		t.Fatal("fresh accumulator should be empty")
	}

	errs.Add("CardNumber", "Card number is required")
	errs.Addf("SecurityCode", "Security code must be %d digits", 3)

	got := errs.List()
	if len(got) != 2 {
		t.Fatalf("expected 2 errors, got %v", got)
	}
	if got[0] != "CardNumber: Card number is required" {
		t.Fatalf("unexpected format: %q", got[0])
	}
	if got[1] != "SecurityCode: Security code must be 3 digits" {
		t.Fatalf("unexpected format: %q", got[1])
	}
}

func TestToAPIJoinsErrors(t *testing.T) {
	failed := Fail[string]([]string{"a: first", "b: second"})

	api := ToAPI(failed)
	if api.Success {
		t.Fatal("expected failure")
	}
	if api.Error != "a: first, b: second" {
		t.Fatalf("expected comma-joined errors, got %q", api.Error)
	}
	if api.Code != result.KindValidationError || api.StatusCode != 400 {
		t.Fatalf("unexpected shape: %+v", api)
	}
}

func TestToAPIPassThrough(t *testing.T) {
	api := ToAPI(OK("normalized"))
	if !api.Success || api.Data != "normalized" || api.StatusCode != 200 {
		t.Fatalf("unexpected pass-through: %+v", api)
	}
}

func TestToAPIEmptyErrorList(t *testing.T) {
	api := ToAPI(Fail[string](nil))
	if api.Success || api.Error != "Validation failed" {
		t.Fatalf("unexpected fallback: %+v", api)
	}
}

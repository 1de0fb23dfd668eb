// Package card provides the pure building blocks for card handling:
// brand and card-type enumerations, the Luhn checksum, brand detection,
// number cleaning/formatting/masking and expiration handling.
package card

import "time"

// Brand identifies a card scheme. Values match what the gateway expects
// on the wire.
type Brand string

const (
	BrandMaster    Brand = "MASTER"
	BrandVisa      Brand = "VISA"
	BrandAmex      Brand = "AMEX"
	BrandElo       Brand = "ELO"
	BrandHipercard Brand = "HIPERCARD"
	BrandDiners    Brand = "DINERS"
	BrandDiscover  Brand = "DISCOVER"
	BrandJCB       Brand = "JCB"
)

// Brands lists every accepted brand.
var Brands = []Brand{
	BrandMaster, BrandVisa, BrandAmex, BrandElo,
	BrandHipercard, BrandDiners, BrandDiscover, BrandJCB,
}

// ValidBrand reports whether b is a member of the brand enumeration.
func ValidBrand(b Brand) bool {
	for _, known := range Brands {
		if b == known {
			return true
		}
	}
	return false
}

// Type distinguishes credit from debit processing. Values match the
// gateway wire format.
type Type string

const (
	TypeCredit Type = "CreditCard"
	TypeDebit  Type = "DebitCard"
)

// ValidType reports whether t is a member of the card-type enumeration.
func ValidType(t Type) bool {
	return t == TypeCredit || t == TypeDebit
}

// Clock abstracts "now" so expiration checks stay deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant. Test helper.
type FixedClock struct {
	At time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time { return c.At }

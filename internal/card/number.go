package card

import "strings"

// eloPrefixes must be tested before the Visa prefix: several Elo ranges
// live inside the "4" space and would otherwise classify as Visa.
var eloPrefixes = []string{
	"4011", "4312", "4389", "4514", "4573",
	"5041", "5066", "5067",
	"6277", "6362", "6363", "6504", "6505", "6516",
}

// ValidLuhn runs the Luhn checksum over a digit string: summing right to
// left, every second digit is doubled and reduced by 9 when the double
// exceeds 9; the number passes when the sum is 0 mod 10. The empty string
// is vacuously valid; callers reject emptiness with a length rule before
// ever invoking the checksum.
func ValidLuhn(number string) bool {
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		d := int(number[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// DetectBrand determines the card brand from the number's leading digits.
// Non-digits are stripped first. Returns false when no known prefix
// matches.
func DetectBrand(number string) (Brand, bool) {
	clean := CleanNumber(number)

	for _, p := range eloPrefixes {
		if strings.HasPrefix(clean, p) {
			return BrandElo, true
		}
	}

	if strings.HasPrefix(clean, "4") {
		return BrandVisa, true
	}

	// Mastercard: 51-55 or 22-27.
	if len(clean) >= 2 {
		switch clean[0] {
		case '5':
			if clean[1] >= '1' && clean[1] <= '5' {
				return BrandMaster, true
			}
		case '2':
			if clean[1] >= '2' && clean[1] <= '7' {
				return BrandMaster, true
			}
		case '3':
			if clean[1] == '4' || clean[1] == '7' {
				return BrandAmex, true
			}
		}
	}

	if strings.HasPrefix(clean, "606282") {
		return BrandHipercard, true
	}

	return "", false
}

// CleanNumber strips every non-digit character.
func CleanNumber(number string) string {
	var b strings.Builder
	b.Grow(len(number))
	for i := 0; i < len(number); i++ {
		if number[i] >= '0' && number[i] <= '9' {
			b.WriteByte(number[i])
		}
	}
	return b.String()
}

// FormatNumber renders a number in space-separated groups of four digits.
func FormatNumber(number string) string {
	clean := CleanNumber(number)
	var b strings.Builder
	for i := 0; i < len(clean); i += 4 {
		if i > 0 {
			b.WriteByte(' ')
		}
		end := i + 4
		if end > len(clean) {
			end = len(clean)
		}
		b.WriteString(clean[i:end])
	}
	return b.String()
}

// MaskNumber hides all but the last four digits for safe display.
func MaskNumber(number string) string {
	clean := CleanNumber(number)
	if len(clean) < 4 {
		return clean
	}
	return "****-****-****-" + clean[len(clean)-4:]
}

// BIN returns the six-digit bank identification prefix of a cleaned
// number, or false when fewer than six digits are present.
func BIN(number string) (string, bool) {
	clean := CleanNumber(number)
	if len(clean) < 6 {
		return "", false
	}
	return clean[:6], true
}

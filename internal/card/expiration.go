package card

import (
	"regexp"
	"strconv"
	"strings"
)

// ExpirationPattern accepts "MM/YYYY" and "MMYYYY" with a month of 01-12.
var ExpirationPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/?([0-9]{4})$`)

// Expired reports whether an expiration in "MM/YYYY" or "MMYYYY" form
// lies strictly before the clock's current month. Comparison is at month
// granularity; the day is irrelevant.
func Expired(expiration string, clock Clock) bool {
	clean := strings.ReplaceAll(expiration, "/", "")
	if len(clean) < 6 {
		return false
	}
	month, _ := strconv.Atoi(clean[:2])
	year, _ := strconv.Atoi(clean[2:6])

	now := clock.Now()
	if year < now.Year() {
		return true
	}
	if year == now.Year() && month < int(now.Month()) {
		return true
	}
	return false
}

// NormalizeExpiration rewrites an accepted expiration into the canonical
// "MM/YYYY" form. Inputs of five digits get a leading zero. Anything
// already carrying a slash in another shape is returned unchanged;
// callers run the format rule first, so only accepted shapes reach here.
func NormalizeExpiration(expiration string) string {
	clean := strings.ReplaceAll(expiration, "/", "")
	switch len(clean) {
	case 6:
		return clean[:2] + "/" + clean[2:]
	case 5:
		return "0" + clean[:1] + "/" + clean[1:]
	}
	return expiration
}

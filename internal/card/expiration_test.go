package card

import (
	"testing"
	"time"
)

func june2023() Clock {
	return FixedClock{At: time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC)}
}

func TestExpired(t *testing.T) {
	clock := june2023()

	cases := []struct {
		expiration string
		expired    bool
	}{
		{"06/2023", false},
		{"05/2023", true},
		{"07/2023", false},
		{"12/2022", true},
		{"01/2024", false},
		{"062023", false},
		{"052023", true},
	}

	for _, tc := range cases {
		if got := Expired(tc.expiration, clock); got != tc.expired {
			t.Errorf("Expired(%q) = %v, want %v", tc.expiration, got, tc.expired)
		}
	}
}

func TestNormalizeExpiration(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"122025", "12/2025"},
		{"12/2025", "12/2025"},
		{"012030", "01/2030"},
	}
	for _, tc := range cases {
		if got := NormalizeExpiration(tc.in); got != tc.want {
			t.Errorf("NormalizeExpiration(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeExpirationIdempotent(t *testing.T) {
	for _, in := range []string{"122025", "12/2025", "012030"} {
		once := NormalizeExpiration(in)
		if twice := NormalizeExpiration(once); twice != once {
			t.Errorf("normalizing %q twice gave %q then %q", in, once, twice)
		}
	}
}

package entities

import (
	"testing"
	"time"
)

func TestParseBillingMonth(t *testing.T) {
	cases := []struct {
		name  string
		token string
		want  time.Time
		ok    bool
	}{
		{"january", "Jan-25", time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), true},
		{"december", "Dec-24", time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), true},
		{"low year", "Mar-05", time.Date(2005, time.March, 1, 0, 0, 0, 0, time.UTC), true},
		{"surrounding spaces", " Jan-25 ", time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), true},
		{"uppercase month", "JAN-25", time.Time{}, false},
		{"lowercase month", "jan-25", time.Time{}, false},
		{"unknown month", "Xyz-25", time.Time{}, false},
		{"missing year", "Jan-", time.Time{}, false},
		{"year too long", "Jan-2025", time.Time{}, false},
		{"year not numeric", "Jan-2A", time.Time{}, false},
		{"no separator", "Jan25", time.Time{}, false},
		{"empty", "", time.Time{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseBillingMonth(tc.token)
			if ok != tc.ok {
				t.Fatalf("expected ok=%v, got %v", tc.ok, ok)
			}
			if ok && !got.Equal(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestParseBillingMonth_AllMonths(t *testing.T) {
	tokens := map[string]time.Month{
		"Jan-25": time.January, "Feb-25": time.February, "Mar-25": time.March,
		"Apr-25": time.April, "May-25": time.May, "Jun-25": time.June,
		"Jul-25": time.July, "Aug-25": time.August, "Sep-25": time.September,
		"Oct-25": time.October, "Nov-25": time.November, "Dec-25": time.December,
	}

	for token, month := range tokens {
		got, ok := ParseBillingMonth(token)
		if !ok {
			t.Fatalf("expected %q to parse", token)
		}
		if got.Month() != month || got.Year() != 2025 {
			t.Fatalf("expected %v 2025 for %q, got %v", month, token, got)
		}
	}
}

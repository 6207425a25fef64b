package entities

import (
	"strings"
	"time"
)

// billingMonths maps the month token of an assigned-month value ("Jan-25") to
// a calendar month. Lookup is case-sensitive on purpose: the store writes
// these tokens and anything else is treated as unparseable.
var billingMonths = map[string]time.Month{
	"Jan": time.January,
	"Feb": time.February,
	"Mar": time.March,
	"Apr": time.April,
	"May": time.May,
	"Jun": time.June,
	"Jul": time.July,
	"Aug": time.August,
	"Sep": time.September,
	"Oct": time.October,
	"Nov": time.November,
	"Dec": time.December,
}

// ParseBillingMonth parses an assigned-month token ("MMM-YY") into the first
// day of that month in UTC. The two-digit year is interpreted as 2000+YY; no
// century rollover is supported, so tokens are valid through Dec-99 (2099).
// Returns false for empty, malformed or unknown-month tokens.
func ParseBillingMonth(token string) (time.Time, bool) {
	parts := strings.Split(strings.TrimSpace(token), "-")
	if len(parts) != 2 {
		return time.Time{}, false
	}

	month, ok := billingMonths[parts[0]]
	if !ok {
		return time.Time{}, false
	}

	if len(parts[1]) != 2 {
		return time.Time{}, false
	}
	year := 0
	for _, d := range parts[1] {
		if d < '0' || d > '9' {
			return time.Time{}, false
		}
		year = year*10 + int(d-'0')
	}

	return time.Date(2000+year, month, 1, 0, 0, 0, 0, time.UTC), true
}

package entities

import "strings"

// Policy numbers use "/" as separator in the store ("LIFE/0001190/25") but the
// QR generation pipeline cannot embed that character, so upstream substitutes
// every "/" with ".". Callbacks therefore carry the sanitized form.

const (
	policySanitizedSeparator = "."
	policyCanonicalSeparator = "/"
)

// NormalizePolicyNumber converts a sanitized policy number back to the
// canonical store format. Total over all inputs: strings without the
// sanitization character (including the empty string) pass through unchanged.
func NormalizePolicyNumber(sanitized string) string {
	if sanitized == "" {
		return sanitized
	}
	return strings.ReplaceAll(sanitized, policySanitizedSeparator, policyCanonicalSeparator)
}

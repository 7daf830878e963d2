package utils

import "strings"

// NormalizePhone strips everything except digits from raw and drops a leading
// country code 91 when the remainder is a full 10-digit subscriber number.
// It returns the 10-digit national number, or ("", false) when the input does
// not normalize to exactly 10 digits.
func NormalizePhone(raw string) (string, bool) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) == 12 && strings.HasPrefix(digits, "91") {
		digits = digits[2:]
	}
	if len(digits) != 10 {
		return "", false
	}
	return digits, true
}

// FormatPhone renders a normalized 10-digit number in stored E.164-ish form.
func FormatPhone(digits string) string {
	return "+91" + digits
}

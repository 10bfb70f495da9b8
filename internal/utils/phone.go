package utils

import (
	"strings"
	"unicode"
)

// MaskPhone hides all but the last four characters of a phone number, for
// log lines and spoken confirmations.
func MaskPhone(phone string) string {
	if len(phone) <= 4 {
		return phone
	}
	return strings.Repeat("*", len(phone)-4) + phone[len(phone)-4:]
}

// ExtractDigits strips everything but digits from a phone number, so
// "+91 74171-19014" and "917417119014" compare equal.
func ExtractDigits(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

package scheduling

import (
	"strings"
	"unicode/utf8"
)

const minReasonLength = 3

// ValidateReason trims the reason and rejects empty, punctuation-only or too short values.
func ValidateReason(text string) (string, error) {
	reason := strings.TrimSpace(text)

	if reason == "" {
		err := NewIncompleteError([]string{FieldReason})
		err.Field = FieldReason
		err.Message = "What's the reason for your visit?"
		return "", err
	}
	if onlyPunctuation(reason) {
		return "", newFieldError(ErrInvalidReason, FieldReason,
			"Please provide a meaningful reason for your visit.")
	}
	if utf8.RuneCountInString(reason) < minReasonLength {
		return "", newFieldError(ErrInvalidReason, FieldReason,
			"Please provide a more detailed reason for your visit (at least 3 characters).")
	}

	return reason, nil
}

func onlyPunctuation(s string) bool {
	return strings.Trim(s, ".,?!") == ""
}

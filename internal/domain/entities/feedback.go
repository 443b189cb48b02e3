package entities

import "strings"

// NormalizeFeedback trims a feedback value and maps blank text to nil,
// so a stored feedback field is either absent or non-empty.
func NormalizeFeedback(text *string) *string {
	if text == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*text)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

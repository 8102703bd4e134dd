package services

import "strings"

// CheckAnswer reports whether a submitted answer matches the stored one.
// Both sides are trimmed and lowercased before comparison; nothing else.
// An empty submission is compared literally, it is not treated as
// "unanswered".
func CheckAnswer(storedAnswer, submittedAnswer string) bool {
	stored := strings.ToLower(strings.TrimSpace(storedAnswer))
	submitted := strings.ToLower(strings.TrimSpace(submittedAnswer))
	return stored == submitted
}

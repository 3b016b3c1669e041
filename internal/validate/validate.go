package validate

import (
	"regexp"
	"strings"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reDigit = regexp.MustCompile(`[0-9]`)
)

// MinPhoneDigits is the minimum number of digits a phone number must carry.
const MinPhoneDigits = 10

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 50 {
		return "", false
	}
	return s, strings.Contains(s, "@") && reEmail.MatchString(s)
}

// Phone accepts free-form numbers ("+7 (900) 123-45-67"); only the digit
// count is enforced.
func Phone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, len(reDigit.FindAllString(s, -1)) >= MinPhoneDigits
}

// Address only requires non-blank content; delivery addresses are free-form.
func Address(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}

// Payment treats the method as an opaque choice from the configured buttons;
// any non-blank value counts as chosen.
func Payment(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}

// ID validates a simple resource identifier (product ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

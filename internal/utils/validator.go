package utils

import (
	"regexp"
	"strings"
)

// MaxPartySize matches the cap enforced in the reservation form.
const MaxPartySize = 20

var timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

func IsValidEmail(email string) bool {
	pattern := `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	matched, _ := regexp.MatchString(pattern, email)
	return matched
}

func IsValidPassword(password string) bool {
	return len(password) >= 8
}

func IsValidRating(rating int) bool {
	return rating >= 1 && rating <= 5
}

// IsValidVisitTime accepts 24-hour HH:MM strings.
func IsValidVisitTime(t string) bool {
	return timePattern.MatchString(t)
}

func IsValidPartySize(size int) bool {
	return size >= 1 && size <= MaxPartySize
}

func SanitizeString(input string) string {
	return strings.TrimSpace(input)
}

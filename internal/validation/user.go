// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"time"
)

// MinimumSignupAge is the youngest age allowed to register.
const MinimumSignupAge = 18

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks that the address has a plausible mailbox@domain shape.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("email format is invalid")
	}
	return nil
}

// ParseBirthday parses a YYYY-MM-DD birthday and enforces the minimum
// signup age against the given reference time.
func ParseBirthday(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("birthday is required")
	}

	birthday, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("birthday must be a valid YYYY-MM-DD date")
	}

	if Age(birthday, now) < MinimumSignupAge {
		return time.Time{}, fmt.Errorf("age below %d can't sign up", MinimumSignupAge)
	}
	return birthday, nil
}

// Age returns full years elapsed between birthday and now.
func Age(birthday, now time.Time) int {
	years := now.Year() - birthday.Year()
	anniversary := birthday.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	return years
}

// Package validate holds the pure field predicates used by the edit and
// intake flows. Each predicate checks format only; none touches state.
package validate

import (
	"regexp"
	"strings"
	"time"
)

var (
	nameRe  = regexp.MustCompile(`^[a-zA-Z\s]{2,50}$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^\+?[1-9][0-9]{0,15}$`)
)

const dateLayout = "2006-01-02"

// IsValidName accepts 2-50 letters and spaces.
func IsValidName(name string) bool {
	return nameRe.MatchString(strings.TrimSpace(name))
}

// IsValidEmail accepts a simple local@domain.tld shape.
func IsValidEmail(email string) bool {
	return emailRe.MatchString(strings.TrimSpace(email))
}

// IsValidPhone accepts an optional leading + followed by up to 16 digits,
// the first of which must be non-zero. Interior spaces are ignored.
func IsValidPhone(phone string) bool {
	return phoneRe.MatchString(strings.ReplaceAll(phone, " ", ""))
}

// IsFutureOrTodayDate reports whether date is a well-formed ISO date that is
// today or later.
func IsFutureOrTodayDate(date string) bool {
	return isFutureOrToday(date, time.Now())
}

func isFutureOrToday(date string, now time.Time) bool {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return false
	}
	// Compare calendar days only; time.Parse yields UTC midnight.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(today)
}

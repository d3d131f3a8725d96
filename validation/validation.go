package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Violations maps a field name to its first failing rule's message.
// Rules short-circuit per field: once a field has a violation, later rules
// for that field are skipped, but every field is still evaluated.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

func (v Violations) set(field, msg string) {
	if _, done := v[field]; !done {
		v[field] = msg
	}
}

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v.set(field, "This field is required.")
	}
}

func MinLen(field, value string, n int, v Violations) {
	if _, done := v[field]; done {
		return
	}
	if len([]rune(value)) < n {
		v.set(field, fmt.Sprintf("Must be at least %d characters.", n))
	}
}

func LenBetween(field, value string, minLen, maxLen int, v Violations) {
	if _, done := v[field]; done {
		return
	}
	if n := len([]rune(value)); n < minLen || n > maxLen {
		v.set(field, fmt.Sprintf("Must be between %d and %d characters.", minLen, maxLen))
	}
}

func Match(field, value string, re *regexp.Regexp, msg string, v Violations) {
	if _, done := v[field]; done {
		return
	}
	if !re.MatchString(value) {
		v.set(field, msg)
	}
}

func EqualTo(field, value, other, msg string, v Violations) {
	if _, done := v[field]; done {
		return
	}
	if value != other {
		v.set(field, msg)
	}
}

// PasswordComposition requires at least one upper case letter, one lower
// case letter and one digit.
func PasswordComposition(field, value string, v Violations) {
	if _, done := v[field]; done {
		return
	}
	var upper, lower, digit bool
	for _, r := range value {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	switch {
	case !upper:
		v.set(field, "Password needs at least one upper case letter.")
	case !lower:
		v.set(field, "Password needs at least one lower case letter.")
	case !digit:
		v.set(field, "Password must contain at least one number.")
	}
}

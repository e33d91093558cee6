// Package validation holds the field predicates and the rule-driven form
// validator shared by the contact form, signup checks and admin editors.
package validation

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	letterPattern = regexp.MustCompile(`[A-Za-z]`)
	digitPattern  = regexp.MustCompile(`\d`)
	phonePattern  = regexp.MustCompile(`^(\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}$`)
)

const minPasswordLength = 8

// IsValidEmail accepts local@domain.tld with no whitespace.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsValidPassword requires at least 8 characters with one letter and one digit.
// Length is counted in characters, not bytes.
func IsValidPassword(s string) bool {
	if utf8.RuneCountInString(s) < minPasswordLength {
		return false
	}
	return letterPattern.MatchString(s) && digitPattern.MatchString(s)
}

// IsValidPhone accepts North American numbers with an optional +1 prefix and
// common separators.
func IsValidPhone(s string) bool {
	return phonePattern.MatchString(strings.TrimSpace(s))
}

// IsValidURL accepts absolute http(s) URLs with a host.
func IsValidURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

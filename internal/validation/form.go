package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MsgRequired      = "This field is required"
	MsgInvalidFormat = "Invalid format"
)

// Rule describes the checks applied to one form field. Zero values disable a
// check.
type Rule struct {
	Required       bool
	MinLength      int
	MaxLength      int
	Pattern        *regexp.Regexp
	PatternMessage string
	// Custom returns a non-empty message when the value is rejected. It sees
	// the whole form so it can compare fields.
	Custom func(value string, data map[string]string) string
}

type Rules map[string]Rule

// Result is the outcome of ValidateForm. Errors holds at most one message per
// field.
type Result struct {
	IsValid bool
	Errors  map[string]string
}

// ValidateForm checks every field that has a rule. Per field the checks run in
// order required, min length, max length, pattern, custom; the first failure
// is reported. Empty optional values skip the remaining checks.
func ValidateForm(data map[string]string, rules Rules) Result {
	errs := make(map[string]string)
	for field, rule := range rules {
		if msg := checkField(data[field], data, rule); msg != "" {
			errs[field] = msg
		}
	}
	return Result{IsValid: len(errs) == 0, Errors: errs}
}

func checkField(value string, data map[string]string, rule Rule) string {
	// whitespace-only input counts as missing
	if strings.TrimSpace(value) == "" {
		if rule.Required {
			return MsgRequired
		}
		return ""
	}
	n := utf8.RuneCountInString(value)
	if rule.MinLength > 0 && n < rule.MinLength {
		return fmt.Sprintf("Must be at least %d characters", rule.MinLength)
	}
	if rule.MaxLength > 0 && n > rule.MaxLength {
		return fmt.Sprintf("Must be no more than %d characters", rule.MaxLength)
	}
	if rule.Pattern != nil && !rule.Pattern.MatchString(value) {
		if rule.PatternMessage != "" {
			return rule.PatternMessage
		}
		return MsgInvalidFormat
	}
	if rule.Custom != nil {
		return rule.Custom(value, data)
	}
	return ""
}

// FormData flattens posted values to the first value per key.
func FormData(values url.Values) map[string]string {
	out := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) > 0 {
			out[k] = v[0]
		}
	}
	return out
}

// ContactRules validates the marketing contact form.
func ContactRules() Rules {
	return Rules{
		"name":    {Required: true, MaxLength: 100},
		"email":   {Required: true, Pattern: emailPattern, PatternMessage: "Please enter a valid email address"},
		"phone":   {Pattern: phonePattern, PatternMessage: "Please enter a valid phone number"},
		"message": {Required: true, MinLength: 10, MaxLength: 2000},
	}
}

// SignupRules validates the account signup form before it is handed to the
// auth backend.
func SignupRules() Rules {
	return Rules{
		"email": {Required: true, Pattern: emailPattern, PatternMessage: "Please enter a valid email address"},
		"password": {Required: true, Custom: func(v string, _ map[string]string) string {
			if !IsValidPassword(v) {
				return "Password must be at least 8 characters and include a letter and a number"
			}
			return ""
		}},
		"confirm_password": {Required: true, Custom: func(v string, data map[string]string) string {
			if v != data["password"] {
				return "Passwords do not match"
			}
			return ""
		}},
		"user_type": {Required: true, Custom: func(v string, _ map[string]string) string {
			if v != "homeowner" && v != "provider" {
				return "Please choose homeowner or provider"
			}
			return ""
		}},
	}
}

package validation

import (
	"net/url"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidPassword(t *testing.T) {
	assert.False(t, IsValidPassword("abc"), "too short")
	assert.True(t, IsValidPassword("abcdefg1"))
	assert.False(t, IsValidPassword("abcdefgh"), "no digit")
	assert.False(t, IsValidPassword("12345678"), "no letter")
	assert.False(t, IsValidPassword("abcdéé1"), "7 characters even though 9 bytes")
	assert.True(t, IsValidPassword("abcdéé12"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("a@b.com"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("a b@c.com"))
	assert.False(t, IsValidEmail("a@bcom"))
}

func TestIsValidPhone(t *testing.T) {
	for _, ok := range []string{"555-123-4567", "(555) 123-4567", "+1 555 123 4567", "5551234567"} {
		assert.True(t, IsValidPhone(ok), ok)
	}
	for _, bad := range []string{"", "12345", "phone", "555-1234-567"} {
		assert.False(t, IsValidPhone(bad), bad)
	}
}

func TestIsValidURL(t *testing.T) {
	assert.True(t, IsValidURL("https://homeswerv.com/img.png"))
	assert.True(t, IsValidURL("http://localhost:8080"))
	assert.False(t, IsValidURL("ftp://example.com"))
	assert.False(t, IsValidURL("example.com"))
	assert.False(t, IsValidURL(""))
}

func TestValidateFormRequired(t *testing.T) {
	res := ValidateForm(map[string]string{"name": ""}, Rules{"name": {Required: true}})
	assert.False(t, res.IsValid)
	assert.Equal(t, map[string]string{"name": "This field is required"}, res.Errors)
}

func TestValidateFormBlankCountsAsMissing(t *testing.T) {
	rules := Rules{"name": {Required: true}, "phone": {Pattern: phonePattern}}
	res := ValidateForm(map[string]string{"name": "   ", "phone": " \t"}, rules)
	assert.Equal(t, map[string]string{"name": MsgRequired}, res.Errors, "blank optional fields skip the pattern")
}

func TestValidateFormFirstFailureWins(t *testing.T) {
	customCalled := false
	rules := Rules{
		"code": {
			MinLength: 5,
			Pattern:   regexp.MustCompile(`^\d+$`),
			Custom: func(string, map[string]string) string {
				customCalled = true
				return "custom"
			},
		},
	}

	res := ValidateForm(map[string]string{"code": "ab"}, rules)
	assert.Equal(t, "Must be at least 5 characters", res.Errors["code"])

	res = ValidateForm(map[string]string{"code": "abcdef"}, rules)
	assert.Equal(t, MsgInvalidFormat, res.Errors["code"])
	assert.False(t, customCalled)

	res = ValidateForm(map[string]string{"code": "123456"}, rules)
	assert.Equal(t, "custom", res.Errors["code"])
	assert.True(t, customCalled)
}

func TestValidateFormOptionalEmptySkipsChecks(t *testing.T) {
	res := ValidateForm(map[string]string{}, Rules{"phone": {MinLength: 10, Pattern: phonePattern}})
	assert.True(t, res.IsValid)
	assert.Empty(t, res.Errors)
}

func TestValidateFormMaxLength(t *testing.T) {
	res := ValidateForm(map[string]string{"name": "abcdef"}, Rules{"name": {MaxLength: 3}})
	assert.Equal(t, "Must be no more than 3 characters", res.Errors["name"])
}

func TestSignupRules(t *testing.T) {
	res := ValidateForm(map[string]string{
		"email":            "jo@example.com",
		"password":         "abcdefg1",
		"confirm_password": "abcdefg2",
		"user_type":        "homeowner",
	}, SignupRules())
	require.False(t, res.IsValid)
	assert.Equal(t, map[string]string{"confirm_password": "Passwords do not match"}, res.Errors)
}

func TestFormData(t *testing.T) {
	data := FormData(url.Values{"a": {"1", "2"}, "b": {}})
	assert.Equal(t, map[string]string{"a": "1"}, data)
}

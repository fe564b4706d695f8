package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.example.co"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("user@"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2024-07-15")
	assert.True(t, ok)

	_, ok = IsValidDate("2024-7-15")
	assert.False(t, ok, "date keys must be zero-padded")

	_, ok = IsValidDate("2024-02-30")
	assert.False(t, ok)

	_, ok = IsValidDate("15/07/2024")
	assert.False(t, ok)
}

func TestIsValidMonthKey(t *testing.T) {
	_, ok := IsValidMonthKey("2024-07")
	assert.True(t, ok)

	_, ok = IsValidMonthKey("2024-7")
	assert.False(t, ok, "month keys must be zero-padded")

	_, ok = IsValidMonthKey("2024-13")
	assert.False(t, ok)
}

func TestIsValidPhoneNumber(t *testing.T) {
	assert.True(t, IsValidPhoneNumber("+628123456789"))
	assert.True(t, IsValidPhoneNumber("0812-3456-789"))
	assert.False(t, IsValidPhoneNumber("12345"))
	assert.False(t, IsValidPhoneNumber("not-a-number"))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "is required"},
		{Field: "salary", Message: "must be a positive number"},
	}

	assert.Equal(t, "name: is required; salary: must be a positive number", errs.Error())
	assert.Equal(t, map[string]string{
		"name":   "is required",
		"salary": "must be a positive number",
	}, errs.ToMap())
}

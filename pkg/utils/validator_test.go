package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUserRole(t *testing.T) {
	t.Parallel()

	type payload struct {
		Role string `validate:"user_role"`
	}

	assert.NoError(t, ValidateStruct(&payload{Role: "user"}))
	assert.NoError(t, ValidateStruct(&payload{Role: "admin"}))
	assert.Error(t, ValidateStruct(&payload{Role: "superuser"}))
	assert.Error(t, ValidateStruct(&payload{Role: "Admin"}))
}

func TestValidateTaskStatus(t *testing.T) {
	t.Parallel()

	type payload struct {
		Status string `validate:"task_status"`
	}

	assert.NoError(t, ValidateStruct(&payload{Status: "ongoing"}))
	assert.NoError(t, ValidateStruct(&payload{Status: "Completed"}))
	assert.NoError(t, ValidateStruct(&payload{Status: "BLOCKED"}))
	assert.Error(t, ValidateStruct(&payload{Status: "done"}))
}

func TestIsValidEmail(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidEmail("alice@example.com"))
	assert.True(t, IsValidEmail("  Alice@Example.COM  "))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
}

func TestSanitizeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello", SanitizeString("  hello  "))
	assert.Equal(t, "&lt;b&gt;bold&lt;/b&gt;", SanitizeString("<b>bold</b>"))
}

func TestSanitizeEmail(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "alice@example.com", SanitizeEmail("  Alice@Example.COM "))
	assert.Equal(t, "alice@example.com", SanitizeEmail("<i>alice@example.com</i>"))
}

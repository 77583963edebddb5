package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("a"))
	assert.False(t, IsEmpty(" a "))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2025-06-10")
	assert.True(t, ok)

	date, ok := IsValidDate("2024-02-29")
	assert.True(t, ok)
	assert.Equal(t, 29, date.Day())

	_, ok = IsValidDate("2025-02-29")
	assert.False(t, ok)
	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)
	_, ok = IsValidDate("10-06-2025")
	assert.False(t, ok)
	_, ok = IsValidDate("not-a-date")
	assert.False(t, ok)
}

func TestIsValidMonthKey(t *testing.T) {
	assert.True(t, IsValidMonthKey("2025-01"))
	assert.True(t, IsValidMonthKey("2025-12"))

	assert.False(t, IsValidMonthKey("2025-13"))
	assert.False(t, IsValidMonthKey("2025-00"))
	assert.False(t, IsValidMonthKey("2025-1"))
	assert.False(t, IsValidMonthKey("2025-06-10"))
	assert.False(t, IsValidMonthKey(""))
}

func TestIsValidUsername(t *testing.T) {
	assert.True(t, IsValidUsername("anam"))
	assert.True(t, IsValidUsername("the.anh_2"))
	assert.True(t, IsValidUsername("abc"))

	assert.False(t, IsValidUsername("ab"))
	assert.False(t, IsValidUsername("has space"))
	assert.False(t, IsValidUsername("việt"))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "username", Message: "Username is required"},
		{Field: "password", Message: "Password must be at least 6 characters"},
	}

	assert.Equal(t, "username: Username is required; password: Password must be at least 6 characters", errs.Error())
	assert.Equal(t, map[string]string{
		"username": "Username is required",
		"password": "Password must be at least 6 characters",
	}, errs.ToMap())
}

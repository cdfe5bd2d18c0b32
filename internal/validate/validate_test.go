package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidName(t *testing.T) {
	assert.True(t, IsValidName("Ada Lovelace"))
	assert.True(t, IsValidName("  Ada  ")) // trimmed before matching
	assert.False(t, IsValidName("A"))
	assert.False(t, IsValidName("Ada42"))
	assert.False(t, IsValidName(""))
	assert.False(t, IsValidName("José")) // letters and spaces only
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("ada@example.com"))
	assert.True(t, IsValidEmail(" ada@example.com "))
	assert.False(t, IsValidEmail("ada@example"))
	assert.False(t, IsValidEmail("ada example@x.com"))
	assert.False(t, IsValidEmail("@example.com"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("+15551234567"))
	assert.True(t, IsValidPhone("15551234567"))
	assert.True(t, IsValidPhone("+1 555 123 4567")) // spaces stripped
	assert.False(t, IsValidPhone("05551234567"))    // leading zero
	assert.False(t, IsValidPhone("+12345678901234567")) // too long
	assert.False(t, IsValidPhone("555-1234"))
	assert.False(t, IsValidPhone(""))
}

func TestIsFutureOrTodayDate(t *testing.T) {
	now := time.Date(2026, time.March, 15, 13, 45, 0, 0, time.UTC)

	assert.True(t, isFutureOrToday("2026-03-15", now))
	assert.True(t, isFutureOrToday("2026-03-16", now))
	assert.True(t, isFutureOrToday("2027-01-01", now))
	assert.False(t, isFutureOrToday("2026-03-14", now))
	assert.False(t, isFutureOrToday("not-a-date", now))
	assert.False(t, isFutureOrToday("", now))
}

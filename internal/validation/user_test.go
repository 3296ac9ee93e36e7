package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("a@b.com"))
	assert.NoError(t, ValidateEmail("first.last+tag@sub.domain.org"))

	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("missing@tld"))
	assert.Error(t, ValidateEmail("@nouser.com"))
}

func TestParseBirthdayAgeGate(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	// Exactly 18 today is allowed.
	b, err := ParseBirthday("2006-06-15", now)
	require.NoError(t, err)
	assert.Equal(t, 2006, b.Year())

	// 18th birthday tomorrow is rejected.
	_, err = ParseBirthday("2006-06-16", now)
	require.Error(t, err)

	_, err = ParseBirthday("2010-01-01", now)
	require.Error(t, err)

	_, err = ParseBirthday("", now)
	require.Error(t, err)

	_, err = ParseBirthday("June 1st 1990", now)
	require.Error(t, err)

	_, err = ParseBirthday("1990-01-01", now)
	assert.NoError(t, err)
}

func TestAge(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 24, Age(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 23, Age(time.Date(2000, 12, 31, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 0, Age(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), now))
}

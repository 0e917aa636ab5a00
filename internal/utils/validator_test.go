package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidVisitTime(t *testing.T) {
	valid := []string{"00:00", "09:30", "12:00", "23:59"}
	for _, v := range valid {
		assert.True(t, IsValidVisitTime(v), v)
	}

	invalid := []string{"24:00", "9:30", "12:60", "noon", "12:00:00", ""}
	for _, v := range invalid {
		assert.False(t, IsValidVisitTime(v), v)
	}
}

func TestIsValidPartySize(t *testing.T) {
	assert.False(t, IsValidPartySize(0))
	assert.True(t, IsValidPartySize(1))
	assert.True(t, IsValidPartySize(20))
	assert.False(t, IsValidPartySize(21))
	assert.False(t, IsValidPartySize(-2))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("kim@example.com"))
	assert.False(t, IsValidEmail("kim@"))
	assert.False(t, IsValidEmail("example.com"))
}

func TestIsValidRating(t *testing.T) {
	assert.False(t, IsValidRating(0))
	assert.True(t, IsValidRating(1))
	assert.True(t, IsValidRating(5))
	assert.False(t, IsValidRating(6))
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"+251911234567",
		"251911234567",
		"0911234567",
		"0711234567",
		"+1 (555) 123-4567",
	}
	for _, phone := range valid {
		assert.True(t, ValidatePhone(phone), "expected %q to be valid", phone)
	}

	invalid := []string{
		"",
		"0511234567",
		"091123456",
		"abc",
		"+",
	}
	for _, phone := range invalid {
		assert.False(t, ValidatePhone(phone), "expected %q to be invalid", phone)
	}
}

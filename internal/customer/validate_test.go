package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"",
		"+12345678901",
		"+123456789012345",
		"123-456-7890",
	}
	for _, phone := range valid {
		assert.True(t, ValidatePhone(phone), "expected %q to be valid", phone)
	}

	invalid := []string{
		"12345",
		"+123456789",         // too few digits
		"+1234567890123456",  // too many digits
		"123-45-6789",        // wrong grouping
		"123-456-78901",      // trailing digit
		"abc-def-ghij",
		"+12345678901x",      // trailing garbage
		" 123-456-7890",      // leading space
		"(123) 456-7890",
	}
	for _, phone := range invalid {
		assert.False(t, ValidatePhone(phone), "expected %q to be invalid", phone)
	}
}

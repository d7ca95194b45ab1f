package customer

import "errors"

// Error messages are surfaced verbatim in mutation responses.
var (
	ErrInvalidPhone = errors.New("Phone number must be in format: +1234567890 or 123-456-7890")
	ErrEmailExists  = errors.New("Email already exists")
	ErrInvalidEmail = errors.New("Enter a valid email address")
	ErrNameRequired = errors.New("Name is required")
)

package customer

import (
	"regexp"
	"time"
)

type Customer struct {
	ID        uint
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCustomer is the validated input for a create.
type NewCustomer struct {
	Name  string
	Email string
	Phone string
}

// phonePattern accepts "+<10-15 digits>" or "123-456-7890".
var phonePattern = regexp.MustCompile(`^(\+\d{10,15}|\d{3}-\d{3}-\d{4})$`)

// ValidatePhone reports whether phone is empty or fully matches one of the
// accepted formats.
func ValidatePhone(phone string) bool {
	if phone == "" {
		return true
	}
	return phonePattern.MatchString(phone)
}

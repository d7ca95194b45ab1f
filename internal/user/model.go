package user

import "time"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User is a CRM staff account. Customers are not users; they have no login.
type User struct {
	ID        uint
	Email     string
	Password  string
	Role      Role
	CreatedAt time.Time
}

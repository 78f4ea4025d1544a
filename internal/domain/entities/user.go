package entities

import "time"

type UserRole string

const (
	UserRoleClient     UserRole = "CLIENT"
	UserRoleAdmin      UserRole = "ADMIN"
	UserRoleAccounting UserRole = "ACCOUNTING"
)

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleClient, UserRoleAdmin, UserRoleAccounting:
		return true
	}
	return false
}

// User is a portal principal. The core only needs it to resolve notification
// recipients and record acting principals; authentication lives elsewhere.
//
// Storage model (DynamoDB):
//   - PK: id

type User struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

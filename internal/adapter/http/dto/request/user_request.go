package request

import "strings"

// CreateUserRequest registers a portal principal (client, admin, accounting).
type CreateUserRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" binding:"required,email"`
	Role      string `json:"role" binding:"required"`
}

func (r CreateUserRequest) ResolveRole() string {
	return strings.ToUpper(strings.TrimSpace(r.Role))
}

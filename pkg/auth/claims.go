package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims represents the JWT claims carried by credit-service tokens.
type Claims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID `json:"user_id"`
	Roles  []string  `json:"roles"`
}

// HasRole checks if the claims include the specified role.
func (c Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Role constants. Officers and admins may evaluate, decide, and generate
// payment plans; customers may only read their own data and simulate.
const (
	RoleAdmin    = "admin"
	RoleOfficer  = "officer"
	RoleCustomer = "customer"
)

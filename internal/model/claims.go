package model

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT payload issued by the external auth service.
// UserID is the subject user's UUID in string form.
type Claims struct {
	UserID string   `json:"user_id"`
	Roles  []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

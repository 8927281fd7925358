package model

import "github.com/golang-jwt/jwt/v5"

// AuthClaims is the decoded payload of an issued token. Subject carries
// the user's email.
type AuthClaims struct {
	jwt.RegisteredClaims
}

package models

import "github.com/golang-jwt/jwt/v5"

// TokenRequest is the payload signed by POST /jwt.
type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name,omitempty"`
}

// TokenResponse carries the signed access token.
type TokenResponse struct {
	Token string `json:"token"`
}

// TokenClaims represents the JWT payload for access tokens.
type TokenClaims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

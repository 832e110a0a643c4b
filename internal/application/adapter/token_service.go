package adapter

import "time"

// TokenClaims holds the validated identity carried by an access token.
type TokenClaims struct {
	Email     string
	ExpiresAt time.Time
}

// TokenService issues and validates dashboard access tokens.
type TokenService interface {
	GenerateAccessToken(email string) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
}

// PasswordService verifies dashboard admin credentials.
type PasswordService interface {
	HashPassword(password string) (string, error)
	VerifyPassword(hashedPassword, password string) error
}

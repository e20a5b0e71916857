package auth

import "github.com/heartmarshall/growth-journal-backend/internal/domain"

// AuthResult is returned by Register, Login and Refresh.
type AuthResult struct {
	AccessToken  string
	RefreshToken string // raw token, NOT hash
	// ExpiresIn is the access token lifetime in seconds.
	ExpiresIn int
	User      *domain.User
}

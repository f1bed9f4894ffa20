package auth

import "github.com/heartmarshall/quitsmoke-backend/internal/domain"

// AuthResult is returned by Register, Login and Refresh.
type AuthResult struct {
	AccessToken  string
	RefreshToken string // raw token, the database only sees its hash
	ExpiresIn    int64  // access token lifetime in seconds
	User         *domain.User
}

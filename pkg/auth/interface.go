package auth

// TokenManager defines the interface for session token operations.
type TokenManager interface {
	// GenerateToken creates a new session token for a user.
	GenerateToken(userID string) (string, error)
	// ValidateToken parses and validates a session token, returning the claims if valid.
	ValidateToken(tokenString string) (*Claims, error)
}

// Ensure JWTManager implements TokenManager interface
var _ TokenManager = (*JWTManager)(nil)

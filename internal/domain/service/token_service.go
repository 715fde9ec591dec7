package service

// TokenService defines the interface for manager session tokens.
// A session token carries the manager's username as its identity; there are
// no additional claims or roles.
type TokenService interface {
	// GenerateToken creates a signed session token for a manager.
	GenerateToken(username string) (string, error)

	// ValidateToken checks a token string and returns the manager username
	// it was issued for.
	ValidateToken(tokenString string) (string, error)
}

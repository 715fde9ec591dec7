package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"chocoshop/config"
	"chocoshop/internal/domain/service"
)

// defaultSessionTTL applies when the session TTL is not configured.
const defaultSessionTTL = 12 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret     string        // Secret key for signing session tokens.
	sessionTTL time.Duration // Time-to-live for session tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	ttl := defaultSessionTTL
	if cfg.Session != nil && cfg.Session.TokenTTL > 0 {
		ttl = cfg.Session.TokenTTL
	}

	return &jwtService{
		secret:     cfg.SecretKey.Session,
		sessionTTL: ttl,
	}, nil
}

// GenerateToken creates a signed session token carrying the manager username.
func (s *jwtService) GenerateToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"sub": username,                            // Subject (who the token is for)
		"iat": time.Now().Unix(),                   // Issued At
		"exp": time.Now().Add(s.sessionTTL).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// ValidateToken checks the validity of a token string and extracts the
// manager username it was issued for.
func (s *jwtService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", jwt.ErrTokenUnverifiable
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", jwt.ErrTokenInvalidClaims
	}

	username, ok := claims["sub"].(string)
	if !ok || username == "" {
		return "", jwt.ErrTokenInvalidSubject
	}

	return username, nil
}

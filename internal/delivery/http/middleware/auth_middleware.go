package middleware

import (
	"strings"

	domainerrors "chocoshop/internal/domain/errors"
	"chocoshop/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UsernameContextKey is the echo context key carrying the authenticated
// manager's username.
const UsernameContextKey = "username"

// AuthMiddleware guards manager-only routes with the session token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer session token and records the manager
// username on the context. Requests without a valid session are rejected
// before the handler runs, so unauthenticated ingestion never happens.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return errors.WithStack(domainerrors.ErrSessionRequired.WithDetails("Missing Authorization header; log in via POST /login."))
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return errors.WithStack(domainerrors.ErrSessionRequired.WithDetails("Authorization header must be a Bearer token."))
		}

		username, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return errors.WithStack(domainerrors.ErrSessionRequired.WithDetails("Invalid or expired session token; log in via POST /login."))
		}

		c.Set(UsernameContextKey, username)

		return next(c)
	}
}

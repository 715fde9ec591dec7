package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "chocoshop/internal/domain/errors"
	mockService "chocoshop/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/add", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func requireSessionRequired(t *testing.T, err error) {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	assert.Equal(t, "SESSION_REQUIRED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "/login")
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)
	c, _ := newAuthContext(t, "")

	nextCalled := false
	err := m.Authenticate(func(echo.Context) error {
		nextCalled = true
		return nil
	})(c)

	requireSessionRequired(t, err)
	assert.False(t, nextCalled)
}

func TestAuthMiddleware_NonBearerHeader(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)
	c, _ := newAuthContext(t, "Basic dXNlcjpwYXNz")

	nextCalled := false
	err := m.Authenticate(func(echo.Context) error {
		nextCalled = true
		return nil
	})(c)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SESSION_REQUIRED", appErr.ErrorCode())
	assert.False(t, nextCalled)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateToken("expired-token").
		Return("", assert.AnError)

	m := NewAuthMiddleware(tokenSvc)
	c, _ := newAuthContext(t, "Bearer expired-token")

	nextCalled := false
	err := m.Authenticate(func(echo.Context) error {
		nextCalled = true
		return nil
	})(c)

	requireSessionRequired(t, err)
	assert.False(t, nextCalled)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateToken("signed-token").
		Return("alice", nil)

	m := NewAuthMiddleware(tokenSvc)
	c, _ := newAuthContext(t, "Bearer signed-token")

	var seenUsername string
	err := m.Authenticate(func(c echo.Context) error {
		seenUsername, _ = c.Get(UsernameContextKey).(string)
		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, "alice", seenUsername)
}

// An unauthenticated request to the guarded ingestion route is rejected with
// a 401 pointing at the login route; the handler never runs.
func TestAuthMiddleware_GuardedRouteRejectsUnauthenticated(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	handlerCalled := false
	addGroup := e.Group("/add")
	addGroup.Use(m.Authenticate)
	addGroup.POST("", func(c echo.Context) error {
		handlerCalled = true
		return c.NoContent(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/add", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.False(t, handlerCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "SESSION_REQUIRED")
	assert.Contains(t, rec.Body.String(), "/login")
}

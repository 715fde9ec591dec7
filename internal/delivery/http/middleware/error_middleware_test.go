package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "chocoshop/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newErrorContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestErrorMiddleware_AppError(t *testing.T) {
	m := NewErrorMiddleware(newDiscardLogger())
	c, rec := newErrorContext(t)

	m.HandleHTTPError(errors.Wrap(domainerrors.ErrProductNotFound, "failed to get product"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "PRODUCT_NOT_FOUND")
}

func TestErrorMiddleware_DatabaseExecuteError(t *testing.T) {
	m := NewErrorMiddleware(newDiscardLogger())
	c, rec := newErrorContext(t)

	backendErr := domainerrors.NewDatabaseExecuteError(errors.New("rpc deadline exceeded"), "failed to stream products")
	m.HandleHTTPError(errors.Wrap(backendErr, "failed to list products"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "DATABASE_EXECUTE_FAILED")
	// The backend cause never leaks into the response body.
	assert.NotContains(t, rec.Body.String(), "rpc deadline exceeded")
}

func TestErrorMiddleware_UnknownError(t *testing.T) {
	m := NewErrorMiddleware(newDiscardLogger())
	c, rec := newErrorContext(t)

	m.HandleHTTPError(errors.New("connection reset by peer"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, rec.Body.String(), "connection reset by peer")
}

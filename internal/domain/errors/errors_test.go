package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseExecuteError_ImplementsAppError(t *testing.T) {
	cause := errors.New("rpc deadline exceeded")
	err := NewDatabaseExecuteError(cause, "failed to stream products")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "Database execution failed.", err.Message())
	assert.Equal(t, "failed to stream products", err.Details())
	assert.Contains(t, err.Error(), "rpc deadline exceeded")
}

func TestDatabaseExecuteError_FoundThroughWrapping(t *testing.T) {
	cause := errors.New("rpc deadline exceeded")
	wrapped := errors.Wrap(NewDatabaseExecuteError(cause, "failed to set product document"), "failed to save product")

	var appErr AppError
	require.ErrorAs(t, wrapped, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestBaseError_WithDetails(t *testing.T) {
	detailed := ErrSessionRequired.WithDetails("log in via POST /login")

	assert.Equal(t, ErrSessionRequired.HTTPCode(), detailed.HTTPCode())
	assert.Equal(t, ErrSessionRequired.ErrorCode(), detailed.ErrorCode())
	assert.Equal(t, "log in via POST /login", detailed.Details())
	// The predefined error itself is never mutated.
	assert.Empty(t, ErrSessionRequired.Details())
}

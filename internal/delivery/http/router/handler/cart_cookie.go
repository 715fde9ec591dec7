package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const cartCookieName = "cart_id"

// ensureCartID returns the caller's cart ID, issuing a fresh cookie when
// the request carries none. Every visitor gets an isolated cart.
func ensureCartID(c echo.Context) string {
	if cookie, err := c.Cookie(cartCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     cartCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
	})

	return id
}

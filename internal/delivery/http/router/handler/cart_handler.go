package handler

import (
	"log/slog"
	"net/http"

	"chocoshop/internal/delivery/http/response"
	"chocoshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for cart-related handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

// View returns the caller's cart with its item count and total price.
func (h *CartHandler) View(c echo.Context) error {
	cartID := ensureCartID(c)

	view, err := h.uc.View(c.Request().Context(), cartID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Remove deletes the first cart entry matching the product_name parameter.
// Removing a name that is not in the cart is a no-op.
func (h *CartHandler) Remove(c echo.Context) error {
	cartID := ensureCartID(c)
	name := c.QueryParam("product_name")
	if name == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "product_name is required")
	}

	if err := h.uc.Remove(c.Request().Context(), cartID, name); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.uc.View(c.Request().Context(), cartID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Product removed from cart")
}

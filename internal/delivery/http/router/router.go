// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"chocoshop/internal/delivery/http/middleware"
	"chocoshop/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	CatalogHandler *handler.CatalogHandler
	CartHandler    *handler.CartHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	catalogHandler *handler.CatalogHandler
	cartHandler    *handler.CartHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		catalogHandler: params.CatalogHandler,
		cartHandler:    params.CartHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Landing page
	e.GET("/chocoshop", r.catalogHandler.Landing)

	// Manager login
	e.POST("/login", r.authHandler.Login)

	// Product ingestion requires an authenticated manager session
	addGroup := e.Group("/add")
	addGroup.Use(r.authMiddleware.Authenticate)
	{
		addGroup.GET("", r.catalogHandler.DescribeAddForm)
		addGroup.POST("", r.catalogHandler.AddProduct)
	}

	// Public catalog browsing
	e.GET("/products", r.catalogHandler.ListProducts)
	e.GET("/product/:slug", r.catalogHandler.GetProduct)
	e.POST("/search", r.catalogHandler.Search)

	// Cart, scoped to the visitor's cart cookie
	e.GET("/cart", r.cartHandler.View)
	e.GET("/remove", r.cartHandler.Remove)
}

// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tilemart/internal/delivery/http/middleware"
	"tilemart/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	TileHandler    *handler.TileHandler
	AuthHandler    *handler.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	tileHandler    *handler.TileHandler
	authHandler    *handler.AuthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		tileHandler:    params.TileHandler,
		authHandler:    params.AuthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the stub.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	{
		api.GET("/tiles", r.tileHandler.List)
		api.GET("/tiles/:id", r.tileHandler.Get)

		api.POST("/auth/login", r.authHandler.Login)
		api.POST("/auth/signup", r.authHandler.Signup)
	}

	// Seller mutations require a bearer token
	seller := e.Group("/api", r.authMiddleware.RequireBearer)
	{
		seller.POST("/tiles/seller-upload", r.tileHandler.Upload)
		seller.PUT("/tiles/:id", r.tileHandler.Update)
		seller.DELETE("/tiles/:id", r.tileHandler.Delete)
	}
}

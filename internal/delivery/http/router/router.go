// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"rolodex/internal/delivery/http/middleware"
	"rolodex/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ContactHandler *handler.ContactHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	contactHandler *handler.ContactHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		contactHandler: params.ContactHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Public endpoints
	e.GET("/hello", handler.Hello)
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	e.POST("/signup", r.authHandler.Signup)
	e.POST("/login", r.authHandler.Login)

	// Demo route that requires authentication
	e.GET("/protected", r.authHandler.Protected, r.authMiddleware.Authenticate)

	// Contact routes; reads are public, writes go through the auth gate
	contactGroup := e.Group("/contacts")
	{
		contactGroup.GET("", r.contactHandler.List)
		contactGroup.GET("/:name", r.contactHandler.GetByName)
		contactGroup.POST("", r.contactHandler.Create, r.authMiddleware.Authenticate)
	}
}

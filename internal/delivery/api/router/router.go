// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"account/config"
	"account/internal/delivery/api/middleware"
	"account/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	userGroup := e.Group("/users")
	if r.config.Auth != nil && r.config.Auth.RequireToken {
		userGroup.Use(r.authMiddleware.Authenticate)
	}
	{
		userGroup.POST("", r.userHandler.CreateUser)
		userGroup.GET("", r.userHandler.ListUsers)
		userGroup.GET("/:id", r.userHandler.GetUser)
		userGroup.PUT("/:id", r.userHandler.UpdateUser)
		userGroup.DELETE("/:id", r.userHandler.DeleteUser)
	}
}

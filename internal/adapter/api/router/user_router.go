package router

import (
	"shuddhify/internal/adapter/api/handler"
	"shuddhify/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	e.GET("/v1/auth/status", userHandler.AuthStatus, authMiddleware.OptionalAuthenticate)

	profile := e.Group("/v1/profile")
	profile.Use(authMiddleware.Authenticate)
	profile.GET("", userHandler.GetProfile)
}

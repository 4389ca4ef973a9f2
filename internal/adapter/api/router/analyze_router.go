package router

import (
	"shuddhify/internal/adapter/api/handler"
	"shuddhify/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupAnalyzeRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	analyzeHandler := handler.GetAnalyzeHandler()

	analyze := e.Group("/v1/analyze")
	analyze.Use(authMiddleware.Authenticate)
	analyze.POST("", analyzeHandler.AnalyzeImage, rateLimitMiddleware.Limit("analyze_image"))
}

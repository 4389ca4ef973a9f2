package router

import (
	"shuddhify/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	SetupReportRouter(e, authMiddleware, rateLimitMiddleware)
	SetupGeoRouter(e)
	SetupFoodItemRouter(e)
	SetupUserRouter(e, authMiddleware)
	SetupAnalyzeRouter(e, authMiddleware, rateLimitMiddleware)
	SetupFileRouter(e, authMiddleware)
	SetupHealthRouter(e)
}

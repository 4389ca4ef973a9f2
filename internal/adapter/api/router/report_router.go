package router

import (
	"shuddhify/internal/adapter/api/handler"
	"shuddhify/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupReportRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	reportHandler := handler.GetReportHandler()

	// Public routes
	e.GET("/v1/reports", reportHandler.ListReports)

	// Protected routes - require authentication
	reports := e.Group("/v1/reports")
	reports.Use(authMiddleware.Authenticate)
	reports.POST("", reportHandler.CreateReport, rateLimitMiddleware.Limit("submit_report"))
	reports.POST("/:id/verify", reportHandler.VerifyReport, rateLimitMiddleware.Limit("verify_report"))
	reports.DELETE("/:id", reportHandler.DeleteReport)

	myReports := e.Group("/v1/my-reports")
	myReports.Use(authMiddleware.Authenticate)
	myReports.GET("", reportHandler.ListMyReports)
}

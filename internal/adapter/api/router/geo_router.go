package router

import (
	"shuddhify/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupGeoRouter(e *echo.Echo) {
	geoHandler := handler.GetGeoHandler()

	e.GET("/v1/reports/nearby", geoHandler.NearbyReports)
	e.GET("/v1/hotspots", geoHandler.Hotspots)
}

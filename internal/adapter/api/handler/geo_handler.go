package handler

import (
	"strconv"

	"shuddhify/internal/usecase"
	"shuddhify/pkg/errors"
	"shuddhify/pkg/response"

	"github.com/labstack/echo/v4"
)

type GeoHandler struct {
	geoUseCase *usecase.GeoUseCase
}

func NewGeoHandler(geoUseCase *usecase.GeoUseCase) *GeoHandler {
	return &GeoHandler{
		geoUseCase: geoUseCase,
	}
}

func (h *GeoHandler) NearbyReports(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return response.Error(c, errors.BadRequest("lat must be a number", err))
	}

	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return response.Error(c, errors.BadRequest("lng must be a number", err))
	}

	radius, err := strconv.ParseFloat(c.QueryParam("radius"), 64)
	if err != nil {
		return response.Error(c, errors.BadRequest("radius must be a number of meters", err))
	}

	reports, err := h.geoUseCase.FindNearby(c.Request().Context(), lat, lng, radius)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"reports": reports,
		"count":   len(reports),
	})
}

func (h *GeoHandler) Hotspots(c echo.Context) error {
	hotspots, err := h.geoUseCase.ComputeHotspots(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"hotspots": hotspots,
	})
}

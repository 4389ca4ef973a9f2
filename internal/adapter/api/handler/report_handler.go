package handler

import (
	"shuddhify/internal/domain/repository"
	"shuddhify/internal/usecase"
	"shuddhify/pkg/response"

	"github.com/labstack/echo/v4"
)

type ReportHandler struct {
	reportUseCase *usecase.ReportUseCase
}

func NewReportHandler(reportUseCase *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{
		reportUseCase: reportUseCase,
	}
}

type createReportRequest struct {
	FoodItem         string   `json:"foodItem" validate:"required"`
	ShopName         string   `json:"shopName"`
	Address          string   `json:"address"`
	Lat              float64  `json:"lat" validate:"latitude"`
	Lng              float64  `json:"lng" validate:"longitude"`
	Area             string   `json:"area" validate:"required"`
	City             string   `json:"city" validate:"required"`
	AdulterationType string   `json:"adulterationType" validate:"required,oneof=color_adulteration chemical_contamination foreign_substance expired_product mislabeling other"`
	Description      string   `json:"description" validate:"required,max=500"`
	Severity         string   `json:"severity" validate:"omitempty,oneof=low medium high"`
	Images           []string `json:"images,omitempty"`
}

func (h *ReportHandler) CreateReport(c echo.Context) error {
	var req createReportRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	reporterID := c.Get("uid").(string)

	report, err := h.reportUseCase.CreateReport(
		c.Request().Context(),
		reporterID,
		usecase.CreateReportInput{
			FoodItem:         req.FoodItem,
			ShopName:         req.ShopName,
			Address:          req.Address,
			Area:             req.Area,
			City:             req.City,
			Lat:              req.Lat,
			Lng:              req.Lng,
			AdulterationType: req.AdulterationType,
			Description:      req.Description,
			Severity:         req.Severity,
			Images:           req.Images,
		},
	)

	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]interface{}{
		"report_id": report.ID,
		"status":    report.Status,
	})
}

func (h *ReportHandler) ListReports(c echo.Context) error {
	filter := repository.ReportFilter{
		City:     c.QueryParam("city"),
		FoodItem: c.QueryParam("foodItem"),
		Severity: c.QueryParam("severity"),
		Status:   c.QueryParam("status"),
	}

	reports, err := h.reportUseCase.ListReports(c.Request().Context(), filter)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"reports": reports,
		"count":   len(reports),
	})
}

func (h *ReportHandler) VerifyReport(c echo.Context) error {
	reportID := c.Param("id")
	verifierID := c.Get("uid").(string)

	report, err := h.reportUseCase.VerifyReport(c.Request().Context(), reportID, verifierID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"report_id":          report.ID,
		"verification_count": report.VerificationCount,
		"status":             report.Status,
	})
}

func (h *ReportHandler) ListMyReports(c echo.Context) error {
	reporterID := c.Get("uid").(string)

	reports, err := h.reportUseCase.ListMyReports(c.Request().Context(), reporterID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"reports": reports,
		"count":   len(reports),
	})
}

func (h *ReportHandler) DeleteReport(c echo.Context) error {
	reportID := c.Param("id")
	requesterID := c.Get("uid").(string)

	if err := h.reportUseCase.DeleteReport(c.Request().Context(), reportID, requesterID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Report deleted successfully",
	})
}

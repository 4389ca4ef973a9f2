package handler

import (
	"shuddhify/internal/domain/service"
	"shuddhify/pkg/errors"
	"shuddhify/pkg/logger"
	"shuddhify/pkg/response"

	"github.com/labstack/echo/v4"
)

type AnalyzeHandler struct {
	analysisService service.ImageAnalysisService
	maxFileSize     int64
}

var analyzeHandler *AnalyzeHandler

func NewAnalyzeHandler(analysisService service.ImageAnalysisService) *AnalyzeHandler {
	return &AnalyzeHandler{
		analysisService: analysisService,
		maxFileSize:     5 * 1024 * 1024,
	}
}

func SetupAnalyzeHandler(analysisService service.ImageAnalysisService) {
	analyzeHandler = NewAnalyzeHandler(analysisService)
}

func GetAnalyzeHandler() *AnalyzeHandler {
	return analyzeHandler
}

// AnalyzeImage relays an uploaded food image to the analysis workflow and
// passes its opaque classification result back to the caller.
func (h *AnalyzeHandler) AnalyzeImage(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing or invalid image", err))
	}

	if file.Size > h.maxFileSize {
		return response.Error(c, errors.BadRequest("Image exceeds maximum allowed size (5MB)", nil))
	}

	fileType := file.Header.Get("Content-Type")
	if !isAllowedImageType(fileType) {
		return response.Error(c, errors.BadRequest("Image type not supported", nil))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read uploaded image", err))
	}
	defer src.Close()

	email, _ := c.Get("email").(string)
	foodItem := c.FormValue("foodItem")

	result, err := h.analysisService.AnalyzeImage(c.Request().Context(), src, file.Filename, email, foodItem)
	if err != nil {
		logger.Error("analysis workflow call failed: %v", err)
		return response.Error(c, errors.Internal("Error connecting to analysis workflow", err))
	}

	return response.Success(c, map[string]interface{}{
		"message": "Analysis complete",
		"result":  result,
	})
}

func isAllowedImageType(fileType string) bool {
	switch fileType {
	case "image/jpeg", "image/jpg", "image/png", "image/webp":
		return true
	}
	return false
}

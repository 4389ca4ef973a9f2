package handler

import (
	"shuddhify/internal/domain/service"
	"shuddhify/pkg/errors"
	"shuddhify/pkg/logger"
	"shuddhify/pkg/response"

	"github.com/labstack/echo/v4"
)

type FileHandler struct {
	fileService service.FileUploadService
	maxFileSize int64
}

var fileHandler *FileHandler

func NewFileHandler(fileService service.FileUploadService) *FileHandler {
	return &FileHandler{
		fileService: fileService,
		maxFileSize: 5 * 1024 * 1024,
	}
}

func SetupFileHandler(fileService service.FileUploadService) {
	fileHandler = NewFileHandler(fileService)
}

func GetFileHandler() *FileHandler {
	return fileHandler
}

// UploadFile stores an evidence image and returns its public URL, which the
// client attaches to a report on submission.
func (h *FileHandler) UploadFile(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing or invalid file", err))
	}

	logger.Debug("received file: %s, size: %d bytes, type: %s", file.Filename, file.Size, file.Header.Get("Content-Type"))

	if file.Size > h.maxFileSize {
		return response.Error(c, errors.BadRequest("File exceeds maximum allowed size (5MB)", nil))
	}

	fileType := file.Header.Get("Content-Type")
	if !isAllowedImageType(fileType) {
		return response.Error(c, errors.BadRequest("File type not supported", nil))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read uploaded file", err))
	}
	defer src.Close()

	url, err := h.fileService.UploadFile(c.Request().Context(), src, fileType, "reports", true)
	if err != nil {
		logger.Error("evidence upload failed: %v", err)
		return response.Error(c, errors.Internal("Failed to store file", err))
	}

	return response.Created(c, map[string]string{
		"url": url,
	})
}

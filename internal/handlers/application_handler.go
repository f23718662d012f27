package handlers

import (
	"net/http"

	"jobboard_backend/internal/apperrors"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
	maxUploadSize      int64
	allowedTypes       []string
}

func NewApplicationHandler(
	base *BaseHandler,
	applicationService services.ApplicationService,
	maxUploadSize int64,
	allowedTypes []string,
) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
		maxUploadSize:      maxUploadSize,
		allowedTypes:       allowedTypes,
	}
}

// Apply - публичный отклик на вакансию. Multipart-форма: поля
// кандидата плюс необязательный файл резюме.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req dto.ApplyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	// Резюме необязательно: отклик принимается и обычным JSON-телом
	fileHeader, err := c.FormFile("resume")
	if err != nil && err != http.ErrMissingFile && err != http.ErrNotMultipart {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid resume file: "+err.Error()))
		return
	}

	if fileHeader == nil {
		view, err := h.applicationService.Apply(c.Request.Context(), c.Param("id"), &req, nil, "")
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, view)
		return
	}

	if fileHeader.Size > h.maxUploadSize {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Resume file is too large"))
		return
	}
	if !h.isAllowedType(fileHeader.Header.Get("Content-Type")) {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Unsupported resume file type"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return
	}
	defer file.Close()

	view, err := h.applicationService.Apply(c.Request.Context(), c.Param("id"), &req, file, fileHeader.Filename)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// ListForJob - отклики видит только владелец вакансии
// (проверяется ownership-middleware маршрута)
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	views, err := h.applicationService.ListForJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *ApplicationHandler) isAllowedType(contentType string) bool {
	if len(h.allowedTypes) == 0 {
		return true
	}
	for _, t := range h.allowedTypes {
		if t == contentType {
			return true
		}
	}
	return false
}

package handlers

import (
	"io"
	"net/http"
	"path"
	"strings"

	"jobboard_backend/internal/apperrors"
	"jobboard_backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// FileHandler отдает сохраненные файлы (резюме) из хранилища
type FileHandler struct {
	*BaseHandler
	files storage.Storage
}

func NewFileHandler(base *BaseHandler, files storage.Storage) *FileHandler {
	return &FileHandler{
		BaseHandler: base,
		files:       files,
	}
}

func (h *FileHandler) Serve(c *gin.Context) {
	p := strings.TrimPrefix(c.Param("filepath"), "/")

	// Выход за пределы хранилища запрещен
	if p == "" || strings.Contains(p, "..") {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid file path"))
		return
	}

	exists, err := h.files.Exists(c.Request.Context(), p)
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return
	}
	if !exists {
		apperrors.HandleError(c, apperrors.NotFound("File", ""))
		return
	}

	file, err := h.files.Get(c.Request.Context(), p)
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return
	}
	defer file.Close()

	c.Header("Content-Disposition", `attachment; filename="`+path.Base(p)+`"`)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, file)
}

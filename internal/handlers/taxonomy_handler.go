package handlers

import (
	"net/http"

	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// TaxonomyHandler - один обобщенный хендлер на все справочники.
// prefix - сегмент пути ("legal-forms", "skills" и т.д.).
type TaxonomyHandler[T any, P repositories.TaxonomyPtr[T]] struct {
	*BaseHandler
	service *services.TaxonomyService[T, P]
	prefix  string
}

func NewTaxonomyHandler[T any, P repositories.TaxonomyPtr[T]](
	base *BaseHandler,
	service *services.TaxonomyService[T, P],
	prefix string,
) *TaxonomyHandler[T, P] {
	return &TaxonomyHandler[T, P]{
		BaseHandler: base,
		service:     service,
		prefix:      prefix,
	}
}

// RegisterRoutes вешает чтение на публичную группу,
// изменение - на админскую
func (h *TaxonomyHandler[T, P]) RegisterRoutes(public, admin *gin.RouterGroup) {
	pub := public.Group("/" + h.prefix)
	{
		pub.GET("", h.List)
		pub.GET("/:id", h.Get)
	}

	adm := admin.Group("/" + h.prefix)
	{
		adm.POST("", h.Create)
		adm.PUT("/:id", h.Rename)
		adm.DELETE("/:id", h.Delete)
	}
}

func (h *TaxonomyHandler[T, P]) Get(c *gin.Context) {
	ref, err := h.service.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ref)
}

func (h *TaxonomyHandler[T, P]) List(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	refs, err := h.service.List(page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, refs)
}

func (h *TaxonomyHandler[T, P]) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.TaxonomyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	ref, err := h.service.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ref)
}

func (h *TaxonomyHandler[T, P]) Rename(c *gin.Context) {
	var req dto.TaxonomyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	ref, err := h.service.Rename(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ref)
}

func (h *TaxonomyHandler[T, P]) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

package handlers

import (
	"net/http"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	*BaseHandler
	companyService services.CompanyService
}

func NewCompanyHandler(base *BaseHandler, companyService services.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		BaseHandler:    base,
		companyService: companyService,
	}
}

func (h *CompanyHandler) GetPublic(c *gin.Context) {
	view, err := h.companyService.GetPublicByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *CompanyHandler) ListPublic(c *gin.Context) {
	var q dto.CompanyFilterQuery
	if !h.BindAndValidate_Query(c, &q) {
		return
	}

	page, pageSize := ParsePagination(c)
	views, err := h.companyService.ListPublic(&q, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *CompanyHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	views, err := h.companyService.ListMine(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *CompanyHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCompanyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	view, err := h.companyService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *CompanyHandler) Update(c *gin.Context) {
	var req dto.UpdateCompanyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	view, err := h.companyService.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *CompanyHandler) UpdateContacts(c *gin.Context) {
	var req dto.ContactsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	view, err := h.companyService.UpdateContacts(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *CompanyHandler) Delete(c *gin.Context) {
	if err := h.companyService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Company deleted"})
}

func (h *CompanyHandler) SetPublishState(c *gin.Context) {
	var req dto.PublishStateRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	view, err := h.companyService.SetPublishState(c.Param("id"), models.PublishState(req.State))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// --- Команда ---

func (h *CompanyHandler) AddTeamMember(c *gin.Context) {
	var req dto.TeamMemberRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	view, err := h.companyService.AddTeamMember(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *CompanyHandler) UpdateTeamMember(c *gin.Context) {
	var req dto.TeamMemberRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	view, err := h.companyService.UpdateTeamMember(c.Param("id"), c.Param("itemId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *CompanyHandler) DeleteTeamMember(c *gin.Context) {
	view, err := h.companyService.DeleteTeamMember(c.Param("id"), c.Param("itemId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// --- Портфолио ---

func (h *CompanyHandler) AddPortfolioItem(c *gin.Context) {
	var req dto.PortfolioItemRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	view, err := h.companyService.AddPortfolioItem(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *CompanyHandler) UpdatePortfolioItem(c *gin.Context) {
	var req dto.PortfolioItemRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	view, err := h.companyService.UpdatePortfolioItem(c.Param("id"), c.Param("itemId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *CompanyHandler) DeletePortfolioItem(c *gin.Context) {
	view, err := h.companyService.DeletePortfolioItem(c.Param("id"), c.Param("itemId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

package handlers

import (
	"net/http"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) GetPublic(c *gin.Context) {
	view, err := h.jobService.GetPublicByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *JobHandler) ListPublic(c *gin.Context) {
	var q dto.JobFilterQuery
	if !h.BindAndValidate_Query(c, &q) {
		return
	}

	page, pageSize := ParsePagination(c)
	views, err := h.jobService.ListPublic(&q, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *JobHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	views, err := h.jobService.ListMine(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *JobHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	view, err := h.jobService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *JobHandler) Update(c *gin.Context) {
	var req dto.UpdateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	view, err := h.jobService.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *JobHandler) UpdateRequirements(c *gin.Context) {
	var req dto.JobRequirementsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	view, err := h.jobService.UpdateRequirements(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *JobHandler) UpdateEmployerInfo(c *gin.Context) {
	var req dto.EmployerInfoRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	view, err := h.jobService.UpdateEmployerInfo(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.jobService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}

func (h *JobHandler) SetPublishState(c *gin.Context) {
	var req dto.PublishStateRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	view, err := h.jobService.SetPublishState(c.Param("id"), models.PublishState(req.State))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

package handlers

import (
	"net/http"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	*BaseHandler
	orderService services.OrderService
}

func NewOrderHandler(base *BaseHandler, orderService services.OrderService) *OrderHandler {
	return &OrderHandler{
		BaseHandler:  base,
		orderService: orderService,
	}
}

func (h *OrderHandler) GetPublic(c *gin.Context) {
	view, err := h.orderService.GetPublicByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *OrderHandler) ListPublic(c *gin.Context) {
	var q dto.OrderFilterQuery
	if !h.BindAndValidate_Query(c, &q) {
		return
	}

	page, pageSize := ParsePagination(c)
	views, err := h.orderService.ListPublic(&q, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *OrderHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	views, err := h.orderService.ListMine(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *OrderHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateOrderRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	view, err := h.orderService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *OrderHandler) Update(c *gin.Context) {
	var req dto.UpdateOrderRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	view, err := h.orderService.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *OrderHandler) UpdateProjectInfo(c *gin.Context) {
	var req dto.ProjectInfoRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	view, err := h.orderService.UpdateProjectInfo(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *OrderHandler) UpdateContacts(c *gin.Context) {
	var req dto.ContactsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	view, err := h.orderService.UpdateContacts(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.orderService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}

func (h *OrderHandler) SetPublishState(c *gin.Context) {
	var req dto.PublishStateRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	view, err := h.orderService.SetPublishState(c.Param("id"), models.PublishState(req.State))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"book-store-service/internal/domains/customer/model"
	"book-store-service/internal/domains/customer/service"
	"book-store-service/internal/shared/response"
)

type CustomerHandler struct {
	service service.ServiceInterface
}

func NewCustomerHandler(svc service.ServiceInterface) *CustomerHandler {
	return &CustomerHandler{service: svc}
}

func (h *CustomerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	{
		customers.POST("", h.Create)
		customers.GET("", h.GetAll)
		customers.GET("/:id", h.GetByID)
		customers.PUT("/:id", h.Update)
		customers.DELETE("/:id", h.Delete)
	}
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req model.CreateCustomerRequest
	if !response.BindJSON(c, &req) {
		return
	}
	customer, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, customer.ToResponse())
}

func (h *CustomerHandler) GetAll(c *gin.Context) {
	customers, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.List(c, model.ToResponses(customers))
}

func (h *CustomerHandler) GetByID(c *gin.Context) {
	id, ok := response.UUIDParam(c, "id")
	if !ok {
		return
	}
	customer, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, customer.ToResponse())
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := response.UUIDParam(c, "id")
	if !ok {
		return
	}
	var req model.UpdateCustomerRequest
	if !response.BindJSON(c, &req) {
		return
	}
	customer, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, customer.ToResponse())
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := response.UUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

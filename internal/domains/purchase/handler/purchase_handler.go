package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"book-store-service/internal/domains/purchase/model"
	"book-store-service/internal/domains/purchase/service"
	"book-store-service/internal/shared/response"
)

type PurchaseHandler struct {
	service service.ServiceInterface
}

func NewPurchaseHandler(svc service.ServiceInterface) *PurchaseHandler {
	return &PurchaseHandler{service: svc}
}

func (h *PurchaseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	purchases := rg.Group("/purchases")
	{
		purchases.POST("", h.PurchaseBook)
		purchases.GET("", h.GetAll)
		purchases.GET("/:id", h.GetByID)
		purchases.DELETE("/:id", h.Delete)
	}
}

// POST /purchases
func (h *PurchaseHandler) PurchaseBook(c *gin.Context) {
	var req model.PurchaseBookRequest
	if !response.BindJSON(c, &req) {
		return
	}
	p, err := h.service.PurchaseBook(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, p.ToResponse())
}

func (h *PurchaseHandler) GetAll(c *gin.Context) {
	purchases, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.List(c, model.ToResponses(purchases))
}

func (h *PurchaseHandler) GetByID(c *gin.Context) {
	id, ok := response.UUIDParam(c, "id")
	if !ok {
		return
	}
	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p.ToResponse())
}

func (h *PurchaseHandler) Delete(c *gin.Context) {
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

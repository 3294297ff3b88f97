package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"book-store-service/internal/domains/appuser/model"
	"book-store-service/internal/domains/appuser/service"
	"book-store-service/internal/shared/response"
)

type AppUserHandler struct {
	service service.ServiceInterface
}

func NewAppUserHandler(svc service.ServiceInterface) *AppUserHandler {
	return &AppUserHandler{service: svc}
}

func (h *AppUserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.POST("", h.Create)
		users.GET("", h.GetAll)
		users.GET("/:id", h.GetByID)
		users.PUT("/:id", h.Update)
		users.DELETE("/:id", h.Delete)
	}
}

func (h *AppUserHandler) Create(c *gin.Context) {
	var req model.CreateAppUserRequest
	if !response.BindJSON(c, &req) {
		return
	}
	u, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, u.ToResponse())
}

func (h *AppUserHandler) GetAll(c *gin.Context) {
	users, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.List(c, model.ToResponses(users))
}

func (h *AppUserHandler) GetByID(c *gin.Context) {
	id, ok := response.UUIDParam(c, "id")
	if !ok {
		return
	}
	u, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u.ToResponse())
}

func (h *AppUserHandler) Update(c *gin.Context) {
	id, ok := response.UUIDParam(c, "id")
	if !ok {
		return
	}
	var req model.UpdateAppUserRequest
	if !response.BindJSON(c, &req) {
		return
	}
	u, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u.ToResponse())
}

func (h *AppUserHandler) Delete(c *gin.Context) {
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

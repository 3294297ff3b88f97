package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"book-store-service/internal/domains/book/model"
	"book-store-service/internal/domains/book/service"
	"book-store-service/internal/shared/response"
)

type BookHandler struct {
	service service.ServiceInterface
}

func NewBookHandler(svc service.ServiceInterface) *BookHandler {
	return &BookHandler{service: svc}
}

func (h *BookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	books := rg.Group("/books")
	{
		books.POST("", h.Create)
		books.POST("/with-author", h.CreateWithAuthor)
		books.GET("", h.GetAll)
		books.GET("/:id", h.GetByID)
		books.PUT("/:id", h.Update)
		books.PUT("/:id/author/:authorId", h.AttachAuthor)
		books.DELETE("/:id", h.Delete)
	}
}

// POST /books
func (h *BookHandler) Create(c *gin.Context) {
	var req model.CreateBookRequest
	if !response.BindJSON(c, &req) {
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, b.ToResponse())
}

// POST /books/with-author
func (h *BookHandler) CreateWithAuthor(c *gin.Context) {
	var req model.CreateBookWithAuthorRequest
	if !response.BindJSON(c, &req) {
		return
	}

	b, err := h.service.CreateBookWithNewAuthor(c.Request.Context(), req.Book, req.Author)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, b.ToResponse())
}

// GET /books
func (h *BookHandler) GetAll(c *gin.Context) {
	books, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.List(c, model.ToResponses(books))
}

// GET /books/:id
func (h *BookHandler) GetByID(c *gin.Context) {
	id, ok := response.UUIDParam(c, "id")
	if !ok {
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b.ToResponse())
}

// PUT /books/:id
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := response.UUIDParam(c, "id")
	if !ok {
		return
	}
	var req model.UpdateBookRequest
	if !response.BindJSON(c, &req) {
		return
	}

	b, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b.ToResponse())
}

// PUT /books/:id/author/:authorId
func (h *BookHandler) AttachAuthor(c *gin.Context) {
	bookID, ok := response.UUIDParam(c, "id")
	if !ok {
		return
	}
	authorID, ok := response.UUIDParam(c, "authorId")
	if !ok {
		return
	}

	b, err := h.service.AttachAuthor(c.Request.Context(), bookID, authorID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b.ToResponse())
}

// DELETE /books/:id
func (h *BookHandler) Delete(c *gin.Context) {
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

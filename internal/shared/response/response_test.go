package response

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"book-store-service/internal/shared/apperror"
)

func TestFromError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"not found", apperror.NotFound("Customer", "42"), http.StatusNotFound, `"code":"NOT_FOUND"`},
		{"validation", apperror.Required("title"), http.StatusBadRequest, `"message":"title is required"`},
		{"already exists", apperror.AlreadyExists("Author", "email", "a@b"), http.StatusConflict, `"code":"ALREADY_EXISTS"`},
		{"wrapped not found", fmt.Errorf("lookup: %w", apperror.NotFound("Book", "1")), http.StatusNotFound, `Book not found with id 1`},
		{"internal", errors.New("connection refused"), http.StatusInternalServerError, `"message":"internal server error"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			FromError(c, tt.err)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			assert.Contains(t, w.Body.String(), `"success":false`)
		})
	}
}

func TestList(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	List(c, []string{})
	c.Writer.WriteHeaderNow()
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	List(c, []string{"a"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":["a"]}`, w.Body.String())
}

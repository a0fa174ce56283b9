package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSuccess_StatusCannotBeOverridden(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, gin.H{"status": "error", "category_id": "abc"})

	body := decode(t, w)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "abc", body["category_id"])
}

func TestErrorMiddleware_RecoversPanic(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		wantStack bool
	}{
		{"debug exposes stack", true, true},
		{"production hides stack", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(ErrorMiddleware(tt.debug))
			r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

			body := decode(t, w)
			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Equal(t, "error", body["status"])
			_, hasStack := body["stack"]
			assert.Equal(t, tt.wantStack, hasStack)
		})
	}
}

func TestErrorMiddleware_RendersAttachedErrors(t *testing.T) {
	r := gin.New()
	r.Use(ErrorMiddleware(false))
	r.GET("/biz", func(c *gin.Context) { _ = c.Error(NotFound("Category not found")) })
	r.GET("/plain", func(c *gin.Context) { _ = c.Error(errors.New("db down")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/biz", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Category not found", decode(t, w)["message"])

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/plain", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "db down", decode(t, w)["message"])
}

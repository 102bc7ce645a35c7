package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	ierr "github.com/inmovia/inmovia/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performRequest(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/test", handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestErrorHandlerRendersHintAndSafeDetails(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		_ = c.Error(ierr.NewError("line item not found").
			WithHint("Bill not found").
			WithReportableDetails(map[string]any{"line_item_id": "bill_123"}).
			Mark(ierr.ErrNotFound))
	})

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp ierr.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Bill not found", resp.Error.Display)
	assert.Equal(t, "bill_123", resp.Error.Details["line_item_id"])
}

func TestErrorHandlerFallsBackWithoutHint(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		_ = c.Error(ierr.NewError("boom").Mark(ierr.ErrSystem))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp ierr.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "An unexpected error occurred", resp.Error.Display)
}

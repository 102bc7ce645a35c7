package v1

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/inmovia/inmovia/internal/api/dto"
	ierr "github.com/inmovia/inmovia/internal/errors"
	"github.com/inmovia/inmovia/internal/logger"
	"github.com/inmovia/inmovia/internal/service"
)

type ReconciliationHandler struct {
	service service.ReconciliationService
	log     *logger.Logger
}

func NewReconciliationHandler(service service.ReconciliationService, log *logger.Logger) *ReconciliationHandler {
	return &ReconciliationHandler{service: service, log: log}
}

// Reconcile accepts either a JSON body with pre-split rows or the raw
// semicolon-delimited payload as text
func (h *ReconciliationHandler) Reconcile(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ReconcileRequest
	contentType := c.ContentType()
	if strings.HasPrefix(contentType, "text/") || contentType == "application/octet-stream" {
		data, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.Error(ierr.WithError(err).
				WithHint("Failed to read request body").
				Mark(ierr.ErrValidation))
			return
		}
		req.Data = string(data)
	} else if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.Reconcile(ctx, req)
	if err != nil {
		h.log.Error("Failed to reconcile rows", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

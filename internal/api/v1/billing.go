package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inmovia/inmovia/internal/api/dto"
	ierr "github.com/inmovia/inmovia/internal/errors"
	"github.com/inmovia/inmovia/internal/logger"
	"github.com/inmovia/inmovia/internal/service"
)

type BillingHandler struct {
	service service.BillingService
	log     *logger.Logger
}

func NewBillingHandler(service service.BillingService, log *logger.Logger) *BillingHandler {
	return &BillingHandler{service: service, log: log}
}

func (h *BillingHandler) GenerateBills(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.GenerateBillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GenerateBills(ctx, req)
	if err != nil {
		h.log.Error("Failed to generate bills", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *BillingHandler) GetBill(c *gin.Context) {
	ctx := c.Request.Context()
	resp, err := h.service.GetBill(ctx, c.Param("id"))
	if err != nil {
		h.log.Error("Failed to get bill", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BillingHandler) ListBills(c *gin.Context) {
	ctx := c.Request.Context()
	resp, err := h.service.ListBills(ctx, c.Query("property_id"))
	if err != nil {
		h.log.Error("Failed to list bills", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
